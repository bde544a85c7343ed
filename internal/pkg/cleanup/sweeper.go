package cleanup

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"

	"github.com/ankitr/coachdesk/internal/pkg/filestorage"
	"github.com/ankitr/coachdesk/internal/pkg/logger"
)

// minFileAge protects in-flight uploads that have no database row yet
const minFileAge = 24 * time.Hour

// Sweeper periodically removes files from the storage directory that no
// database row references anymore, e.g. after a failed request left an
// upload behind.
type Sweeper struct {
	db      *pgxpool.Pool
	storage *filestorage.LocalStorage
	cron    *cron.Cron
}

// NewSweeper creates a new orphan file sweeper
func NewSweeper(db *pgxpool.Pool, storage *filestorage.LocalStorage) *Sweeper {
	return &Sweeper{
		db:      db,
		storage: storage,
		cron:    cron.New(),
	}
}

// Start schedules the sweep with the given cron expression
func (s *Sweeper) Start(schedule string) error {
	_, err := s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := s.RunOnce(ctx); err != nil {
			logger.Error().Err(err).Msg("Orphan file sweep failed")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	logger.Info().Str("schedule", schedule).Msg("Orphan file sweeper scheduled")
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// RunOnce performs a single sweep: collect every stored path the database
// references, then delete unreferenced files older than minFileAge.
func (s *Sweeper) RunOnce(ctx context.Context) error {
	referenced, err := s.referencedPaths(ctx)
	if err != nil {
		return err
	}

	basePath := s.storage.BasePath()
	removed := 0

	err = filepath.Walk(basePath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if time.Since(info.ModTime()) < minFileAge {
			return nil
		}

		rel, err := filepath.Rel(basePath, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if _, ok := referenced[rel]; ok {
			return nil
		}

		if err := s.storage.DeleteFile(rel); err != nil {
			logger.Warn().Err(err).Str("path", rel).Msg("Failed to remove orphaned file")
			return nil
		}
		removed++
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info().Int("removed", removed).Int("referenced", len(referenced)).Msg("Orphan file sweep complete")
	return nil
}

// referencedPaths gathers every stored file path currently held by a row
func (s *Sweeper) referencedPaths(ctx context.Context) (map[string]struct{}, error) {
	query := `
		SELECT course_pdf_path FROM courses WHERE course_pdf_path IS NOT NULL
		UNION
		SELECT student_photo FROM students WHERE student_photo IS NOT NULL
		UNION
		SELECT result_path FROM students WHERE result_path IS NOT NULL
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	referenced := make(map[string]struct{})
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		referenced[path] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return referenced, nil
}
