package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ankitr/coachdesk/internal/app/models"
	"github.com/ankitr/coachdesk/internal/pkg/apperrors"
	"github.com/ankitr/coachdesk/internal/pkg/logger"
)

// ResultUpdate carries the optional column overwrites for a partial
// result update. A nil field leaves the column untouched.
type ResultUpdate struct {
	TestName      *string
	MarksObtained *float64
	TotalMarks    *float64
	TestDate      *time.Time
}

// ResultRepository handles database operations for test results
type ResultRepository struct {
	db *pgxpool.Pool
}

// NewResultRepository creates a new result repository
func NewResultRepository(db *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{
		db: db,
	}
}

// Create inserts a new test result
func (r *ResultRepository) Create(ctx context.Context, result *models.Result) error {
	query := `
		INSERT INTO results (student_id, course_id, test_name, marks_obtained, total_marks, test_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		result.StudentID, result.CourseID, result.TestName,
		result.MarksObtained, result.TotalMarks, result.TestDate,
	).Scan(&result.ID, &result.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating result: %w", err)
	}

	return nil
}

func scanResult(row pgx.Row) (*models.Result, error) {
	var result models.Result
	err := row.Scan(
		&result.ID, &result.StudentID, &result.CourseID, &result.TestName,
		&result.MarksObtained, &result.TotalMarks, &result.TestDate,
		&result.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResultNotFound
		}
		return nil, err
	}
	return &result, nil
}

// List retrieves results, newest test first, optionally filtered by
// student.
func (r *ResultRepository) List(ctx context.Context, studentID *int64) ([]*models.Result, error) {
	sqlBuilder := squirrel.Select(
		"id", "student_id", "course_id", "test_name",
		"marks_obtained", "total_marks", "test_date", "created_at",
	).From("results").OrderBy("test_date DESC", "id DESC").PlaceholderFormat(squirrel.Dollar)

	if studentID != nil {
		sqlBuilder = sqlBuilder.Where(squirrel.Eq{"student_id": *studentID})
	}

	sqlStr, args, err := sqlBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building result list SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]*models.Result, 0)
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// GetByID retrieves a result by ID
func (r *ResultRepository) GetByID(ctx context.Context, id int64) (*models.Result, error) {
	query := `
		SELECT id, student_id, course_id, test_name, marks_obtained, total_marks, test_date, created_at
		FROM results
		WHERE id = $1
	`
	return scanResult(r.db.QueryRow(ctx, query, id))
}

// Update applies a partial update; only non-nil fields overwrite columns
func (r *ResultRepository) Update(ctx context.Context, id int64, update ResultUpdate) error {
	sqlBuilder := squirrel.Update("results").PlaceholderFormat(squirrel.Dollar).
		Where(squirrel.Eq{"id": id})

	set := 0
	if update.TestName != nil {
		sqlBuilder = sqlBuilder.Set("test_name", *update.TestName)
		set++
	}
	if update.MarksObtained != nil {
		sqlBuilder = sqlBuilder.Set("marks_obtained", *update.MarksObtained)
		set++
	}
	if update.TotalMarks != nil {
		sqlBuilder = sqlBuilder.Set("total_marks", *update.TotalMarks)
		set++
	}
	if update.TestDate != nil {
		sqlBuilder = sqlBuilder.Set("test_date", *update.TestDate)
		set++
	}

	if set == 0 {
		return apperrors.NewBadRequestError("no fields to update")
	}

	sqlStr, args, err := sqlBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building result update SQL")
		return err
	}

	result, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("error updating result: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrResultNotFound
	}

	return nil
}

// Delete removes a result by ID
func (r *ResultRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM results WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting result: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrResultNotFound
	}

	return nil
}
