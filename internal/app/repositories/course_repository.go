package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ankitr/coachdesk/internal/app/models"
	"github.com/ankitr/coachdesk/internal/pkg/apperrors"
	"github.com/ankitr/coachdesk/internal/pkg/logger"
)

// CourseUpdate carries the optional column overwrites for a partial
// course update. A nil field leaves the column untouched.
type CourseUpdate struct {
	CourseName    *string
	Price         *float64
	CoursePDFPath *string
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (course_name, price, course_pdf_path)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		course.CourseName, course.Price, course.CoursePDFPath,
	).Scan(&course.ID, &course.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID, &course.CourseName, &course.Price,
		&course.CoursePDFPath, &course.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

// List retrieves all courses, newest first
func (r *CourseRepository) List(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT id, course_name, price, course_pdf_path, created_at
		FROM courses
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, course_name, price, course_pdf_path, created_at
		FROM courses
		WHERE id = $1
	`

	return scanCourse(r.db.QueryRow(ctx, query, id))
}

// Update applies a partial update; only non-nil fields overwrite columns
func (r *CourseRepository) Update(ctx context.Context, id int64, update CourseUpdate) error {
	sqlBuilder := squirrel.Update("courses").PlaceholderFormat(squirrel.Dollar).
		Where(squirrel.Eq{"id": id})

	set := 0
	if update.CourseName != nil {
		sqlBuilder = sqlBuilder.Set("course_name", *update.CourseName)
		set++
	}
	if update.Price != nil {
		sqlBuilder = sqlBuilder.Set("price", *update.Price)
		set++
	}
	if update.CoursePDFPath != nil {
		sqlBuilder = sqlBuilder.Set("course_pdf_path", *update.CoursePDFPath)
		set++
	}

	if set == 0 {
		return apperrors.NewBadRequestError("no fields to update")
	}

	sqlStr, args, err := sqlBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building course update SQL")
		return err
	}

	result, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course by ID. Enrollment and result rows referencing
// it go with it via FK cascade.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Exists reports whether a course with the given ID exists
func (r *CourseRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// CountByIDs returns how many of the given course IDs exist. Used to
// validate enrollment lists in one query.
func (r *CourseRepository) CountByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	sqlStr, args, err := squirrel.Select("COUNT(*)").From("courses").
		Where(squirrel.Eq{"id": ids}).
		PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
