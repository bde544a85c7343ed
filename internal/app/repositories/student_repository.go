package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ankitr/coachdesk/internal/app/models"
	"github.com/ankitr/coachdesk/internal/db"
	"github.com/ankitr/coachdesk/internal/pkg/apperrors"
	"github.com/ankitr/coachdesk/internal/pkg/logger"
)

const studentColumns = `id, student_photo, student_name, password, father_name, gender,
		course, course_price, school_name, mobile_number, date_of_birth,
		cast_category, aadhar_card_number, full_address, result_path, created_at`

// StudentUpdate carries the optional column overwrites for a partial
// student update. A nil field leaves the column untouched.
type StudentUpdate struct {
	StudentName      *string
	Password         *string
	FatherName       *string
	Gender           *string
	MobileNumber     *string
	DateOfBirth      *time.Time
	SchoolName       *string
	Cast             *string
	AadharCardNumber *string
	FullAddress      *string
	StudentPhoto     *string
	ResultPath       *string
}

// StudentFiles holds the stored upload paths of a student row
type StudentFiles struct {
	StudentPhoto *string
	ResultPath   *string
}

// StudentRepository handles database operations for students and their
// course enrollments. It keeps the full database handle because admission
// and removal span multiple statements.
type StudentRepository struct {
	db *db.PostgresDB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(database *db.PostgresDB) *StudentRepository {
	return &StudentRepository{
		db: database,
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID, &student.StudentPhoto, &student.StudentName, &student.Password,
		&student.FatherName, &student.Gender, &student.Course, &student.CoursePrice,
		&student.SchoolName, &student.MobileNumber, &student.DateOfBirth,
		&student.Cast, &student.AadharCardNumber, &student.FullAddress,
		&student.ResultPath, &student.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

// Create inserts a student and their course enrollments in one
// transaction so a bad course ID leaves no partial row behind.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student, courseIDs []int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO students (student_photo, student_name, password, father_name, gender,
				school_name, mobile_number, date_of_birth, cast_category,
				aadhar_card_number, full_address, result_path)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id, created_at
		`

		err := tx.QueryRow(ctx, query,
			student.StudentPhoto, student.StudentName, student.Password,
			student.FatherName, student.Gender, student.SchoolName,
			student.MobileNumber, student.DateOfBirth, student.Cast,
			student.AadharCardNumber, student.FullAddress, student.ResultPath,
		).Scan(&student.ID, &student.CreatedAt)
		if err != nil {
			return err
		}

		return insertEnrollments(ctx, tx, student.ID, courseIDs)
	})
}

func insertEnrollments(ctx context.Context, tx pgx.Tx, studentID int64, courseIDs []int64) error {
	for _, courseID := range courseIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO student_courses (student_id, course_id) VALUES ($1, $2)`,
			studentID, courseID)
		if err != nil {
			return fmt.Errorf("error enrolling student %d in course %d: %w", studentID, courseID, err)
		}
	}
	return nil
}

// List retrieves students, newest first, optionally filtered by a name
// or mobile substring.
func (r *StudentRepository) List(ctx context.Context, search string) ([]*models.Student, error) {
	sqlBuilder := squirrel.Select(
		"id", "student_photo", "student_name", "password", "father_name", "gender",
		"course", "course_price", "school_name", "mobile_number", "date_of_birth",
		"cast_category", "aadhar_card_number", "full_address", "result_path", "created_at",
	).From("students").OrderBy("created_at DESC").PlaceholderFormat(squirrel.Dollar)

	if search != "" {
		pattern := "%" + search + "%"
		sqlBuilder = sqlBuilder.Where(squirrel.Or{
			squirrel.ILike{"student_name": pattern},
			squirrel.ILike{"mobile_number": pattern},
			squirrel.ILike{"school_name": pattern},
		})
	}

	sqlStr, args, err := sqlBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building student list SQL")
		return nil, err
	}

	rows, err := r.db.Pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// ListWithBirthdays retrieves all students that have a date of birth on
// record. Ranking by next occurrence happens in the service layer.
func (r *StudentRepository) ListWithBirthdays(ctx context.Context) ([]*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE date_of_birth IS NOT NULL`, studentColumns)

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE id = $1`, studentColumns)
	return scanStudent(r.db.Pool.QueryRow(ctx, query, id))
}

// GetByNameAndMobile retrieves the student matching a login attempt
func (r *StudentRepository) GetByNameAndMobile(ctx context.Context, studentName, mobileNumber string) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE student_name = $1 AND mobile_number = $2`, studentColumns)
	return scanStudent(r.db.Pool.QueryRow(ctx, query, studentName, mobileNumber))
}

// Courses retrieves the course rows a student is enrolled in
func (r *StudentRepository) Courses(ctx context.Context, studentID int64) ([]*models.Course, error) {
	query := `
		SELECT c.id, c.course_name, c.price, c.course_pdf_path, c.created_at
		FROM courses c
		JOIN student_courses sc ON sc.course_id = c.id
		WHERE sc.student_id = $1
		ORDER BY c.created_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, studentID)
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

// Update applies a partial update and, when replaceCourses is set,
// swaps the enrollment list, all in one transaction.
func (r *StudentRepository) Update(ctx context.Context, id int64, update StudentUpdate, courseIDs []int64, replaceCourses bool) error {
	sqlBuilder := squirrel.Update("students").PlaceholderFormat(squirrel.Dollar).
		Where(squirrel.Eq{"id": id})

	set := 0
	setColumn := func(column string, value interface{}) {
		sqlBuilder = sqlBuilder.Set(column, value)
		set++
	}
	if update.StudentName != nil {
		setColumn("student_name", *update.StudentName)
	}
	if update.Password != nil {
		setColumn("password", *update.Password)
	}
	if update.FatherName != nil {
		setColumn("father_name", *update.FatherName)
	}
	if update.Gender != nil {
		setColumn("gender", *update.Gender)
	}
	if update.MobileNumber != nil {
		setColumn("mobile_number", *update.MobileNumber)
	}
	if update.DateOfBirth != nil {
		setColumn("date_of_birth", *update.DateOfBirth)
	}
	if update.SchoolName != nil {
		setColumn("school_name", *update.SchoolName)
	}
	if update.Cast != nil {
		setColumn("cast_category", *update.Cast)
	}
	if update.AadharCardNumber != nil {
		setColumn("aadhar_card_number", *update.AadharCardNumber)
	}
	if update.FullAddress != nil {
		setColumn("full_address", *update.FullAddress)
	}
	if update.StudentPhoto != nil {
		setColumn("student_photo", *update.StudentPhoto)
	}
	if update.ResultPath != nil {
		setColumn("result_path", *update.ResultPath)
	}

	if set == 0 && !replaceCourses {
		return apperrors.NewBadRequestError("no fields to update")
	}

	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if set > 0 {
			sqlStr, args, err := sqlBuilder.ToSql()
			if err != nil {
				logger.Error().Err(err).Msg("Error building student update SQL")
				return err
			}

			result, err := tx.Exec(ctx, sqlStr, args...)
			if err != nil {
				return err
			}
			if result.RowsAffected() == 0 {
				return apperrors.ErrStudentNotFound
			}
		} else {
			var exists bool
			err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`, id).Scan(&exists)
			if err != nil {
				return err
			}
			if !exists {
				return apperrors.ErrStudentNotFound
			}
		}

		if replaceCourses {
			if _, err := tx.Exec(ctx, `DELETE FROM student_courses WHERE student_id = $1`, id); err != nil {
				return err
			}
			return insertEnrollments(ctx, tx, id, courseIDs)
		}

		return nil
	})
}

// Delete removes a student and returns the stored upload paths so the
// caller can clean the files up after the commit. Enrollments and
// results go via FK cascade.
func (r *StudentRepository) Delete(ctx context.Context, id int64) (*StudentFiles, error) {
	var files StudentFiles

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`SELECT student_photo, result_path FROM students WHERE id = $1 FOR UPDATE`, id).
			Scan(&files.StudentPhoto, &files.ResultPath)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrStudentNotFound
			}
			return err
		}

		_, err = tx.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &files, nil
}

// Exists reports whether a student with the given ID exists
func (r *StudentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
