package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ankitr/coachdesk/internal/app/models"
	"github.com/ankitr/coachdesk/internal/app/models/dto"
	"github.com/ankitr/coachdesk/internal/pkg/apperrors"
	"github.com/ankitr/coachdesk/internal/pkg/logger"
)

// ContactRepository handles database operations for contacts
type ContactRepository struct {
	db *pgxpool.Pool
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{
		db: db,
	}
}

// Create inserts a new enquiry; status defaults to "new" at the database.
func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	query := `
		INSERT INTO contacts (first_name, last_name, email, phone_number, course_interest, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, status, created_at
	`

	err := r.db.QueryRow(ctx, query,
		contact.FirstName, contact.LastName, contact.Email,
		contact.PhoneNumber, contact.CourseInterest, contact.Message,
	).Scan(&contact.ID, &contact.Status, &contact.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating contact: %w", err)
	}

	return nil
}

// selectContactQuery is the shared select for contact rows
func selectContactQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"id", "first_name", "last_name", "email", "phone_number",
		"course_interest", "message", "status", "created_at",
	).From("contacts").PlaceholderFormat(squirrel.Dollar)
}

func scanContact(row pgx.Row) (*models.Contact, error) {
	var contact models.Contact
	err := row.Scan(
		&contact.ID, &contact.FirstName, &contact.LastName, &contact.Email,
		&contact.PhoneNumber, &contact.CourseInterest, &contact.Message,
		&contact.Status, &contact.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, err
	}
	return &contact, nil
}

// List retrieves contacts with optional substring search and status
// equality filters, newest first.
func (r *ContactRepository) List(ctx context.Context, filter dto.ContactListFilter) ([]*models.Contact, error) {
	sqlBuilder := selectContactQuery().OrderBy("created_at DESC")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		sqlBuilder = sqlBuilder.Where(squirrel.Or{
			squirrel.ILike{"first_name": pattern},
			squirrel.ILike{"last_name": pattern},
			squirrel.ILike{"email": pattern},
			squirrel.ILike{"phone_number": pattern},
		})
	}
	if filter.Status != "" {
		sqlBuilder = sqlBuilder.Where(squirrel.Eq{"status": filter.Status})
	}

	sqlStr, args, err := sqlBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building contact list SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := make([]*models.Contact, 0)
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return contacts, nil
}

// GetByID retrieves a contact by ID
func (r *ContactRepository) GetByID(ctx context.Context, id int64) (*models.Contact, error) {
	sqlStr, args, err := selectContactQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	return scanContact(r.db.QueryRow(ctx, sqlStr, args...))
}

// Update applies a partial update; only non-nil request fields overwrite
// columns. Matching no row is a not-found.
func (r *ContactRepository) Update(ctx context.Context, id int64, req *dto.UpdateContactRequest) error {
	sqlBuilder := squirrel.Update("contacts").PlaceholderFormat(squirrel.Dollar).
		Where(squirrel.Eq{"id": id})

	set := 0
	if req.FirstName != nil {
		sqlBuilder = sqlBuilder.Set("first_name", *req.FirstName)
		set++
	}
	if req.LastName != nil {
		sqlBuilder = sqlBuilder.Set("last_name", *req.LastName)
		set++
	}
	if req.Email != nil {
		sqlBuilder = sqlBuilder.Set("email", *req.Email)
		set++
	}
	if req.PhoneNumber != nil {
		sqlBuilder = sqlBuilder.Set("phone_number", *req.PhoneNumber)
		set++
	}
	if req.CourseInterest != nil {
		sqlBuilder = sqlBuilder.Set("course_interest", *req.CourseInterest)
		set++
	}
	if req.Message != nil {
		sqlBuilder = sqlBuilder.Set("message", *req.Message)
		set++
	}
	if req.Status != nil {
		sqlBuilder = sqlBuilder.Set("status", *req.Status)
		set++
	}

	if set == 0 {
		return apperrors.NewBadRequestError("no fields to update")
	}

	sqlStr, args, err := sqlBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building contact update SQL")
		return err
	}

	result, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("error updating contact: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrContactNotFound
	}

	return nil
}

// Delete removes a contact by ID
func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting contact: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrContactNotFound
	}

	return nil
}

// StatusCounts returns the number of contacts per status in one grouped
// query.
func (r *ContactRepository) StatusCounts(ctx context.Context) (map[models.ContactStatus]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM contacts GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("error counting contacts by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.ContactStatus]int64)
	for rows.Next() {
		var status models.ContactStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
