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

// EventUpdate carries the optional column overwrites for a partial
// event update. A nil field leaves the column untouched.
type EventUpdate struct {
	EventTitle    *string
	Description   *string
	EventDateTime *time.Time
	Location      *string
	DurationHours *float64
}

// EventRepository handles database operations for events
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

// Create inserts a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (event_title, description, event_datetime, location, duration_hours)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		event.EventTitle, event.Description, event.EventDateTime,
		event.Location, event.DurationHours,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating event: %w", err)
	}

	return nil
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	var event models.Event
	err := row.Scan(
		&event.ID, &event.EventTitle, &event.Description,
		&event.EventDateTime, &event.Location, &event.DurationHours,
		&event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) queryEvents(ctx context.Context, query string, args ...interface{}) ([]*models.Event, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*models.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// List retrieves all events ordered by scheduled time ascending
func (r *EventRepository) List(ctx context.Context) ([]*models.Event, error) {
	query := `
		SELECT id, event_title, description, event_datetime, location, duration_hours, created_at
		FROM events
		ORDER BY event_datetime ASC
	`
	return r.queryEvents(ctx, query)
}

// Upcoming retrieves events scheduled at or after now, soonest first,
// capped at limit.
func (r *EventRepository) Upcoming(ctx context.Context, limit int) ([]*models.Event, error) {
	query := `
		SELECT id, event_title, description, event_datetime, location, duration_hours, created_at
		FROM events
		WHERE event_datetime >= NOW()
		ORDER BY event_datetime ASC
		LIMIT $1
	`
	return r.queryEvents(ctx, query, limit)
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := `
		SELECT id, event_title, description, event_datetime, location, duration_hours, created_at
		FROM events
		WHERE id = $1
	`
	return scanEvent(r.db.QueryRow(ctx, query, id))
}

// Update applies a partial update; only non-nil fields overwrite columns
func (r *EventRepository) Update(ctx context.Context, id int64, update EventUpdate) error {
	sqlBuilder := squirrel.Update("events").PlaceholderFormat(squirrel.Dollar).
		Where(squirrel.Eq{"id": id})

	set := 0
	if update.EventTitle != nil {
		sqlBuilder = sqlBuilder.Set("event_title", *update.EventTitle)
		set++
	}
	if update.Description != nil {
		sqlBuilder = sqlBuilder.Set("description", *update.Description)
		set++
	}
	if update.EventDateTime != nil {
		sqlBuilder = sqlBuilder.Set("event_datetime", *update.EventDateTime)
		set++
	}
	if update.Location != nil {
		sqlBuilder = sqlBuilder.Set("location", *update.Location)
		set++
	}
	if update.DurationHours != nil {
		sqlBuilder = sqlBuilder.Set("duration_hours", *update.DurationHours)
		set++
	}

	if set == 0 {
		return apperrors.NewBadRequestError("no fields to update")
	}

	sqlStr, args, err := sqlBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building event update SQL")
		return err
	}

	result, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Delete removes an event by ID
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}
