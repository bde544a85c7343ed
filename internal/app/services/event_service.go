package services

import (
	"context"
	"time"

	"github.com/ankitr/coachdesk/internal/app/models"
	"github.com/ankitr/coachdesk/internal/app/models/dto"
	"github.com/ankitr/coachdesk/internal/app/repositories"
	"github.com/ankitr/coachdesk/internal/pkg/apperrors"
	"github.com/ankitr/coachdesk/internal/pkg/helpers"
)

// EventService defines operations on scheduled events
type EventService interface {
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error)
	ListEvents(ctx context.Context) ([]*models.Event, error)
	UpcomingEvents(ctx context.Context, limit int) ([]*models.Event, error)
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
	UpdateEvent(ctx context.Context, id int64, req *dto.UpdateEventRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}

type eventService struct {
	eventRepo *repositories.EventRepository
}

// NewEventService creates a new event service
func NewEventService(eventRepo *repositories.EventRepository) EventService {
	return &eventService{
		eventRepo: eventRepo,
	}
}

// CombineEventDateTime builds the stored timestamp from a calendar date
// and 12-hour clock fields. 12 AM maps to 00:xx and 12 PM to 12:xx.
func CombineEventDateTime(date string, hours, minutes int, period string) (time.Time, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, apperrors.NewBadRequestError("invalid event date")
	}

	switch period {
	case "AM":
		if hours == 12 {
			hours = 0
		}
	case "PM":
		if hours != 12 {
			hours += 12
		}
	default:
		return time.Time{}, apperrors.NewBadRequestError("event time period must be AM or PM")
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hours, minutes, 0, 0, time.UTC), nil
}

func (s *eventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error) {
	eventDateTime, err := CombineEventDateTime(req.EventDate, req.EventTimeHours, req.EventTimeMinutes, req.EventTimePeriod)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		EventTitle:    req.EventTitle,
		Description:   req.Description,
		EventDateTime: eventDateTime,
		Location:      req.Location,
		DurationHours: req.DurationHours,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.List(ctx)
}

// UpcomingEvents returns events at or after now, soonest first. The limit
// is clamped to (0, MaxLimit], defaulting for non-positive values.
func (s *eventService) UpcomingEvents(ctx context.Context, limit int) ([]*models.Event, error) {
	limit = helpers.ClampLimit(limit, helpers.DefaultUpcomingLimit, helpers.MaxLimit)
	return s.eventRepo.Upcoming(ctx, limit)
}

func (s *eventService) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

// UpdateEvent applies a partial update. The date and all three clock
// fields must arrive together since the stored timestamp is rebuilt
// wholesale from them.
func (s *eventService) UpdateEvent(ctx context.Context, id int64, req *dto.UpdateEventRequest) (*models.Event, error) {
	update := repositories.EventUpdate{
		EventTitle:    req.EventTitle,
		Description:   req.Description,
		Location:      req.Location,
		DurationHours: req.DurationHours,
	}

	timeFieldPresent := req.EventDate != nil || req.EventTimeHours != nil ||
		req.EventTimeMinutes != nil || req.EventTimePeriod != nil
	if timeFieldPresent {
		if req.EventDate == nil || req.EventTimeHours == nil || req.EventTimeMinutes == nil || req.EventTimePeriod == nil {
			return nil, apperrors.NewBadRequestError("eventDate, eventTimeHours, eventTimeMinutes and eventTimePeriod must be supplied together")
		}

		eventDateTime, err := CombineEventDateTime(*req.EventDate, *req.EventTimeHours, *req.EventTimeMinutes, *req.EventTimePeriod)
		if err != nil {
			return nil, err
		}
		update.EventDateTime = &eventDateTime
	}

	if err := s.eventRepo.Update(ctx, id, update); err != nil {
		return nil, err
	}

	return s.eventRepo.GetByID(ctx, id)
}

func (s *eventService) DeleteEvent(ctx context.Context, id int64) error {
	return s.eventRepo.Delete(ctx, id)
}
