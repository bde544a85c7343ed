package dto

import "github.com/ankitr/coachdesk/internal/app/models"

// CreateEventRequest carries the separate date and 12-hour clock fields
// that the server combines into one event datetime.
type CreateEventRequest struct {
	EventTitle       string  `json:"eventTitle" validate:"required"`
	Description      string  `json:"description"`
	EventDate        string  `json:"eventDate" validate:"required,datetime=2006-01-02"`
	EventTimeHours   int     `json:"eventTimeHours" validate:"required,min=1,max=12"`
	EventTimeMinutes int     `json:"eventTimeMinutes" validate:"min=0,max=59"`
	EventTimePeriod  string  `json:"eventTimePeriod" validate:"required,oneof=AM PM"`
	Location         string  `json:"location" validate:"required"`
	DurationHours    float64 `json:"durationHours" validate:"required,gt=0"`
}

// UpdateEventRequest is a partial update. The date and time fields must be
// supplied together so the combined datetime can be rebuilt.
type UpdateEventRequest struct {
	EventTitle       *string  `json:"eventTitle" validate:"omitempty,min=1"`
	Description      *string  `json:"description"`
	EventDate        *string  `json:"eventDate" validate:"omitempty,datetime=2006-01-02"`
	EventTimeHours   *int     `json:"eventTimeHours" validate:"omitempty,min=1,max=12"`
	EventTimeMinutes *int     `json:"eventTimeMinutes" validate:"omitempty,min=0,max=59"`
	EventTimePeriod  *string  `json:"eventTimePeriod" validate:"omitempty,oneof=AM PM"`
	Location         *string  `json:"location" validate:"omitempty,min=1"`
	DurationHours    *float64 `json:"durationHours" validate:"omitempty,gt=0"`
}

// EventListResponse wraps event records for list endpoints
type EventListResponse struct {
	Records []*models.Event `json:"records"`
}
