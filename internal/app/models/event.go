package models

import "time"

// Event is a scheduled institute event. EventDateTime is combined
// server-side from the date and 12-hour clock fields of the request.
type Event struct {
	ID            int64     `json:"id"`
	EventTitle    string    `json:"eventTitle"`
	Description   string    `json:"description"`
	EventDateTime time.Time `json:"eventDateTime"`
	Location      string    `json:"location"`
	DurationHours float64   `json:"durationHours"`
	CreatedAt     time.Time `json:"createdAt"`
}
