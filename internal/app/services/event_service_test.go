package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankitr/coachdesk/internal/app/models/dto"
	"github.com/ankitr/coachdesk/internal/pkg/apperrors"
)

func TestCombineEventDateTime(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		hours   int
		minutes int
		period  string
		want    time.Time
	}{
		{
			name:   "morning hour stays",
			date:   "2026-03-15",
			hours:  9, minutes: 30, period: "AM",
			want: time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC),
		},
		{
			name:   "afternoon hour shifts by twelve",
			date:   "2026-03-15",
			hours:  7, minutes: 0, period: "PM",
			want: time.Date(2026, 3, 15, 19, 0, 0, 0, time.UTC),
		},
		{
			name:   "twelve AM is midnight",
			date:   "2026-03-15",
			hours:  12, minutes: 0, period: "AM",
			want: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "twelve PM is noon",
			date:   "2026-03-15",
			hours:  12, minutes: 45, period: "PM",
			want: time.Date(2026, 3, 15, 12, 45, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CombineEventDateTime(tt.date, tt.hours, tt.minutes, tt.period)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestCombineEventDateTimeRejectsBadInput(t *testing.T) {
	_, err := CombineEventDateTime("15-03-2026", 9, 0, "AM")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrBadRequest))

	_, err = CombineEventDateTime("2026-03-15", 9, 0, "am")
	assert.Error(t, err)
}

func TestUpdateEventRequiresTimeFieldsTogether(t *testing.T) {
	svc := NewEventService(nil)

	hours := 6
	_, err := svc.UpdateEvent(context.Background(), 1, &dto.UpdateEventRequest{
		EventTimeHours: &hours,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrBadRequest))

	date := "2026-05-01"
	_, err = svc.UpdateEvent(context.Background(), 1, &dto.UpdateEventRequest{
		EventDate: &date,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrBadRequest))

	// Omitting minutes alone must not silently zero them out.
	period := "PM"
	_, err = svc.UpdateEvent(context.Background(), 1, &dto.UpdateEventRequest{
		EventDate:       &date,
		EventTimeHours:  &hours,
		EventTimePeriod: &period,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
}
