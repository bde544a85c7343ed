package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankitr/coachdesk/internal/app/models"
	"github.com/ankitr/coachdesk/internal/app/models/dto"
)

type fakeEventService struct {
	events        []*models.Event
	lastLimit     int
	createdEvents []*models.Event
}

func (f *fakeEventService) CreateEvent(_ context.Context, req *dto.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		ID:            int64(len(f.createdEvents) + 1),
		EventTitle:    req.EventTitle,
		Description:   req.Description,
		Location:      req.Location,
		DurationHours: req.DurationHours,
	}
	f.createdEvents = append(f.createdEvents, event)
	return event, nil
}

func (f *fakeEventService) ListEvents(context.Context) ([]*models.Event, error) {
	return f.events, nil
}

func (f *fakeEventService) UpcomingEvents(_ context.Context, limit int) ([]*models.Event, error) {
	f.lastLimit = limit
	return f.events, nil
}

func (f *fakeEventService) GetEvent(_ context.Context, id int64) (*models.Event, error) {
	return &models.Event{ID: id}, nil
}

func (f *fakeEventService) UpdateEvent(_ context.Context, id int64, _ *dto.UpdateEventRequest) (*models.Event, error) {
	return &models.Event{ID: id}, nil
}

func (f *fakeEventService) DeleteEvent(context.Context, int64) error {
	return nil
}

func newEventTestRouter(svc *fakeEventService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewEventController(svc)
	router.POST("/api/v1/events", ctrl.CreateEvent)
	router.GET("/api/v1/events/upcoming", ctrl.GetUpcomingEvents)
	return router
}

func TestGetUpcomingEventsClampsLimit(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int
	}{
		{"default when missing", "", 5},
		{"explicit value passes through", "?limit=20", 20},
		{"oversized value is capped", "?limit=500", 50},
		{"garbage falls back to default", "?limit=lots", 5},
		{"negative falls back to default", "?limit=-2", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeEventService{events: []*models.Event{}}
			router := newEventTestRouter(svc)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/v1/events/upcoming"+tt.query, nil))

			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tt.wantLimit, svc.lastLimit)
		})
	}
}

func TestGetUpcomingEventsEmptyListIsOK(t *testing.T) {
	router := newEventTestRouter(&fakeEventService{events: []*models.Event{}})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/v1/events/upcoming", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Records []*models.Event `json:"records"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data.Records)
	assert.Empty(t, resp.Data.Records)
}

func TestCreateEventValidation(t *testing.T) {
	svc := &fakeEventService{}
	router := newEventTestRouter(svc)

	// Missing required fields
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/events", strings.NewReader(`{"eventTitle":"Open day"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Empty(t, svc.createdEvents)

	// Hour outside the 12-hour clock
	recorder = httptest.NewRecorder()
	body := `{"eventTitle":"Open day","eventDate":"2026-10-01","eventTimeHours":13,"eventTimeMinutes":0,"eventTimePeriod":"AM","location":"Main hall","durationHours":2}`
	req = httptest.NewRequest("POST", "/api/v1/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// Valid payload
	recorder = httptest.NewRecorder()
	body = `{"eventTitle":"Open day","eventDate":"2026-10-01","eventTimeHours":10,"eventTimeMinutes":30,"eventTimePeriod":"AM","location":"Main hall","durationHours":2}`
	req = httptest.NewRequest("POST", "/api/v1/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	require.Len(t, svc.createdEvents, 1)
	assert.Equal(t, "Open day", svc.createdEvents[0].EventTitle)
}
