package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ankitr/coachdesk/internal/app/models/dto"
	"github.com/ankitr/coachdesk/internal/app/services"
	"github.com/ankitr/coachdesk/internal/middleware"
	"github.com/ankitr/coachdesk/internal/pkg/helpers"
)

// EventController handles scheduled event operations
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// CreateEvent handles scheduling an event
// @Summary Create an event
// @Description Combines the date and 12-hour clock fields into one stored timestamp
// @Tags events
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.APIResponse{data=models.Event} "Event created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if !middleware.BindAndValidateJSON(ctx, &req) {
		return
	}

	event, err := c.eventService.CreateEvent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(event, "Event created successfully"))
}

// GetAllEvents handles listing all events by scheduled time
// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.EventListResponse} "Events retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events [get]
func (c *EventController) GetAllEvents(ctx *gin.Context) {
	events, err := c.eventService.ListEvents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.EventListResponse{Records: events}, "Events retrieved successfully"))
}

// GetUpcomingEvents handles listing events scheduled from now on
// @Summary List upcoming events
// @Description Returns events at or after the current time, soonest first
// @Tags events
// @Produce json
// @Param limit query int false "Maximum records (default: 5, max: 50)" default(5) minimum(1) maximum(50)
// @Success 200 {object} dto.APIResponse{data=dto.EventListResponse} "Events retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/upcoming [get]
func (c *EventController) GetUpcomingEvents(ctx *gin.Context) {
	limit := helpers.ParseLimitParam(ctx, helpers.DefaultUpcomingLimit, helpers.MaxLimit)

	events, err := c.eventService.UpcomingEvents(ctx, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.EventListResponse{Records: events}, "Events retrieved successfully"))
}

// GetEventByID handles retrieving one event
// @Summary Get an event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=models.Event} "Event retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/{id} [get]
func (c *EventController) GetEventByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	event, err := c.eventService.GetEvent(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event, "Event retrieved successfully"))
}

// UpdateEvent handles a partial event update
// @Summary Update an event
// @Description Overwrites only the supplied fields; date and clock fields travel together
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body dto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Event} "Event updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if !middleware.BindAndValidateJSON(ctx, &req) {
		return
	}

	event, err := c.eventService.UpdateEvent(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event, "Event updated successfully"))
}

// DeleteEvent handles removing an event
// @Summary Delete an event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse "Event deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.eventService.DeleteEvent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Event deleted successfully"))
}
