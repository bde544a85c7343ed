package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ankitr/coachdesk/internal/app/models/dto"
	"github.com/ankitr/coachdesk/internal/app/services"
)

// Controllers bundles all controller instances for route registration
type Controllers struct {
	ContactController *ContactController
	CourseController  *CourseController
	EventController   *EventController
	StudentController *StudentController
	ResultController  *ResultController
}

// NewControllers creates all controllers from the service layer
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		ContactController: NewContactController(svcs.ContactService),
		CourseController:  NewCourseController(svcs.CourseService),
		EventController:   NewEventController(svcs.EventService),
		StudentController: NewStudentController(svcs.StudentService),
		ResultController:  NewResultController(svcs.ResultService),
	}
}

// parseIDParam extracts the numeric :id path parameter. On failure it
// writes a 400 response and returns false.
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID format")
		errorDetail = errorDetail.WithField("id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
