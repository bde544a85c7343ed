package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ankitr/coachdesk/internal/app/models/dto"
	"github.com/ankitr/coachdesk/internal/app/services"
	"github.com/ankitr/coachdesk/internal/middleware"
)

// CourseController handles course catalog operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse handles adding a course with an optional syllabus PDF
// @Summary Create a course
// @Description Creates a course from multipart form data with an optional PDF upload
// @Tags courses
// @Accept multipart/form-data
// @Produce json
// @Param courseName formData string true "Course name"
// @Param price formData number true "Course price"
// @Param coursePdf formData file false "Syllabus PDF"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse} "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !middleware.BindAndValidateForm(ctx, &req) {
		return
	}

	course, err := c.courseService.CreateCourse(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(course, "Course created successfully"))
}

// GetAllCourses handles listing the course catalog
// @Summary List courses
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.ListCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses, "Courses retrieved successfully"))
}

// GetCourseByID handles retrieving one course
// @Summary Get a course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.GetCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course, "Course retrieved successfully"))
}

// UpdateCourse handles a partial course update
// @Summary Update a course
// @Description Overwrites only the supplied fields; a new PDF replaces the stored one
// @Tags courses
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Course ID"
// @Param courseName formData string false "Course name"
// @Param price formData number false "Course price"
// @Param coursePdf formData file false "Replacement syllabus PDF"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if !middleware.BindAndValidateForm(ctx, &req) {
		return
	}

	course, err := c.courseService.UpdateCourse(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course, "Course updated successfully"))
}

// DeleteCourse handles removing a course and its stored PDF
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse "Course deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Course deleted successfully"))
}
