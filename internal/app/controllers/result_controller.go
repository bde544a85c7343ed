package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ankitr/coachdesk/internal/app/models/dto"
	"github.com/ankitr/coachdesk/internal/app/services"
	"github.com/ankitr/coachdesk/internal/middleware"
)

// ResultController handles recorded test result operations
type ResultController struct {
	resultService services.ResultService
}

// NewResultController creates a new ResultController
func NewResultController(resultService services.ResultService) *ResultController {
	return &ResultController{
		resultService: resultService,
	}
}

// CreateResult handles recording a test score
// @Summary Record a result
// @Description Records a test score for a student in a course
// @Tags results
// @Accept json
// @Produce json
// @Param request body dto.CreateResultRequest true "Result details"
// @Success 201 {object} dto.APIResponse{data=models.Result} "Result recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results [post]
func (c *ResultController) CreateResult(ctx *gin.Context) {
	var req dto.CreateResultRequest
	if !middleware.BindAndValidateJSON(ctx, &req) {
		return
	}

	result, err := c.resultService.CreateResult(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(result, "Result recorded successfully"))
}

// GetAllResults handles listing results
// @Summary List results
// @Description Retrieves results, newest test first, optionally scoped to one student
// @Tags results
// @Produce json
// @Param studentId query int false "Filter by student ID"
// @Success 200 {object} dto.APIResponse{data=dto.ResultListResponse} "Results retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student filter"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results [get]
func (c *ResultController) GetAllResults(ctx *gin.Context) {
	var studentID *int64
	if studentIDStr := ctx.Query("studentId"); studentIDStr != "" {
		id, err := strconv.ParseInt(studentIDStr, 10, 64)
		if err != nil || id <= 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID format")
			errorDetail = errorDetail.WithField("studentId")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		studentID = &id
	}

	results, err := c.resultService.ListResults(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.ResultListResponse{Records: results}, "Results retrieved successfully"))
}

// GetResultByID handles retrieving one result
// @Summary Get a result
// @Tags results
// @Produce json
// @Param id path int true "Result ID"
// @Success 200 {object} dto.APIResponse{data=models.Result} "Result retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results/{id} [get]
func (c *ResultController) GetResultByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	result, err := c.resultService.GetResult(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, "Result retrieved successfully"))
}

// UpdateResult handles a partial result update
// @Summary Update a result
// @Tags results
// @Accept json
// @Produce json
// @Param id path int true "Result ID"
// @Param request body dto.UpdateResultRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Result} "Result updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results/{id} [put]
func (c *ResultController) UpdateResult(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateResultRequest
	if !middleware.BindAndValidateJSON(ctx, &req) {
		return
	}

	result, err := c.resultService.UpdateResult(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, "Result updated successfully"))
}

// DeleteResult handles removing a result
// @Summary Delete a result
// @Tags results
// @Produce json
// @Param id path int true "Result ID"
// @Success 200 {object} dto.APIResponse "Result deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results/{id} [delete]
func (c *ResultController) DeleteResult(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.resultService.DeleteResult(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Result deleted successfully"))
}
