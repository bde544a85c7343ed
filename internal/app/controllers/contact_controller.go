package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ankitr/coachdesk/internal/app/models"
	"github.com/ankitr/coachdesk/internal/app/models/dto"
	"github.com/ankitr/coachdesk/internal/app/services"
	"github.com/ankitr/coachdesk/internal/middleware"
	"github.com/ankitr/coachdesk/internal/pkg/apperrors"
)

// ContactController handles enquiry related operations
type ContactController struct {
	contactService services.ContactService
}

// NewContactController creates a new ContactController
func NewContactController(contactService services.ContactService) *ContactController {
	return &ContactController{
		contactService: contactService,
	}
}

// CreateContact handles a public enquiry submission
// @Summary Submit an enquiry
// @Description Stores a new contact enquiry and notifies the admin address
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Enquiry details"
// @Success 201 {object} dto.APIResponse{data=models.Contact} "Enquiry submitted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /contacts [post]
func (c *ContactController) CreateContact(ctx *gin.Context) {
	var req dto.CreateContactRequest
	if !middleware.BindAndValidateJSON(ctx, &req) {
		return
	}

	contact, err := c.contactService.CreateContact(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(contact, "Enquiry submitted successfully"))
}

// GetAllContacts handles retrieving enquiries with optional filtering
// @Summary List enquiries
// @Description Retrieves enquiries, newest first, with optional search and status filters
// @Tags contacts
// @Produce json
// @Param search query string false "Substring match on name, email or phone"
// @Param status query string false "Filter by status" Enums(new, contacted, enrolled, rejected)
// @Success 200 {object} dto.APIResponse{data=dto.ContactListResponse} "Enquiries retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid status filter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /contacts [get]
func (c *ContactController) GetAllContacts(ctx *gin.Context) {
	filter := dto.ContactListFilter{
		Search: ctx.Query("search"),
		Status: ctx.Query("status"),
	}

	if filter.Status != "" && !models.ContactStatus(filter.Status).IsValid() {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidContactStatus)
		return
	}

	contacts, err := c.contactService.ListContacts(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.ContactListResponse{Records: contacts}, "Enquiries retrieved successfully"))
}

// GetContactStats handles the grouped status counts
// @Summary Enquiry statistics
// @Description Returns enquiry counts per status plus the total
// @Tags contacts
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ContactStatsResponse} "Statistics retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /contacts/stats [get]
func (c *ContactController) GetContactStats(ctx *gin.Context) {
	stats, err := c.contactService.GetStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats, "Statistics retrieved successfully"))
}

// GetContactByID handles retrieving one enquiry
// @Summary Get an enquiry
// @Tags contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} dto.APIResponse{data=models.Contact} "Enquiry retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Enquiry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /contacts/{id} [get]
func (c *ContactController) GetContactByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	contact, err := c.contactService.GetContact(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(contact, "Enquiry retrieved successfully"))
}

// UpdateContact handles a partial enquiry update
// @Summary Update an enquiry
// @Description Overwrites only the supplied fields, including the status
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path int true "Contact ID"
// @Param request body dto.UpdateContactRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Contact} "Enquiry updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 404 {object} dto.ErrorResponse "Enquiry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /contacts/{id} [put]
func (c *ContactController) UpdateContact(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateContactRequest
	if !middleware.BindAndValidateJSON(ctx, &req) {
		return
	}

	contact, err := c.contactService.UpdateContact(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(contact, "Enquiry updated successfully"))
}

// DeleteContact handles removing an enquiry
// @Summary Delete an enquiry
// @Tags contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} dto.APIResponse "Enquiry deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Enquiry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /contacts/{id} [delete]
func (c *ContactController) DeleteContact(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.contactService.DeleteContact(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Enquiry deleted successfully"))
}
