package dto

import "github.com/ankitr/coachdesk/internal/app/models"

// CreateContactRequest is the public enquiry form payload
type CreateContactRequest struct {
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	PhoneNumber    string `json:"phoneNumber" validate:"required"`
	CourseInterest string `json:"courseInterest" validate:"required"`
	Message        string `json:"message" validate:"required"`
}

// UpdateContactRequest carries a partial update; only non-nil fields
// overwrite stored columns.
type UpdateContactRequest struct {
	FirstName      *string `json:"firstName" validate:"omitempty,min=1"`
	LastName       *string `json:"lastName" validate:"omitempty,min=1"`
	Email          *string `json:"email" validate:"omitempty,email"`
	PhoneNumber    *string `json:"phoneNumber" validate:"omitempty,min=1"`
	CourseInterest *string `json:"courseInterest"`
	Message        *string `json:"message"`
	Status         *string `json:"status" validate:"omitempty,oneof=new contacted enrolled rejected"`
}

// ContactListFilter holds the optional list query parameters
type ContactListFilter struct {
	Search string
	Status string
}

// ContactListResponse wraps contact records for list endpoints
type ContactListResponse struct {
	Records []*models.Contact `json:"records"`
}

// ContactStatsResponse is the grouped status count payload
type ContactStatsResponse struct {
	Total     int64 `json:"total"`
	New       int64 `json:"new"`
	Contacted int64 `json:"contacted"`
	Enrolled  int64 `json:"enrolled"`
	Rejected  int64 `json:"rejected"`
}
