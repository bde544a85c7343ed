package dto

import (
	"mime/multipart"
	"time"

	"github.com/ankitr/coachdesk/internal/app/models"
)

// CreateCourseRequest is a multipart payload with an optional syllabus PDF
type CreateCourseRequest struct {
	CourseName string                `form:"courseName" validate:"required"`
	Price      float64               `form:"price" validate:"required,gt=0"`
	CoursePDF  *multipart.FileHeader `form:"coursePdf"`
}

// UpdateCourseRequest carries a partial multipart update
type UpdateCourseRequest struct {
	CourseName *string               `form:"courseName" validate:"omitempty,min=1"`
	Price      *float64              `form:"price" validate:"omitempty,gt=0"`
	CoursePDF  *multipart.FileHeader `form:"coursePdf"`
}

// CourseResponse is a course row with the PDF resolved to an absolute URL
type CourseResponse struct {
	ID           int64     `json:"id"`
	CourseName   string    `json:"courseName"`
	Price        float64   `json:"price"`
	CoursePDFURL string    `json:"coursePdfUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CourseListResponse wraps course records for list endpoints
type CourseListResponse struct {
	Records []CourseResponse `json:"records"`
}

// FromCourse converts a course model, resolving the stored PDF path via
// the supplied URL resolver.
func FromCourse(course *models.Course, fileURL func(string) string) CourseResponse {
	resp := CourseResponse{
		ID:         course.ID,
		CourseName: course.CourseName,
		Price:      course.Price,
		CreatedAt:  course.CreatedAt,
	}
	if course.CoursePDFPath != nil {
		resp.CoursePDFURL = fileURL(*course.CoursePDFPath)
	}
	return resp
}
