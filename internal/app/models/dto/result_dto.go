package dto

import "github.com/ankitr/coachdesk/internal/app/models"

// CreateResultRequest records a test score for a student in a course
type CreateResultRequest struct {
	StudentID     int64   `json:"studentId" validate:"required,min=1"`
	CourseID      int64   `json:"courseId" validate:"required,min=1"`
	TestName      string  `json:"testName" validate:"required"`
	MarksObtained float64 `json:"marksObtained" validate:"min=0"`
	TotalMarks    float64 `json:"totalMarks" validate:"required,gt=0"`
	TestDate      string  `json:"testDate" validate:"required,datetime=2006-01-02"`
}

// UpdateResultRequest carries a partial update of a result row
type UpdateResultRequest struct {
	TestName      *string  `json:"testName" validate:"omitempty,min=1"`
	MarksObtained *float64 `json:"marksObtained" validate:"omitempty,min=0"`
	TotalMarks    *float64 `json:"totalMarks" validate:"omitempty,gt=0"`
	TestDate      *string  `json:"testDate" validate:"omitempty,datetime=2006-01-02"`
}

// ResultListResponse wraps result records for list endpoints
type ResultListResponse struct {
	Records []*models.Result `json:"records"`
}
