package dto

import (
	"mime/multipart"
	"time"

	"github.com/ankitr/coachdesk/internal/app/models"
)

// CreateStudentRequest is the multipart admission payload. courseIds may
// repeat to enroll the student in several courses at once.
type CreateStudentRequest struct {
	StudentName      string                `form:"studentName" validate:"required"`
	Password         string                `form:"password" validate:"required,min=6"`
	FatherName       string                `form:"fatherName" validate:"required"`
	Gender           string                `form:"gender" validate:"required"`
	MobileNumber     string                `form:"mobileNumber" validate:"required,len=10,numeric"`
	DateOfBirth      string                `form:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	SchoolName       string                `form:"schoolName"`
	Cast             string                `form:"cast"`
	AadharCardNumber string                `form:"aadharCardNumber" validate:"omitempty,len=12,numeric"`
	FullAddress      string                `form:"fullAddress"`
	CourseIDs        []int64               `form:"courseIds"`
	StudentPhoto     *multipart.FileHeader `form:"studentPhoto"`
	Result           *multipart.FileHeader `form:"result"`
}

// UpdateStudentRequest is a partial multipart update. A non-empty
// courseIds list replaces the student's enrollments.
type UpdateStudentRequest struct {
	StudentName      *string               `form:"studentName" validate:"omitempty,min=1"`
	Password         *string               `form:"password" validate:"omitempty,min=6"`
	FatherName       *string               `form:"fatherName" validate:"omitempty,min=1"`
	Gender           *string               `form:"gender"`
	MobileNumber     *string               `form:"mobileNumber" validate:"omitempty,len=10,numeric"`
	DateOfBirth      *string               `form:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	SchoolName       *string               `form:"schoolName"`
	Cast             *string               `form:"cast"`
	AadharCardNumber *string               `form:"aadharCardNumber" validate:"omitempty,len=12,numeric"`
	FullAddress      *string               `form:"fullAddress"`
	CourseIDs        []int64               `form:"courseIds"`
	StudentPhoto     *multipart.FileHeader `form:"studentPhoto"`
	Result           *multipart.FileHeader `form:"result"`
}

// StudentLoginRequest authenticates a student by name, password and
// registered mobile number.
type StudentLoginRequest struct {
	StudentName string `json:"studentName" validate:"required"`
	Password    string `json:"password" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required,len=10,numeric"`
}

// StudentLoginResponse carries the authenticated profile and access token
type StudentLoginResponse struct {
	Student   StudentResponse `json:"student"`
	Token     string          `json:"token"`
	ExpiresIn int             `json:"expiresIn"`
}

// StudentResponse is a student row with sensitive fields stripped and
// file paths resolved to absolute URLs.
type StudentResponse struct {
	ID               int64            `json:"id"`
	StudentName      string           `json:"studentName"`
	StudentPhotoURL  string           `json:"studentPhotoUrl,omitempty"`
	FatherName       string           `json:"fatherName"`
	Gender           string           `json:"gender"`
	Course           *string          `json:"course,omitempty"`
	CoursePrice      *float64         `json:"coursePrice,omitempty"`
	SchoolName       string           `json:"schoolName"`
	MobileNumber     string           `json:"mobileNumber"`
	DateOfBirth      string           `json:"dateOfBirth,omitempty"`
	Cast             string           `json:"cast"`
	AadharCardNumber string           `json:"aadharCardNumber"`
	FullAddress      string           `json:"fullAddress"`
	ResultURL        string           `json:"resultUrl,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	Courses          []CourseResponse `json:"courses,omitempty"`
	CourseIDs        []int64          `json:"courseIds,omitempty"`
}

// StudentListResponse wraps student records for list endpoints
type StudentListResponse struct {
	Records []StudentResponse `json:"records"`
}

// FromStudent converts a student model, stripping the password hash and
// resolving stored file paths via the supplied URL resolver.
func FromStudent(student *models.Student, fileURL func(string) string) StudentResponse {
	resp := StudentResponse{
		ID:               student.ID,
		StudentName:      student.StudentName,
		FatherName:       student.FatherName,
		Gender:           student.Gender,
		Course:           student.Course,
		CoursePrice:      student.CoursePrice,
		SchoolName:       student.SchoolName,
		MobileNumber:     student.MobileNumber,
		Cast:             student.Cast,
		AadharCardNumber: student.AadharCardNumber,
		FullAddress:      student.FullAddress,
		CreatedAt:        student.CreatedAt,
	}
	if student.StudentPhoto != nil {
		resp.StudentPhotoURL = fileURL(*student.StudentPhoto)
	}
	if student.ResultPath != nil {
		resp.ResultURL = fileURL(*student.ResultPath)
	}
	if student.DateOfBirth != nil {
		resp.DateOfBirth = student.DateOfBirth.Format("2006-01-02")
	}
	return resp
}
