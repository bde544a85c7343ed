package models

import "time"

// Student enrolled at the institute. Course and CoursePrice are the
// legacy single-course fields, superseded by the student_courses junction
// but still persisted for older rows. Password carries the bcrypt hash
// and is never serialized.
type Student struct {
	ID               int64      `json:"id"`
	StudentPhoto     *string    `json:"-"`
	StudentName      string     `json:"studentName"`
	Password         string     `json:"-"`
	FatherName       string     `json:"fatherName"`
	Gender           string     `json:"gender"`
	Course           *string    `json:"course,omitempty"`
	CoursePrice      *float64   `json:"coursePrice,omitempty"`
	SchoolName       string     `json:"schoolName"`
	MobileNumber     string     `json:"mobileNumber"`
	DateOfBirth      *time.Time `json:"dateOfBirth,omitempty"`
	Cast             string     `json:"cast"`
	AadharCardNumber string     `json:"aadharCardNumber"`
	FullAddress      string     `json:"fullAddress"`
	ResultPath       *string    `json:"-"`
	CreatedAt        time.Time  `json:"createdAt"`
}
