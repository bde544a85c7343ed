package models

import "time"

// Result is a single test score for a student in a course.
type Result struct {
	ID            int64     `json:"id"`
	StudentID     int64     `json:"studentId"`
	CourseID      int64     `json:"courseId"`
	TestName      string    `json:"testName"`
	MarksObtained float64   `json:"marksObtained"`
	TotalMarks    float64   `json:"totalMarks"`
	TestDate      time.Time `json:"testDate"`
	CreatedAt     time.Time `json:"createdAt"`
}
