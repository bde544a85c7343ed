package models

import "time"

// Course offered by the institute. CoursePDFPath holds the relative
// storage path of the syllabus PDF, nil when none was uploaded.
type Course struct {
	ID            int64     `json:"id"`
	CourseName    string    `json:"courseName"`
	Price         float64   `json:"price"`
	CoursePDFPath *string   `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
}
