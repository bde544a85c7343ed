package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ankitr/coachdesk/internal/app/models"
)

func testFileURL(storedPath string) string {
	if storedPath == "" {
		return ""
	}
	return "http://localhost:8080/uploads/" + storedPath
}

func TestFromStudentStripsSensitiveFields(t *testing.T) {
	photo := "students/abc.jpg"
	result := "results/def.pdf"
	dob := time.Date(2008, 11, 3, 0, 0, 0, 0, time.UTC)

	student := &models.Student{
		ID:           7,
		StudentName:  "Ravi Kumar",
		Password:     "$2a$12$somehash",
		StudentPhoto: &photo,
		ResultPath:   &result,
		MobileNumber: "9876543210",
		DateOfBirth:  &dob,
	}

	resp := FromStudent(student, testFileURL)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "http://localhost:8080/uploads/students/abc.jpg", resp.StudentPhotoURL)
	assert.Equal(t, "http://localhost:8080/uploads/results/def.pdf", resp.ResultURL)
	assert.Equal(t, "2008-11-03", resp.DateOfBirth)
}

func TestFromStudentHandlesMissingOptionalFields(t *testing.T) {
	resp := FromStudent(&models.Student{ID: 1, StudentName: "No Extras"}, testFileURL)

	assert.Empty(t, resp.StudentPhotoURL)
	assert.Empty(t, resp.ResultURL)
	assert.Empty(t, resp.DateOfBirth)
	assert.Nil(t, resp.Course)
	assert.Nil(t, resp.CoursePrice)
}

func TestFromCourseResolvesPDFURL(t *testing.T) {
	pdf := "courses/syllabus.pdf"
	course := &models.Course{ID: 3, CourseName: "Physics", Price: 4999, CoursePDFPath: &pdf}

	resp := FromCourse(course, testFileURL)
	assert.Equal(t, "http://localhost:8080/uploads/courses/syllabus.pdf", resp.CoursePDFURL)

	resp = FromCourse(&models.Course{ID: 4, CourseName: "Maths", Price: 3999}, testFileURL)
	assert.Empty(t, resp.CoursePDFURL)
}
