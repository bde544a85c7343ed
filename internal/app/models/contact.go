package models

import "time"

// ContactStatus represents the lifecycle state of an enquiry.
type ContactStatus string

// Valid contact statuses. There is no enforced transition graph; any
// status may move to any other through the update endpoint.
const (
	ContactStatusNew       ContactStatus = "new"
	ContactStatusContacted ContactStatus = "contacted"
	ContactStatusEnrolled  ContactStatus = "enrolled"
	ContactStatusRejected  ContactStatus = "rejected"
)

// IsValid reports whether s is one of the enumerated statuses.
func (s ContactStatus) IsValid() bool {
	switch s {
	case ContactStatusNew, ContactStatusContacted, ContactStatusEnrolled, ContactStatusRejected:
		return true
	}
	return false
}

// Contact is a public enquiry submitted through the marketing site.
type Contact struct {
	ID             int64         `json:"id"`
	FirstName      string        `json:"firstName"`
	LastName       string        `json:"lastName"`
	Email          string        `json:"email"`
	PhoneNumber    string        `json:"phoneNumber"`
	CourseInterest string        `json:"courseInterest"`
	Message        string        `json:"message"`
	Status         ContactStatus `json:"status"`
	CreatedAt      time.Time     `json:"createdAt"`
}
