package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactStatusIsValid(t *testing.T) {
	for _, status := range []ContactStatus{
		ContactStatusNew, ContactStatusContacted, ContactStatusEnrolled, ContactStatusRejected,
	} {
		assert.True(t, status.IsValid(), string(status))
	}

	assert.False(t, ContactStatus("archived").IsValid())
	assert.False(t, ContactStatus("").IsValid())
	assert.False(t, ContactStatus("New").IsValid(), "statuses are case sensitive")
}
