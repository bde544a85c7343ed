package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	duplicateMobile := &pgconn.PgError{Code: "23505", ConstraintName: "students_mobile_number_key"}

	assert.True(t, IsDuplicateConstraintError(duplicateMobile, "students_mobile_number_key"))

	// Wrapping must not hide the violation.
	wrapped := fmt.Errorf("failed to insert student: %w", duplicateMobile)
	assert.True(t, IsDuplicateConstraintError(wrapped, "students_mobile_number_key"))

	// A different constraint is not this constraint.
	otherConstraint := &pgconn.PgError{Code: "23505", ConstraintName: "students_pkey"}
	assert.False(t, IsDuplicateConstraintError(otherConstraint, "students_mobile_number_key"))

	// A different SQLSTATE is never a duplicate.
	notNull := &pgconn.PgError{Code: "23502", ConstraintName: "students_mobile_number_key"}
	assert.False(t, IsDuplicateConstraintError(notNull, "students_mobile_number_key"))

	assert.False(t, IsDuplicateConstraintError(errors.New("connection reset"), "students_mobile_number_key"))
	assert.False(t, IsDuplicateConstraintError(nil, "students_mobile_number_key"))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "40001"}))
	assert.False(t, IsUniqueViolation(errors.New("timeout")))
}
