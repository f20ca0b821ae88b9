package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "identities_contact_address_key"}
	if !IsUniqueViolation(dup) {
		t.Error("unique violation not detected")
	}
	if !IsUniqueViolation(fmt.Errorf("error reassigning identity: %w", dup)) {
		t.Error("wrapped unique violation not detected")
	}
	if IsUniqueViolation(errors.New("connection reset")) {
		t.Error("plain error reported as unique violation")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("foreign key violation reported as unique violation")
	}
}

func TestIsDuplicateConstraintError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "students_student_uid_key"}
	if !IsDuplicateConstraintError(dup, "students_student_uid_key") {
		t.Error("matching constraint not detected")
	}
	if IsDuplicateConstraintError(dup, "students_email_key") {
		t.Error("different constraint reported as match")
	}
}
