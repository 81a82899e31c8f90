package entity_test

import (
	"strings"
	"testing"

	"osint-tracker/internal/domain/entity"
)

func TestValidationError_Error(t *testing.T) {
	err := &entity.ValidationError{Field: "name_en", Message: "is required"}
	if !strings.Contains(err.Error(), "name_en") {
		t.Errorf("Error() = %q, want it to name the field", err.Error())
	}
}

func TestCapacityError_Error(t *testing.T) {
	err := &entity.CapacityError{Collection: "twitter accounts", Limit: 10}
	msg := err.Error()
	if !strings.Contains(msg, "10") {
		t.Errorf("Error() = %q, want it to name the cap", msg)
	}
	if !strings.Contains(msg, "twitter accounts") {
		t.Errorf("Error() = %q, want it to name the collection", msg)
	}
}
