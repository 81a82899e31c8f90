package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// CapacityError indicates that an insert would push a capped collection
// past its fixed limit. The limit is carried so the API layer can name
// the cap in its response.
type CapacityError struct {
	Collection string
	Limit      int
}

// Error returns a formatted error message naming the cap.
func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s capacity exceeded: maximum %d records allowed", e.Collection, e.Limit)
}
