package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrDuplicateSlug indicates a create collided with an existing
	// slug. Slugs are human-meaningful identifiers and must resolve
	// unambiguously, so duplicates are rejected at the storage boundary.
	ErrDuplicateSlug = errors.New("slug already exists")

	// ErrDuplicateUsername indicates a create collided with an existing username.
	ErrDuplicateUsername = errors.New("username already exists")
)

// ValidationError represents a validation error with field context.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
