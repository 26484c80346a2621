package common

import (
	"errors"
	"fmt"
)

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")

	// Lifecycle errors
	ErrInvalidTransition = errors.New("invalid status transition")

	// Entity errors
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrProgramNotFound = errors.New("program not found")
	ErrMemberNotFound  = errors.New("member not found")

	// Auth errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
	ErrValidation   = errors.New("validation failed")
)

// ValidationError carries per-item failure details for batch operations,
// so callers can tell which item was rejected instead of only that the
// batch failed.
type ValidationError struct {
	Items []ValidationItem
}

// ValidationItem identifies one rejected batch item
type ValidationItem struct {
	Index   int    `json:"index"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if len(e.Items) == 1 {
		return fmt.Sprintf("validation failed: item %d: %s", e.Items[0].Index, e.Items[0].Message)
	}
	return fmt.Sprintf("validation failed: %d invalid items", len(e.Items))
}

// Unwrap lets errors.Is(err, ErrValidation) match
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError builds a ValidationError from item details
func NewValidationError(items ...ValidationItem) *ValidationError {
	return &ValidationError{Items: items}
}
