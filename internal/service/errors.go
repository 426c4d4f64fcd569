package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed or missing request fields.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks an unknown package or booking.
	ErrNotFound = errors.New("not found")
	// ErrUpstreamUnavailable marks a failing store.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// ValidationError describes one rejected request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func upstream(store string, err error) error {
	return fmt.Errorf("%s store: %w: %w", store, ErrUpstreamUnavailable, err)
}
