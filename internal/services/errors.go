package services

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation classifies malformed, missing or out-of-range input.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound classifies requests for ids that have no row.
	ErrNotFound = errors.New("resource not found")
	// ErrConflict classifies uniqueness and referential-integrity violations.
	ErrConflict = errors.New("conflict with current state")
	// ErrConcurrentUpdate is returned when an update lost an optimistic-concurrency
	// race and the row still exists. It is not retried.
	ErrConcurrentUpdate = errors.New("concurrent update could not be reconciled")
)

// Error carries a human readable message for one of the sentinel kinds above.
type Error struct {
	Kind    error
	Message string
	// Fields maps field names to the rule they broke, for structural validation.
	Fields map[string]string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func validationError(format string, args ...interface{}) error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func conflictError(format string, args ...interface{}) error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

func notFoundError(resource string, id uint) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf("%s with ID %d not found", resource, id)}
}
