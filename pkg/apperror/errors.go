package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError indicates a required or malformed input field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Field)
}

// NotFoundError indicates a referenced entity does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// DuplicateError indicates an idempotency guard is already present.
type DuplicateError struct {
	Entity string
	Key    string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s already exists for %s", e.Entity, e.Key)
}

// TokenError indicates a missing or expired calendar credential.
type TokenError struct {
	Reason string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("calendar token: %s", e.Reason)
}

// ParseError indicates an unrecognized frequency descriptor.
type ParseError struct {
	Exercise   string
	Descriptor string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unrecognized frequency %q for exercise %q", e.Descriptor, e.Exercise)
}

// CalendarSubmissionError indicates a create-event call failed mid-sequence.
// Succeeded counts the instances created before the failure; the remaining
// Attempted - Succeeded - 1 instances were not attempted.
type CalendarSubmissionError struct {
	Succeeded int
	Attempted int
	Err       error
}

func (e *CalendarSubmissionError) Error() string {
	return fmt.Sprintf("calendar submission failed after %d of %d events: %v", e.Succeeded, e.Attempted, e.Err)
}

func (e *CalendarSubmissionError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps a taxonomy error to the status code delivery handlers
// should respond with.
func HTTPStatus(err error) int {
	var (
		validation *ValidationError
		notFound   *NotFoundError
		duplicate  *DuplicateError
		token      *TokenError
		parse      *ParseError
		submission *CalendarSubmissionError
	)
	switch {
	case errors.As(err, &validation), errors.As(err, &parse):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &duplicate):
		return http.StatusConflict
	case errors.As(err, &token):
		return http.StatusUnauthorized
	case errors.As(err, &submission):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
