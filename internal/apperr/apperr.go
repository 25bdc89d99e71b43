// Package apperr defines the error taxonomy shared by repositories, services
// and the HTTP boundary. Services return these errors; the central error
// handler in internal/server is the only place that turns them into
// responses.
package apperr

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// Error is a domain error carrying the HTTP status chosen by the throwing
// site.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// New builds a domain error with an explicit status code.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error   { return New(http.StatusBadRequest, message) }
func Unauthorized(message string) *Error { return New(http.StatusUnauthorized, message) }
func Forbidden(message string) *Error    { return New(http.StatusForbidden, message) }
func NotFound(message string) *Error     { return New(http.StatusNotFound, message) }

// ValidationError carries field-level messages from schema validation and
// renders as HTTP 422.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation error" }

// Validation wraps a set of field violations.
func Validation(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// FromDB translates known storage errors into domain errors. Unknown errors
// pass through unchanged and surface as 500 at the boundary.
func FromDB(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound("Record not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return BadRequest("Unique constraint violation")
	}
	return err
}
