// Package apperrors defines the error taxonomy surfaced by the booking
// service. Request-time errors carry an HTTP status; asynchronous handler
// errors are wrapped with pkg/errors and never reach an HTTP caller.
package apperrors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError is an error with an associated HTTP status code.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewBadRequest(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

func NewUnauthorized(message string) *AppError {
	return &AppError{Status: http.StatusUnauthorized, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: message}
}

func NewConflict(message string) *AppError {
	return &AppError{Status: http.StatusConflict, Message: message}
}

// ValidationError signals that an event payload failed schema validation.
// It is internal to the event bus and never mapped to an HTTP status.
type ValidationError struct {
	Topic   string
	Message string
}

func (e *ValidationError) Error() string {
	return "invalid event payload for " + e.Topic + ": " + e.Message
}

func NewValidationError(topic, message string) *ValidationError {
	return &ValidationError{Topic: topic, Message: message}
}

// StatusCode extracts the HTTP status for an error, defaulting to 500.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// IsValidation reports whether the error is a schema validation failure.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
