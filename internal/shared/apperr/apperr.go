// Package apperr defines the domain error taxonomy shared across features.
// Errors carry an HTTP status and a machine-readable code, and are only
// translated into a wire response by the terminal error middleware.
package apperr

import "net/http"

// Machine-readable error codes exposed to API clients.
const (
	CodeResourceNotFound       = "RESOURCE_NOT_FOUND"
	CodeAccessUnauthorized     = "ACCESS_UNAUTHORIZED"
	CodeInternalServerError    = "INTERNAL_SERVER_ERROR"
	CodeAuthEmailAlreadyExists = "AUTH_EMAIL_ALREADY_EXISTS"
	CodeTooManyRequests        = "TOO_MANY_REQUESTS"
)

// Error is a typed domain failure with an associated HTTP status.
// It is immutable once constructed and must propagate untouched until the
// error middleware decides the wire representation.
type Error struct {
	// Status is the HTTP status code returned to the client.
	Status int

	// Code is an optional machine-readable error code.
	Code string

	// Message is the human-readable description.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// NotFound returns a 404 error. An empty message falls back to the default.
func NotFound(message string) *Error {
	if message == "" {
		message = "Resource not found"
	}
	return &Error{Status: http.StatusNotFound, Code: CodeResourceNotFound, Message: message}
}

// BadRequest returns a 400 error with a caller-supplied code.
func BadRequest(message, code string) *Error {
	if message == "" {
		message = "Bad Request"
	}
	return &Error{Status: http.StatusBadRequest, Code: code, Message: message}
}

// Unauthorized returns a 401 error.
func Unauthorized(message string) *Error {
	if message == "" {
		message = "Unauthorized Access"
	}
	return &Error{Status: http.StatusUnauthorized, Code: CodeAccessUnauthorized, Message: message}
}

// Internal returns a 500 error.
func Internal(message string) *Error {
	if message == "" {
		message = "Internal Server Error"
	}
	return &Error{Status: http.StatusInternalServerError, Code: CodeInternalServerError, Message: message}
}

// NewHTTP returns an error with an arbitrary status and code.
func NewHTTP(status int, code, message string) *Error {
	if message == "" {
		message = "Http Exception Error"
	}
	return &Error{Status: status, Code: code, Message: message}
}
