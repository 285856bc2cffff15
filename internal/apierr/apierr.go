// Package apierr defines the closed set of error kinds raised by the
// service core. The HTTP boundary serializes these uniformly; it never
// swallows or rewrites them.
package apierr

import (
	"time"
)

// Error is a typed API error carrying a stable machine code and an
// HTTP status alongside the human-readable message.
type Error struct {
	Message string         `json:"message"`
	Code    string         `json:"code"`
	Status  int            `json:"status_code"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// WithDetails attaches structured detail to the error and returns it.
func (e *Error) WithDetails(details map[string]any) *Error {
	e.Details = details
	return e
}

// Envelope is the wire shape of a serialized API error.
type Envelope struct {
	Error envelopeBody `json:"error"`
}

type envelopeBody struct {
	Message    string         `json:"message"`
	Code       string         `json:"code"`
	StatusCode int            `json:"status_code"`
	Details    map[string]any `json:"details,omitempty"`
	Timestamp  string         `json:"timestamp"`
}

// Envelope builds the response body for the error.
func (e *Error) Envelope() Envelope {
	return Envelope{Error: envelopeBody{
		Message:    e.Message,
		Code:       e.Code,
		StatusCode: e.Status,
		Details:    e.Details,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}}
}

func Validation(message string) *Error {
	return &Error{Message: message, Code: "VALIDATION_ERROR", Status: 400}
}

func Authentication(message string) *Error {
	if message == "" {
		message = "Authentication required"
	}
	return &Error{Message: message, Code: "AUTHENTICATION_ERROR", Status: 401}
}

func Authorization(message string) *Error {
	if message == "" {
		message = "Insufficient permissions"
	}
	return &Error{Message: message, Code: "AUTHORIZATION_ERROR", Status: 403}
}

func NotFound(message string) *Error {
	if message == "" {
		message = "Resource not found"
	}
	return &Error{Message: message, Code: "NOT_FOUND", Status: 404}
}

func Database(message string) *Error {
	if message == "" {
		message = "Database operation failed"
	}
	return &Error{Message: message, Code: "DATABASE_ERROR", Status: 500}
}

func Internal(message string) *Error {
	if message == "" {
		message = "An internal server error occurred"
	}
	return &Error{Message: message, Code: "INTERNAL_SERVER_ERROR", Status: 500}
}

// From normalizes an arbitrary error into a taxonomy error. Taxonomy
// errors pass through unmodified; anything else becomes Internal with
// the original message exposed only when debug is set.
func From(err error, debug bool) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	if debug {
		return Internal("").WithDetails(map[string]any{"cause": err.Error()})
	}
	return Internal("")
}
