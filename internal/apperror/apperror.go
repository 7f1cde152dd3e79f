package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrUpstream   = errors.New("upstream service error")
)

// FieldErrors maps a request field name to the list of violations found on
// it. It is the body of every 400 response, so the frontend can attach
// messages to individual form inputs.
type FieldErrors map[string][]string

// Add appends a violation message for a field.
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

type AppError struct {
	Err     error       // sentinel category (ErrNotFound, ErrValidation, ...)
	Message string      // Human-readable error message
	Fields  FieldErrors // Optional: per-field violations for validation errors
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

// ValidationFailed reports a single-field violation. Handlers render it as a
// field-error map so the response shape matches multi-field failures.
func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Fields:  FieldErrors{field: {message}},
	}
}

// Invalid wraps a full field-error map produced by request validation.
func Invalid(fields FieldErrors) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: "invalid request",
		Fields:  fields,
	}
}

// Upstream converts an external service failure into a stable,
// capability-specific message. The cause stays on the chain for server-side
// logs; handlers never send it to the client.
func Upstream(capability string, cause error) *AppError {
	return &AppError{
		Err:     fmt.Errorf("%w: %w", ErrUpstream, cause),
		Message: fmt.Sprintf("failed to %s", capability),
	}
}
