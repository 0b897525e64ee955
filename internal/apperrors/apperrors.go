package apperrors

import (
	"errors"
	"strings"
)

// Error kinds. Handlers map them to HTTP status codes with errors.Is.
var (
	ErrValidation             = errors.New("validation error")
	ErrDuplicate              = errors.New("duplicate")
	ErrNotFound               = errors.New("not found")
	ErrForbidden              = errors.New("forbidden")
	ErrInvalidStateTransition = errors.New("invalid state transition")
)

// AppError carries an error kind together with the message shown to the caller.
type AppError struct {
	Err     error  // error kind, one of the sentinels above
	Message string // human-readable message returned to the client
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Validation joins every violated field message into one error.
func Validation(messages ...string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: strings.Join(messages, ". "),
	}
}

func Duplicate(message string) *AppError {
	return &AppError{Err: ErrDuplicate, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Err: ErrNotFound, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Err: ErrForbidden, Message: message}
}

func InvalidStateTransition(message string) *AppError {
	return &AppError{Err: ErrInvalidStateTransition, Message: message}
}

// Message returns the client-facing message of err, or fallback when err
// carries no AppError.
func Message(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return fallback
}
