// Package apperror holds the error taxonomy shared by every layer.
// Callers match with errors.Is against the sentinels below.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidMediaType   = fmt.Errorf("%w: uploaded file is not an image", ErrValidation)
	ErrInvalidSortField   = fmt.Errorf("%w: invalid sort field", ErrValidation)
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrConflict           = errors.New("conflict")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrStorageWriteFailed = errors.New("storage write failed")
	ErrRepositoryFailure  = errors.New("repository failure")
)

// AppError carries a user facing message next to the taxonomy member it
// belongs to. Err is the underlying cause and is never shown to clients.
type AppError struct {
	Kind    error
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *AppError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}

	return []error{e.Kind}
}

func New(kind error, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func Wrap(kind error, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *AppError {
	return New(ErrValidation, message)
}

func NotFound(resource string, id any) *AppError {
	return New(ErrNotFound, fmt.Sprintf("%s number %v does not exist", resource, id))
}

// Message returns the client safe message of err, or fallback when err
// carries none.
func Message(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}

	return fallback
}
