package presentation

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"memes/internal/domain/apperror"
	"memes/internal/domain/dto"
	"memes/internal/domain/entity"
)

// StatusOf maps the error taxonomy to an HTTP status. Validation errors use
// validationStatus since listing and sign-up report them as 422.
// Forbidden is reported exactly like NotFound.
func StatusOf(err error, validationStatus int) int {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		return validationStatus
	case errors.Is(err, apperror.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, apperror.ErrNotFound), errors.Is(err, apperror.ErrForbidden):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteError renders err as {"error": message}.
func WriteError(c echo.Context, err error, validationStatus int) error {
	status := StatusOf(err, validationStatus)

	return c.JSON(status, dto.Error{Error: apperror.Message(err, http.StatusText(status))})
}

// Caller returns the identity stored by the auth middleware.
func Caller(c echo.Context) entity.Identity {
	caller, _ := c.Get(IdentityKey).(entity.Identity)

	return caller
}
