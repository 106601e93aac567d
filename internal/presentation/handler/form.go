package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"memes/internal/domain/apperror"
	"memes/internal/domain/entity"
	"memes/internal/presentation"
)

// readFile returns the multipart file field, or nil when the request has
// none.
func readFile(c echo.Context) (*entity.File, error) {
	header, err := c.FormFile(presentation.FileField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil //nolint
	}
	if err != nil {
		return nil, apperror.Wrap(apperror.ErrValidation, "invalid multipart form", err)
	}

	f, err := header.Open()
	if err != nil {
		return nil, apperror.Wrap(apperror.ErrValidation, "could not read uploaded file", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, apperror.Wrap(apperror.ErrValidation, "could not read uploaded file", err)
	}

	return &entity.File{
		Name:        header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}

// optionalField treats an empty value as absent.
func optionalField(c echo.Context, name string) *string {
	v := c.FormValue(name)
	if v == "" {
		return nil
	}

	return &v
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param(presentation.IDParam), 10, 64)
	if err != nil || id == 0 {
		return 0, apperror.Validation("id should be a positive integer")
	}

	return uint(id), nil
}
