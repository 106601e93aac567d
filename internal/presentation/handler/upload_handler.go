package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"memes/internal/application/usecase/abstraction"
	"memes/internal/domain/apperror"
	"memes/internal/domain/dto"
	"memes/internal/presentation"
)

type UploadHandler struct {
	uploader abstraction.Uploader
}

func NewUploadHandler(uploader abstraction.Uploader) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
	}
}

// Handle handles POST /memes/ with a multipart file and an optional
// description.
func (h *UploadHandler) Handle(c echo.Context) error {
	file, err := readFile(c)
	if err != nil {
		return presentation.WriteError(c, err, http.StatusBadRequest)
	}
	if file == nil {
		return presentation.WriteError(c, apperror.Validation("file is required"), http.StatusBadRequest)
	}

	_, err = h.uploader.Upload(c.Request().Context(), presentation.Caller(c),
		optionalField(c, presentation.DescriptionField), *file)
	if err != nil {
		return presentation.WriteError(c, err, http.StatusBadRequest)
	}

	return c.JSON(http.StatusOK, dto.Status{Status: presentation.StatusOK, Message: "Meme uploaded successfully"})
}
