package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"memes/internal/application/usecase/abstraction"
	"memes/internal/domain/dto"
	"memes/internal/presentation"
)

type UpdateHandler struct {
	updater abstraction.Updater
}

func NewUpdateHandler(updater abstraction.Updater) *UpdateHandler {
	return &UpdateHandler{
		updater: updater,
	}
}

// Handle handles PATCH /memes/:id; both the file and the description are
// optional.
func (h *UpdateHandler) Handle(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return presentation.WriteError(c, err, http.StatusUnprocessableEntity)
	}

	file, err := readFile(c)
	if err != nil {
		return presentation.WriteError(c, err, http.StatusBadRequest)
	}

	err = h.updater.Update(c.Request().Context(), presentation.Caller(c), id,
		optionalField(c, presentation.DescriptionField), file)
	if err != nil {
		return presentation.WriteError(c, err, http.StatusBadRequest)
	}

	return c.JSON(http.StatusOK, dto.Status{Status: presentation.StatusOK, Message: "Meme updated successfully"})
}
