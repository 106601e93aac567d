package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"memes/internal/application/usecase/abstraction"
	"memes/internal/domain/dto"
	"memes/internal/presentation"
)

type DeleteHandler struct {
	deleter abstraction.Deleter
}

func NewDeleteHandler(deleter abstraction.Deleter) *DeleteHandler {
	return &DeleteHandler{
		deleter: deleter,
	}
}

// Handle handles DELETE /memes/:id requests.
func (h *DeleteHandler) Handle(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return presentation.WriteError(c, err, http.StatusUnprocessableEntity)
	}

	if err := h.deleter.Delete(c.Request().Context(), presentation.Caller(c), id); err != nil {
		return presentation.WriteError(c, err, http.StatusBadRequest)
	}

	return c.JSON(http.StatusOK, dto.Status{
		Status:  presentation.StatusOK,
		Message: fmt.Sprintf("Meme number %d deleted successfully", id),
	})
}
