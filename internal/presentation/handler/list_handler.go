package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"memes/internal/application/usecase"
	"memes/internal/application/usecase/abstraction"
	"memes/internal/domain/apperror"
	"memes/internal/presentation"
)

type ListHandler struct {
	lister abstraction.Lister
}

func NewListHandler(lister abstraction.Lister) *ListHandler {
	return &ListHandler{
		lister: lister,
	}
}

// Handle handles GET /memes/?page=&size=&sort_by=&sort_desc= requests.
func (h *ListHandler) Handle(c echo.Context) error {
	page, err := intQueryParam(c, presentation.PageQuery, 0)
	if err != nil {
		return presentation.WriteError(c, err, http.StatusUnprocessableEntity)
	}

	size, err := intQueryParam(c, presentation.SizeQuery, usecase.DefaultPageSize)
	if err != nil {
		return presentation.WriteError(c, err, http.StatusUnprocessableEntity)
	}

	desc := false
	if s := c.QueryParam(presentation.SortDescQuery); s != "" {
		desc, err = strconv.ParseBool(s)
		if err != nil {
			return presentation.WriteError(c,
				apperror.Validation(fmt.Sprintf("invalid '%s' value", presentation.SortDescQuery)),
				http.StatusUnprocessableEntity)
		}
	}

	memes, err := h.lister.List(c.Request().Context(), page, size, c.QueryParam(presentation.SortByQuery), desc)
	if err != nil {
		return presentation.WriteError(c, err, http.StatusUnprocessableEntity)
	}

	return c.JSON(http.StatusOK, memes)
}

func intQueryParam(c echo.Context, name string, fallback int) (int, error) {
	s := c.QueryParam(name)
	if s == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperror.Validation(fmt.Sprintf("invalid '%s' value", name))
	}

	return v, nil
}
