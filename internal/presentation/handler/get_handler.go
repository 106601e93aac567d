package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"memes/internal/application/usecase/abstraction"
	"memes/internal/domain/dto"
	"memes/internal/presentation"
)

type GetHandler struct {
	getter abstraction.Getter
}

func NewGetHandler(getter abstraction.Getter) *GetHandler {
	return &GetHandler{
		getter: getter,
	}
}

// Handle handles GET /memes/:id requests from the owner.
func (h *GetHandler) Handle(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return presentation.WriteError(c, err, http.StatusUnprocessableEntity)
	}

	meme, err := h.getter.Get(c.Request().Context(), presentation.Caller(c), id)
	if err != nil {
		return presentation.WriteError(c, err, http.StatusBadRequest)
	}

	return c.JSON(http.StatusOK, dto.FromModel(meme))
}

type ImageHandler struct {
	getter abstraction.ImageGetter
}

func NewImageHandler(getter abstraction.ImageGetter) *ImageHandler {
	return &ImageHandler{
		getter: getter,
	}
}

// Handle handles GET /memes/image/:id and streams the stored bytes back.
func (h *ImageHandler) Handle(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return presentation.WriteError(c, err, http.StatusUnprocessableEntity)
	}

	obj, err := h.getter.GetImage(c.Request().Context(), presentation.Caller(c), id)
	if err != nil {
		return presentation.WriteError(c, err, http.StatusBadRequest)
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = "image/jpeg"
	}

	return c.Blob(http.StatusOK, contentType, obj.Data)
}
