package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"memes/internal/application/usecase/abstraction"
	"memes/internal/domain/apperror"
	"memes/internal/domain/dto"
	"memes/internal/presentation"
)

type UserHandler struct {
	registrar     abstraction.Registrar
	authenticator abstraction.Authenticator
}

func NewUserHandler(registrar abstraction.Registrar, authenticator abstraction.Authenticator) *UserHandler {
	return &UserHandler{
		registrar:     registrar,
		authenticator: authenticator,
	}
}

// HandleSignUp handles POST /memes/user/sign-up with a JSON body.
func (h *UserHandler) HandleSignUp(c echo.Context) error {
	var req dto.SignUp
	if err := c.Bind(&req); err != nil {
		return presentation.WriteError(c, apperror.Wrap(apperror.ErrValidation, "invalid request body", err),
			http.StatusUnprocessableEntity)
	}

	user, err := h.registrar.Register(c.Request().Context(), req)
	if err != nil {
		return presentation.WriteError(c, err, http.StatusUnprocessableEntity)
	}

	return c.JSON(http.StatusOK, user)
}

// HandleToken handles POST /memes/user/token with a password form
// (username holds the email).
func (h *UserHandler) HandleToken(c echo.Context) error {
	email := c.FormValue("username")
	if email == "" {
		email = c.FormValue("email")
	}

	token, err := h.authenticator.Authenticate(c.Request().Context(), email, c.FormValue("password"))
	if err != nil {
		return presentation.WriteError(c, err, http.StatusUnprocessableEntity)
	}

	return c.JSON(http.StatusOK, token)
}
