package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"memes/internal/domain/repository/identity"
	"memes/internal/presentation"
)

// AuthMiddleware resolves the bearer credential and stores the caller's
// identity on the context. Requests without a valid credential stop here.
func AuthMiddleware(resolver identity.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, err := resolver.ResolveCaller(c.Request().Context(), c.Request().Header.Get(presentation.AuthKey))
			if err != nil {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")

				return presentation.WriteError(c, err, http.StatusUnauthorized)
			}

			c.Set(presentation.IdentityKey, caller)

			return next(c)
		}
	}
}
