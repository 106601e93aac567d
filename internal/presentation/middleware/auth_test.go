package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"memes/internal/domain/apperror"
	"memes/internal/domain/entity"
	"memes/internal/presentation"
)

type resolverStub struct {
	token    string
	identity entity.Identity
}

func (r resolverStub) ResolveCaller(_ context.Context, credential string) (entity.Identity, error) {
	if credential != "Bearer "+r.token {
		return entity.Identity{}, apperror.New(apperror.ErrUnauthenticated, "Not authenticated")
	}

	return r.identity, nil
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	caller := entity.Identity{ID: uuid.New(), Email: "a@example.com"}
	resolver := resolverStub{token: "good", identity: caller}

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Missing Authorization header",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Not authenticated"}`,
		},
		{
			name:           "Wrong token",
			header:         "Bearer bad",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Not authenticated"}`,
		},
		{
			name:           "Success",
			header:         "Bearer good",
			expectedStatus: http.StatusOK,
			expectedBody:   caller.ID.String(),
		},
	}

	e := echo.New()
	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, presentation.Caller(c).ID.String())
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tt.header != "" {
				req.Header.Set(presentation.AuthKey, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			_ = AuthMiddleware(resolver)(handler)(c)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}
