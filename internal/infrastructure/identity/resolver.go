package identity

import (
	"context"
	"errors"
	"strings"

	"memes/internal/domain/apperror"
	"memes/internal/domain/entity"
	"memes/internal/domain/repository/database"
)

type Resolver struct {
	tokens *TokenService
	users  database.UserRetriever
}

func NewResolver(tokens *TokenService, users database.UserRetriever) *Resolver {
	return &Resolver{tokens: tokens, users: users}
}

// ResolveCaller accepts either a raw token or an "Authorization" header
// value and returns the identity of a user that still exists.
func (r *Resolver) ResolveCaller(ctx context.Context, credential string) (entity.Identity, error) {
	raw := strings.TrimSpace(credential)
	if scheme, rest, ok := strings.Cut(raw, " "); ok && strings.EqualFold(scheme, "Bearer") {
		raw = strings.TrimSpace(rest)
	}
	if raw == "" {
		return entity.Identity{}, apperror.New(apperror.ErrUnauthenticated, "Not authenticated")
	}

	id, err := r.tokens.Verify(raw)
	if err != nil {
		return entity.Identity{}, err
	}

	user, err := r.users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return entity.Identity{}, apperror.Wrap(apperror.ErrUnauthenticated, "Could not validate credentials", err)
		}

		return entity.Identity{}, err
	}

	return entity.Identity{ID: user.ID, Email: user.Email}, nil
}
