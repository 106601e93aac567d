package identity

import (
	"context"

	"memes/internal/domain/entity"
)

// Resolver turns a bearer credential into the calling identity.
type Resolver interface {
	ResolveCaller(ctx context.Context, credential string) (entity.Identity, error)
}

type TokenIssuer interface {
	Issue(identity entity.Identity) (string, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hashed, password string) bool
}
