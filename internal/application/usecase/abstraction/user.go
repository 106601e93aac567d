package abstraction

import (
	"context"

	"memes/internal/domain/dto"
)

type Registrar interface {
	Register(ctx context.Context, req dto.SignUp) (dto.User, error)
}

type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (dto.Token, error)
}
