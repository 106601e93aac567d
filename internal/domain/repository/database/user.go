package database

import (
	"context"

	"github.com/google/uuid"

	"memes/internal/domain/model"
)

type UserWriter interface {
	CreateUser(ctx context.Context, user *model.User) error
}

type UserRetriever interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}
