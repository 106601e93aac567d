package database

import (
	"context"

	"github.com/google/uuid"

	"memes/internal/domain/model"
)

type Writer interface {
	Create(ctx context.Context, description *string, imageURL string, owner uuid.UUID) (*model.Meme, error)
}
