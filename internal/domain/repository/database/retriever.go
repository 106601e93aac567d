package database

import (
	"context"

	"memes/internal/domain/model"
)

type Retriever interface {
	GetByID(ctx context.Context, id uint) (*model.Meme, error)
}
