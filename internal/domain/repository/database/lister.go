package database

import (
	"context"

	"memes/internal/domain/model"
)

// Lister defines the interface for listing memes from the database.
type Lister interface {
	List(ctx context.Context, offset, limit int, sortField string, descending bool) ([]model.Meme, error)
}
