package abstraction

import (
	"context"

	"memes/internal/domain/dto"
)

type Lister interface {
	List(ctx context.Context, page, size int, sortBy string, descending bool) ([]dto.Meme, error)
}
