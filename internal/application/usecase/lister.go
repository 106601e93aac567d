package usecase

import (
	"context"
	"math"

	"memes/internal/domain/apperror"
	"memes/internal/domain/dto"
	"memes/internal/domain/repository/database"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultSortBy   = "id"
)

type Lister struct {
	lister database.Lister
}

func NewLister(lister database.Lister) *Lister {
	return &Lister{
		lister: lister,
	}
}

// List returns one page of memes; offset is page * size. An empty page is
// reported as not found.
func (l *Lister) List(ctx context.Context, page, size int, sortBy string, descending bool) ([]dto.Meme, error) {
	if page < 0 {
		return nil, apperror.Validation("page should be greater than or equal to 0")
	}
	if size < 1 || size > MaxPageSize {
		return nil, apperror.Validation("size should be between 1 and 100")
	}
	if page > math.MaxInt/size {
		return nil, apperror.Validation("page is out of range")
	}
	if sortBy == "" {
		sortBy = DefaultSortBy
	}

	memes, err := l.lister.List(ctx, page*size, size, sortBy, descending)
	if err != nil {
		return nil, err
	}

	if len(memes) == 0 {
		return nil, apperror.New(apperror.ErrNotFound, "No memes found")
	}

	out := make([]dto.Meme, 0, len(memes))
	for i := range memes {
		out = append(out, dto.FromModel(&memes[i]))
	}

	return out, nil
}
