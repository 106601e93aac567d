package abstraction

import (
	"context"

	"memes/internal/domain/entity"
	"memes/internal/domain/model"
)

type Getter interface {
	Get(ctx context.Context, caller entity.Identity, id uint) (*model.Meme, error)
}

type ImageGetter interface {
	GetImage(ctx context.Context, caller entity.Identity, id uint) (entity.BlobObject, error)
}
