package abstraction

import (
	"context"

	"memes/internal/domain/entity"
	"memes/internal/domain/model"
)

type Uploader interface {
	Upload(ctx context.Context, caller entity.Identity, description *string, file entity.File) (*model.Meme, error)
}
