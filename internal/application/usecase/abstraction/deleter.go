package abstraction

import (
	"context"

	"memes/internal/domain/entity"
)

type Deleter interface {
	Delete(ctx context.Context, caller entity.Identity, id uint) error
}
