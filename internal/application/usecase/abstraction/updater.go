package abstraction

import (
	"context"

	"memes/internal/domain/entity"
)

// Updater replaces the description, the image, or both. A nil argument is
// left untouched.
type Updater interface {
	Update(ctx context.Context, caller entity.Identity, id uint, description *string, file *entity.File) error
}
