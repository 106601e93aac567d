package broker

import (
	"context"

	"memes/internal/domain/entity"
)

type Publisher interface {
	Publish(ctx context.Context, event entity.MemeEvent) error
}
