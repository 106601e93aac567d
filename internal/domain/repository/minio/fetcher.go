package minio

import (
	"context"

	"memes/internal/domain/entity"
)

type Fetcher interface {
	Get(ctx context.Context, locator string) (entity.BlobObject, error)
}
