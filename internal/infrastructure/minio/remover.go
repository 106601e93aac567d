package minio

import (
	"context"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/minio/minio-go/v7"

	"memes/internal/domain/apperror"
)

type Remover struct {
	client *Client
	cfg    *RemoverConfig
}

func NewRemover(client *Client, cfg *RemoverConfig) *Remover {
	return &Remover{
		client: client,
		cfg:    cfg,
	}
}

func (r *Remover) Delete(ctx context.Context, locator string) error {
	name, err := objectIn(locator, r.cfg.Bucket)
	if err != nil {
		logger.Warn("skipping removal of foreign locator", "locator", locator, "err", err)

		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Timeout)*time.Millisecond)
	defer cancel()

	err = r.client.MinioClient.RemoveObject(ctx, r.cfg.Bucket, name, minio.RemoveObjectOptions{})
	if err != nil && !isNotFound(err) {
		logger.Error("failed to remove object", "object", name, "err", err)

		return apperror.Wrap(apperror.ErrStorageWriteFailed, "failed to remove image", err)
	}

	return nil
}
