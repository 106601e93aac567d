package minio

import (
	"context"
	"io"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/minio/minio-go/v7"

	"memes/internal/domain/apperror"
	"memes/internal/domain/entity"
)

type Fetcher struct {
	client *Client
	cfg    *FetcherConfig
}

func NewFetcher(client *Client, cfg *FetcherConfig) *Fetcher {
	return &Fetcher{
		client: client,
		cfg:    cfg,
	}
}

func (f *Fetcher) Get(ctx context.Context, locator string) (entity.BlobObject, error) {
	name, err := objectIn(locator, f.cfg.Bucket)
	if err != nil {
		return entity.BlobObject{}, apperror.Wrap(apperror.ErrNotFound, "image does not exist", err)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(f.cfg.Timeout)*time.Millisecond)
	defer cancel()

	obj, err := f.client.MinioClient.GetObject(ctx, f.cfg.Bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return entity.BlobObject{}, classifyReadError(name, err)
	}
	defer obj.Close()

	// GetObject is lazy; Stat surfaces a missing key before any read.
	info, err := obj.Stat()
	if err != nil {
		return entity.BlobObject{}, classifyReadError(name, err)
	}

	data, err := io.ReadAll(obj)
	if err != nil {
		return entity.BlobObject{}, classifyReadError(name, err)
	}

	return entity.BlobObject{
		Data:        data,
		ContentType: info.ContentType,
	}, nil
}

func classifyReadError(name string, err error) error {
	if isNotFound(err) {
		return apperror.Wrap(apperror.ErrNotFound, "image does not exist", err)
	}

	logger.Error("failed to read object", "object", name, "err", err)

	return apperror.Wrap(apperror.ErrStorageUnavailable, "image storage is unavailable", err)
}
