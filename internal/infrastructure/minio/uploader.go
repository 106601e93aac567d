package minio

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"

	"memes/internal/domain/apperror"
)

type Uploader struct {
	client *Client
	cfg    *UploaderConfig
}

func NewUploader(client *Client, cfg *UploaderConfig) *Uploader {
	return &Uploader{
		client: client,
		cfg:    cfg,
	}
}

func (u *Uploader) Put(ctx context.Context, data []byte, suggestedName, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	if err := u.ensureBucket(ctx); err != nil {
		logger.Error("failed to prepare bucket", "bucket", u.cfg.Bucket, "err", err)

		return "", apperror.Wrap(apperror.ErrStorageUnavailable, "image storage is unavailable", err)
	}

	detectedMIME := mimetype.Detect(data).String()
	if !strings.HasPrefix(detectedMIME, "image/") {
		detectedMIME = contentType
	}

	name := objectName(suggestedName, detectedMIME)
	_, err := u.client.MinioClient.PutObject(ctx, u.cfg.Bucket, name, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType: detectedMIME,
		})
	if err != nil {
		logger.Error("failed to upload object", "object", name, "err", err)

		return "", apperror.Wrap(apperror.ErrStorageWriteFailed, "failed to store image", err)
	}

	return buildLocator(u.client.PublicURL, u.cfg.Bucket, name), nil
}

// ensureBucket creates the bucket on first use.
func (u *Uploader) ensureBucket(ctx context.Context) error {
	exists, err := u.client.MinioClient.BucketExists(ctx, u.cfg.Bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = u.client.MinioClient.MakeBucket(ctx, u.cfg.Bucket, minio.MakeBucketOptions{})
	if err != nil && minio.ToErrorResponse(err).Code != "BucketAlreadyOwnedByYou" {
		return err
	}

	return nil
}
