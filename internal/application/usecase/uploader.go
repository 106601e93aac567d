package usecase

import (
	"context"

	"github.com/dezh-tech/immortal/pkg/logger"

	"memes/internal/domain/apperror"
	"memes/internal/domain/entity"
	"memes/internal/domain/model"
	"memes/internal/domain/repository/database"
	"memes/internal/domain/repository/minio"
)

type Uploader struct {
	writer        database.Writer
	minioUploader minio.Uploader
	reporter      *Reporter
}

func NewUploader(writer database.Writer, minioUploader minio.Uploader, reporter *Reporter) *Uploader {
	return &Uploader{
		writer:        writer,
		minioUploader: minioUploader,
		reporter:      reporter,
	}
}

// Upload stores the image first and the row second. A row that fails to
// commit leaves the stored image behind as an orphan; a row never points at
// an image that was not stored.
func (u *Uploader) Upload(ctx context.Context, caller entity.Identity, description *string,
	file entity.File,
) (*model.Meme, error) {
	defer u.reporter.track("create")()

	meme, err := u.upload(ctx, caller, description, file)
	u.reporter.mutation("create", err)

	return meme, err
}

func (u *Uploader) upload(ctx context.Context, caller entity.Identity, description *string,
	file entity.File,
) (*model.Meme, error) {
	if err := authenticated(caller); err != nil {
		return nil, err
	}

	if err := validateImage(file); err != nil {
		return nil, err
	}

	locator, err := u.minioUploader.Put(ctx, file.Data, file.Name, file.ContentType)
	u.reporter.blob("put", err)
	if err != nil {
		logger.Error("failed to store image", "owner", caller.ID.String(), "err", err)

		return nil, classify(err, apperror.ErrStorageWriteFailed, "Failed to upload image")
	}

	meme, err := u.writer.Create(ctx, description, locator, caller.ID)
	if err != nil {
		logger.Error("failed to save meme", "owner", caller.ID.String(), "locator", locator, "err", err)
		u.reporter.orphan(ctx, locator, ReasonRowCreateFailed, 0)

		return nil, classify(err, apperror.ErrRepositoryFailure, "Failed to save meme")
	}

	u.reporter.event(ctx, entity.EventCreated, meme)

	return meme, nil
}
