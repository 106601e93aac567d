package usecase

import (
	"context"

	"github.com/dezh-tech/immortal/pkg/logger"

	"memes/internal/domain/apperror"
	"memes/internal/domain/entity"
	"memes/internal/domain/repository/database"
	"memes/internal/domain/repository/minio"
)

type Updater struct {
	retriever     database.Retriever
	updater       database.Updater
	minioUploader minio.Uploader
	minioRemover  minio.Remover
	reporter      *Reporter
}

func NewUpdater(retriever database.Retriever, updater database.Updater, minioUploader minio.Uploader,
	minioRemover minio.Remover, reporter *Reporter,
) *Updater {
	return &Updater{
		retriever:     retriever,
		updater:       updater,
		minioUploader: minioUploader,
		minioRemover:  minioRemover,
		reporter:      reporter,
	}
}

// Update stores the new image, removes the previous one and only then
// commits the row. If the new image cannot be stored the row is left as it
// was.
func (u *Updater) Update(ctx context.Context, caller entity.Identity, id uint, description *string,
	file *entity.File,
) error {
	defer u.reporter.track("update")()

	err := u.update(ctx, caller, id, description, file)
	u.reporter.mutation("update", err)

	return err
}

func (u *Updater) update(ctx context.Context, caller entity.Identity, id uint, description *string,
	file *entity.File,
) error {
	if err := authenticated(caller); err != nil {
		return err
	}

	meme, err := loadOwned(ctx, u.retriever, caller, id)
	if err != nil {
		return err
	}

	var newLocator *string
	if file != nil {
		if err := validateImage(*file); err != nil {
			return err
		}

		locator, err := u.minioUploader.Put(ctx, file.Data, file.Name, file.ContentType)
		u.reporter.blob("put", err)
		if err != nil {
			logger.Error("failed to store replacement image", "meme_id", id, "err", err)

			return classify(err, apperror.ErrStorageWriteFailed, "Failed to upload image")
		}
		newLocator = &locator

		err = u.minioRemover.Delete(ctx, meme.ImageURL)
		u.reporter.blob("delete", err)
		if err != nil {
			logger.Warn("failed to remove previous image", "meme_id", id, "locator", meme.ImageURL, "err", err)
			u.reporter.orphan(ctx, meme.ImageURL, ReasonOldBlobDeleteFailed, id)
		}
	}

	if description == nil && newLocator == nil {
		return nil
	}

	if err := u.updater.Update(ctx, id, description, newLocator); err != nil {
		logger.Error("failed to commit meme update", "meme_id", id, "err", err)
		if newLocator != nil {
			u.reporter.orphan(ctx, *newLocator, ReasonRowUpdateFailed, id)
		}

		return classify(err, apperror.ErrRepositoryFailure, "Failed to update meme")
	}

	if newLocator != nil {
		meme.ImageURL = *newLocator
	}
	u.reporter.event(ctx, entity.EventUpdated, meme)

	return nil
}
