package usecase

import (
	"context"

	"github.com/dezh-tech/immortal/pkg/logger"

	"memes/internal/domain/apperror"
	"memes/internal/domain/entity"
	"memes/internal/domain/repository/database"
	"memes/internal/domain/repository/minio"
)

type Deleter struct {
	retriever    database.Retriever
	dbRemover    database.Remover
	minioRemover minio.Remover
	reporter     *Reporter
}

func NewDeleter(retriever database.Retriever, dbRemover database.Remover, minioRemover minio.Remover,
	reporter *Reporter,
) *Deleter {
	return &Deleter{
		retriever:    retriever,
		dbRemover:    dbRemover,
		minioRemover: minioRemover,
		reporter:     reporter,
	}
}

// Delete removes the row first and the image second. Once the row is gone
// the image is unreachable, so a failed image removal is only logged.
func (d *Deleter) Delete(ctx context.Context, caller entity.Identity, id uint) error {
	defer d.reporter.track("delete")()

	err := d.delete(ctx, caller, id)
	d.reporter.mutation("delete", err)

	return err
}

func (d *Deleter) delete(ctx context.Context, caller entity.Identity, id uint) error {
	if err := authenticated(caller); err != nil {
		return err
	}

	meme, err := loadOwned(ctx, d.retriever, caller, id)
	if err != nil {
		return err
	}

	locator, err := d.dbRemover.Delete(ctx, id)
	if err != nil {
		logger.Error("failed to delete meme", "meme_id", id, "err", err)

		return classify(err, apperror.ErrRepositoryFailure, "Failed to delete meme")
	}
	meme.ImageURL = locator

	err = d.minioRemover.Delete(context.WithoutCancel(ctx), locator)
	d.reporter.blob("delete", err)
	if err != nil {
		logger.Warn("failed to remove image of deleted meme", "meme_id", id, "locator", locator, "err", err)
		d.reporter.orphan(ctx, locator, ReasonBlobDeleteFailed, id)
	}

	d.reporter.event(ctx, entity.EventDeleted, meme)

	return nil
}
