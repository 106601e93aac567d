package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"memes/internal/domain/apperror"
	"memes/internal/domain/entity"
	"memes/internal/domain/model"
	"memes/internal/domain/repository/database"
	"memes/pkg/utils"
)

func validateImage(file entity.File) error {
	if !utils.IsImage(file.ContentType) {
		return apperror.New(apperror.ErrInvalidMediaType, "Uploaded file is not an image")
	}
	if len(file.Data) == 0 {
		return apperror.Validation("Uploaded file is empty")
	}

	return nil
}

func authenticated(caller entity.Identity) error {
	if caller.ID == uuid.Nil {
		return apperror.New(apperror.ErrUnauthenticated, "Not authenticated")
	}

	return nil
}

// loadOwned returns the meme when caller owns it. A meme owned by someone
// else is reported exactly like a missing one.
func loadOwned(ctx context.Context, retriever database.Retriever, caller entity.Identity, id uint) (*model.Meme, error) {
	meme, err := retriever.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !caller.Owns(meme.UserID) {
		masked := apperror.NotFound("Meme", id)
		masked.Err = apperror.ErrForbidden

		return nil, masked
	}

	return meme, nil
}

// classify keeps errors that already belong to the taxonomy and files the
// rest under kind.
func classify(err error, kind error, message string) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return apperror.Wrap(kind, message, err)
}
