package database

import (
	"context"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"memes/internal/domain/apperror"
	"memes/internal/domain/model"
)

type MemeWriter struct {
	db *Database
}

func NewMemeWriter(db *Database) *MemeWriter {
	return &MemeWriter{db: db}
}

func (w *MemeWriter) Create(ctx context.Context, description *string, imageURL string,
	owner uuid.UUID,
) (*model.Meme, error) {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	meme := &model.Meme{
		Description: description,
		ImageURL:    imageURL,
		UserID:      owner,
	}

	err := w.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(meme).Error
	})
	if err != nil {
		logger.Error("failed to create meme", "image_url", imageURL, "err", err)

		return nil, apperror.Wrap(apperror.ErrRepositoryFailure, "failed to save meme", err)
	}

	return meme, nil
}
