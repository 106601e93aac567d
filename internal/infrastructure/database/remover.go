package database

import (
	"context"
	"errors"

	"github.com/dezh-tech/immortal/pkg/logger"
	"gorm.io/gorm"

	"memes/internal/domain/apperror"
	"memes/internal/domain/model"
)

type MemeRemover struct {
	db *Database
}

func NewMemeRemover(db *Database) *MemeRemover {
	return &MemeRemover{db: db}
}

// Delete removes the row and returns the locator it held when the
// transaction committed.
func (r *MemeRemover) Delete(ctx context.Context, id uint) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	var meme model.Meme
	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id", "image_url").First(&meme, id).Error; err != nil {
			return err
		}

		res := tx.Delete(&model.Meme{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperror.NotFound("Meme", id)
	}
	if err != nil {
		logger.Error("failed to remove meme", "id", id, "err", err)

		return "", apperror.Wrap(apperror.ErrRepositoryFailure, "failed to delete meme", err)
	}

	return meme.ImageURL, nil
}
