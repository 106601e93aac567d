package database

import (
	"context"
	"errors"

	"github.com/dezh-tech/immortal/pkg/logger"
	"gorm.io/gorm"

	"memes/internal/domain/apperror"
	"memes/internal/domain/model"
)

var errNoRows = errors.New("no rows affected")

type MemeUpdater struct {
	db *Database
}

func NewMemeUpdater(db *Database) *MemeUpdater {
	return &MemeUpdater{db: db}
}

func (u *MemeUpdater) Update(ctx context.Context, id uint, description, imageURL *string) error {
	updates := map[string]any{}
	if description != nil {
		updates["description"] = *description
	}
	if imageURL != nil {
		updates["image_url"] = *imageURL
	}
	if len(updates) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, u.db.QueryTimeout)
	defer cancel()

	err := u.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Meme{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errNoRows
		}

		return nil
	})
	if errors.Is(err, errNoRows) {
		return apperror.NotFound("Meme", id)
	}
	if err != nil {
		logger.Error("failed to update meme", "id", id, "err", err)

		return apperror.Wrap(apperror.ErrRepositoryFailure, "failed to update meme", err)
	}

	return nil
}
