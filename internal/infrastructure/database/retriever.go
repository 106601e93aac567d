package database

import (
	"context"
	"errors"

	"github.com/dezh-tech/immortal/pkg/logger"
	"gorm.io/gorm"

	"memes/internal/domain/apperror"
	"memes/internal/domain/model"
)

type MemeRetriever struct {
	db *Database
}

func NewMemeRetriever(db *Database) *MemeRetriever {
	return &MemeRetriever{db: db}
}

func (r *MemeRetriever) GetByID(ctx context.Context, id uint) (*model.Meme, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	var meme model.Meme
	err := r.db.DB.WithContext(ctx).First(&meme, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Meme", id)
	}
	if err != nil {
		logger.Error("failed to retrieve meme by id", "id", id, "err", err)

		return nil, apperror.Wrap(apperror.ErrRepositoryFailure, "failed to load meme", err)
	}

	return &meme, nil
}
