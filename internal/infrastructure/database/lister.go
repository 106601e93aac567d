package database

import (
	"context"

	"github.com/dezh-tech/immortal/pkg/logger"
	"gorm.io/gorm/clause"

	"memes/internal/domain/apperror"
	"memes/internal/domain/model"
)

// SortableFields are the memes columns a listing may be ordered by.
var SortableFields = map[string]struct{}{
	"id":          {},
	"description": {},
	"image_url":   {},
	"created_at":  {},
}

type MemeLister struct {
	db *Database
}

func NewMemeLister(db *Database) *MemeLister {
	return &MemeLister{db: db}
}

func (l *MemeLister) List(ctx context.Context, offset, limit int, sortField string,
	descending bool,
) ([]model.Meme, error) {
	if _, ok := SortableFields[sortField]; !ok {
		return nil, apperror.Wrap(apperror.ErrInvalidSortField, "invalid sort field: "+sortField, nil)
	}

	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	query := l.db.DB.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: sortField}, Desc: descending})
	if sortField != "id" {
		query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	}

	var memes []model.Meme
	if err := query.Offset(offset).Limit(limit).Find(&memes).Error; err != nil {
		logger.Error("failed to list memes", "sort_by", sortField, "err", err)

		return nil, apperror.Wrap(apperror.ErrRepositoryFailure, "failed to list memes", err)
	}

	return memes, nil
}
