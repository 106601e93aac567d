package usecase

import (
	"context"
	"errors"

	"github.com/dezh-tech/immortal/pkg/logger"

	"memes/internal/domain/apperror"
	"memes/internal/domain/entity"
	"memes/internal/domain/model"
	"memes/internal/domain/repository/database"
	"memes/internal/domain/repository/minio"
)

// Getter returns a meme to its owner only.
type Getter struct {
	retriever database.Retriever
}

func NewGetter(retriever database.Retriever) *Getter {
	return &Getter{
		retriever: retriever,
	}
}

func (g *Getter) Get(ctx context.Context, caller entity.Identity, id uint) (*model.Meme, error) {
	if err := authenticated(caller); err != nil {
		return nil, err
	}

	return loadOwned(ctx, g.retriever, caller, id)
}

// ImageGetter returns the stored image of a meme to its owner only.
type ImageGetter struct {
	retriever    database.Retriever
	minioFetcher minio.Fetcher
}

func NewImageGetter(retriever database.Retriever, minioFetcher minio.Fetcher) *ImageGetter {
	return &ImageGetter{
		retriever:    retriever,
		minioFetcher: minioFetcher,
	}
}

func (g *ImageGetter) GetImage(ctx context.Context, caller entity.Identity, id uint) (entity.BlobObject, error) {
	if err := authenticated(caller); err != nil {
		return entity.BlobObject{}, err
	}

	meme, err := loadOwned(ctx, g.retriever, caller, id)
	if err != nil {
		return entity.BlobObject{}, err
	}

	obj, err := g.minioFetcher.Get(ctx, meme.ImageURL)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			// A live row must always resolve to a stored image.
			logger.Error("meme references a missing image", "meme_id", id, "locator", meme.ImageURL)
		}

		return entity.BlobObject{}, classify(err, apperror.ErrStorageUnavailable, "Error retrieving meme image")
	}

	return obj, nil
}
