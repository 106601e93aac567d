package database

import (
	"context"
	"errors"
	"strings"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"memes/internal/domain/apperror"
	"memes/internal/domain/model"
)

type UserStore struct {
	db *Database
}

func NewUserStore(db *Database) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) CreateUser(ctx context.Context, user *model.User) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.Email = strings.ToLower(user.Email)

	err := s.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.New(apperror.ErrConflict, "user with this email already exists")
	}
	if err != nil {
		logger.Error("failed to create user", "err", err)

		return apperror.Wrap(apperror.ErrRepositoryFailure, "failed to save user", err)
	}

	return nil
}

func (s *UserStore) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.first(ctx, "id = ?", id)
}

func (s *UserStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.first(ctx, "email = ?", strings.ToLower(email))
}

func (s *UserStore) first(ctx context.Context, query string, arg any) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	var user model.User
	err := s.db.DB.WithContext(ctx).Where(query, arg).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.New(apperror.ErrNotFound, "user does not exist")
	}
	if err != nil {
		logger.Error("failed to retrieve user", "err", err)

		return nil, apperror.Wrap(apperror.ErrRepositoryFailure, "failed to load user", err)
	}

	return &user, nil
}
