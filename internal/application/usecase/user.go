package usecase

import (
	"context"
	"errors"
	"net/mail"
	"regexp"
	"strings"

	"github.com/dezh-tech/immortal/pkg/logger"

	"memes/internal/domain/apperror"
	"memes/internal/domain/dto"
	"memes/internal/domain/entity"
	"memes/internal/domain/model"
	"memes/internal/domain/repository/database"
	"memes/internal/domain/repository/identity"
)

const TokenType = "bearer"

var letterPattern = regexp.MustCompile(`^[a-zA-Zа-яА-ЯёЁ\-]+$`)

type Registrar struct {
	writer database.UserWriter
	hasher identity.PasswordHasher
}

func NewRegistrar(writer database.UserWriter, hasher identity.PasswordHasher) *Registrar {
	return &Registrar{
		writer: writer,
		hasher: hasher,
	}
}

func (r *Registrar) Register(ctx context.Context, req dto.SignUp) (dto.User, error) {
	if err := validateSignUp(req); err != nil {
		return dto.User{}, err
	}

	hashed, err := r.hasher.Hash(req.Password)
	if err != nil {
		logger.Error("failed to hash password", "err", err)

		return dto.User{}, apperror.Wrap(apperror.ErrRepositoryFailure, "Failed to create user", err)
	}

	user := &model.User{
		Name:           req.Name,
		Surname:        req.Surname,
		Email:          req.Email,
		HashedPassword: hashed,
	}

	if err := r.writer.CreateUser(ctx, user); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return dto.User{}, apperror.New(apperror.ErrConflict, "User with this email already exists")
		}

		return dto.User{}, err
	}

	logger.Info("user registered", "user_id", user.ID.String())

	return dto.User{
		UserID:  user.ID.String(),
		Name:    user.Name,
		Surname: user.Surname,
		Email:   user.Email,
	}, nil
}

func validateSignUp(req dto.SignUp) error {
	if !letterPattern.MatchString(req.Name) {
		return apperror.Validation("Name should contain only letters")
	}
	if !letterPattern.MatchString(req.Surname) {
		return apperror.Validation("Surname should contain only letters")
	}

	addr, err := mail.ParseAddress(req.Email)
	if err != nil || addr.Address != req.Email {
		return apperror.Validation("Email is not valid")
	}

	if strings.TrimSpace(req.Password) == "" {
		return apperror.Validation("Password should not be empty")
	}

	return nil
}

type Authenticator struct {
	users  database.UserRetriever
	hasher identity.PasswordHasher
	issuer identity.TokenIssuer
}

func NewAuthenticator(users database.UserRetriever, hasher identity.PasswordHasher,
	issuer identity.TokenIssuer,
) *Authenticator {
	return &Authenticator{
		users:  users,
		hasher: hasher,
		issuer: issuer,
	}
}

func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (dto.Token, error) {
	wrong := apperror.New(apperror.ErrUnauthenticated, "Incorrect username or password")

	user, err := a.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return dto.Token{}, wrong
		}

		return dto.Token{}, err
	}

	if !a.hasher.Verify(user.HashedPassword, password) {
		return dto.Token{}, wrong
	}

	token, err := a.issuer.Issue(entity.Identity{ID: user.ID, Email: user.Email})
	if err != nil {
		logger.Error("failed to issue token", "user_id", user.ID.String(), "err", err)

		return dto.Token{}, apperror.Wrap(apperror.ErrRepositoryFailure, "Failed to issue token", err)
	}

	return dto.Token{AccessToken: token, TokenType: TokenType}, nil
}
