package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"memes/internal/domain/apperror"
	"memes/internal/domain/entity"
)

var errEmptySecret = errors.New("token secret is empty")

type claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 bearer tokens whose subject is the
// user id.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(cfg Config) (*TokenService, error) {
	if cfg.Secret == "" {
		return nil, errEmptySecret
	}

	return &TokenService{
		secret: []byte(cfg.Secret),
		ttl:    time.Duration(cfg.TokenTTLInMinutes) * time.Minute,
		now:    time.Now,
	}, nil
}

func (s *TokenService) Issue(identity entity.Identity) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify checks signature and expiry and returns the subject.
func (s *TokenService) Verify(raw string) (uuid.UUID, error) {
	c := &claims{}
	_, err := jwt.ParseWithClaims(raw, c, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return uuid.Nil, apperror.Wrap(apperror.ErrUnauthenticated, "Could not validate credentials", err)
	}

	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, apperror.Wrap(apperror.ErrUnauthenticated, "Could not validate credentials", err)
	}

	return id, nil
}
