package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/framepeach/framepeach/internal/common"
	"github.com/framepeach/framepeach/internal/server/auth"
	"github.com/framepeach/framepeach/internal/server/config"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new user with a bcrypt-hashed password. The email must
// not already be present (exact, case-sensitive match); the unique index on
// the email column backstops concurrent registrations.
func (s *Service) Register(ctx context.Context, firstName, lastName, email, password string) (*User, error) {

	if firstName == "" || lastName == "" || email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the password and issues a session token. The bcrypt
// comparison is synchronous and its result is checked before any branch: a
// wrong password is always rejected.
func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorNotFound
		}
		return nil, "", common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// GetByID returns the user for a validated session claim.
func (s *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}
