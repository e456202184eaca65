// Package services contains server-side business logic. This file implements
// UserService, which handles registration and login and issues the bearer
// tokens used by the rest of the API.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/pandroidYT/doxxd-backend/internal/common"
	"github.com/pandroidYT/doxxd-backend/internal/server/auth"
	"github.com/pandroidYT/doxxd-backend/internal/server/config"
	"github.com/pandroidYT/doxxd-backend/internal/server/models"
	"github.com/pandroidYT/doxxd-backend/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create a user and mint their first token
// - Login: verify credentials and mint a token
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	defaultAvatarURL      string
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		defaultAvatarURL:      cfg.DefaultAvatarURL,
	}
}

// Register creates a new user and returns a signed token for them.
//
// Missing fields yield common.ErrorValidation; a duplicate email yields
// common.ErrorAlreadyExists, whether detected by the pre-check or by the
// store's uniqueness constraint when two registrations race.
func (s *UserService) Register(ctx context.Context, username, email, password string) (string, error) {

	if username == "" || email == "" || password == "" {
		return "", common.ErrorValidation
	}

	repo := s.repomanager.Users(s.db)

	_, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return "", common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return "", common.ErrorInternal
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", common.ErrorInternal
	}

	user := &models.User{
		Username:      username,
		Email:         email,
		PasswordHash:  hash,
		ProfilePicURL: s.defaultAvatarURL,
	}

	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", common.ErrorAlreadyExists
		}
		return "", common.ErrorInternal
	}

	return s.generateToken(user.ID)
}

// Login verifies the submitted credentials and returns a signed token.
// Unknown email and wrong password are indistinguishable to the caller:
// both return common.ErrorInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorInvalidCredentials
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrorInvalidCredentials
	}

	return s.generateToken(user.ID)
}

func (s *UserService) generateToken(userID string) (string, error) {
	token, err := auth.GenerateToken(userID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}
