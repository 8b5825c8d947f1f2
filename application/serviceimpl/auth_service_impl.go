package serviceimpl

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"todo-backend/domain/models"
	"todo-backend/domain/repositories"
	"todo-backend/domain/services"
	"todo-backend/pkg/auth"
	"todo-backend/pkg/logger"
)

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	verifier auth.CredentialVerifier
}

func NewAuthService(userRepo repositories.UserRepository, verifier auth.CredentialVerifier) services.AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		verifier: verifier,
	}
}

// Login looks up the user by username, creating it on first login. The
// password is checked by the configured verifier; with the default AcceptAll
// verifier this preserves the documented stub behavior of the original API.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.ErrorContext(ctx, "Failed to look up user", "username", username, "error", err)
			return nil, err
		}

		user = &models.User{Username: username}
		if err := s.userRepo.Create(ctx, user); err != nil {
			logger.ErrorContext(ctx, "Failed to create user", "username", username, "error", err)
			return nil, err
		}
		logger.InfoContext(ctx, "User created on first login", "user_id", user.ID, "username", username)
		return user, nil
	}

	if !s.verifier.Verify(user.PasswordHash, password) {
		logger.WarnContext(ctx, "Credential verification failed", "username", username)
		return nil, services.ErrBadCredentials
	}

	return user, nil
}

func (s *AuthServiceImpl) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
