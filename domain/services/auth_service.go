package services

import (
	"context"

	"todo-backend/domain/models"
)

type AuthService interface {
	// Login resolves the user for a username, creating it on first login.
	// The password is passed to the configured credential verifier; the
	// default verifier accepts anything (documented stub behavior).
	Login(ctx context.Context, username, password string) (*models.User, error)
	// GetUser loads a user by id, for resolving sessions.
	GetUser(ctx context.Context, userID uint) (*models.User, error)
}
