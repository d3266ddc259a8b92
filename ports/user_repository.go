package ports

import (
	"context"

	"siparis/domain/core"
	"siparis/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// GetUserByID returns core.ErrUserNotFound when the user does not exist
	GetUserByID(ctx context.Context, userID core.UserID) (*models.User, error)

	// CreateUser creates a new user
	CreateUser(ctx context.Context, user *models.User) error
}
