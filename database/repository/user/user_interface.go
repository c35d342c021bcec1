package userRepo

import (
	"context"

	"tourguide/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record. Taken emails or usernames yield database.ErrDuplicate.
	Create(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by its unique ID, or nil when absent.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address, or nil when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
