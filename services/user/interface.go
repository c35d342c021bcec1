package user

import (
	"context"

	"tourguide/models"
)

// UserService defines account operations.
type UserService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	// Logout revokes token until it would have expired.
	Logout(ctx context.Context, token string) error
	GetProfile(ctx context.Context, principal models.Principal) (*models.User, error)
}
