package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tourguide/database"
	"tourguide/models"
	"tourguide/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates an account and signs it in. Emails listed in ADMIN_EMAILS get the admin role.
func (s *DefaultUserService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)
	req.Username = strings.TrimSpace(req.Username)
	if details := utils.ValidateStruct(s.validate, req); details != nil {
		return nil, utils.NewValidationError("Invalid registration", details)
	}

	existing, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.NewStoreError("find user", err)
	}
	if existing != nil {
		return nil, utils.NewValidationError("A user with this email already exists", map[string]string{"email": "is already registered"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.HashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	u := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PasswordHash: string(hash),
		Role:         s.roleFor(req.Email),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, utils.NewValidationError("A user with this email or username already exists", nil)
		}
		return nil, utils.NewStoreError("create user", err)
	}

	utils.GetLogger().Info("User registered", zap.String("userId", u.ID), zap.String("role", string(u.Role)))
	return s.issue(u)
}

func (s *DefaultUserService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if details := utils.ValidateStruct(s.validate, req); details != nil {
		return nil, utils.NewValidationError("Invalid login", details)
	}

	u, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.NewStoreError("find user", err)
	}
	if u == nil || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, utils.NewAuthenticationError("Invalid email or password")
	}
	return s.issue(u)
}

func (s *DefaultUserService) Logout(ctx context.Context, token string) error {
	claims, err := utils.ParseToken(token)
	if err != nil {
		return utils.NewAuthenticationError("Invalid or expired token")
	}
	if err := s.Tokens.Revoke(ctx, token, time.Until(claims.ExpiresAt)); err != nil {
		return utils.NewStoreError("revoke token", err)
	}
	return nil
}

func (s *DefaultUserService) GetProfile(ctx context.Context, principal models.Principal) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, principal.ID)
	if err != nil {
		return nil, utils.NewStoreError("find user", err)
	}
	if u == nil {
		return nil, utils.NewNotFoundError("User not found")
	}
	return u, nil
}
