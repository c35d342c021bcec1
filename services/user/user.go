package user

import (
	"strings"
	"time"

	userRepo "tourguide/database/repository/user"
	"tourguide/models"
	"tourguide/utils"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo        userRepo.UserRepository
	Tokens      *utils.TokenStore
	TokenTTL    time.Duration
	AdminEmails []string
	HashCost    int

	validate *validator.Validate
}

func NewUserService(repo userRepo.UserRepository, tokens *utils.TokenStore, ttl time.Duration, adminEmails []string) *DefaultUserService {
	return &DefaultUserService{
		Repo:        repo,
		Tokens:      tokens,
		TokenTTL:    ttl,
		AdminEmails: adminEmails,
		HashCost:    bcrypt.DefaultCost,
		validate:    utils.NewValidator(),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *DefaultUserService) roleFor(email string) models.Role {
	for _, admin := range s.AdminEmails {
		if admin == email {
			return models.RoleAdmin
		}
	}
	return models.RoleUser
}

func (s *DefaultUserService) issue(u *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, string(u.Role), s.TokenTTL)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(s.TokenTTL).UTC(),
		User:      *u,
	}, nil
}
