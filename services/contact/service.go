package contact

import (
	"context"
	"errors"
	"strings"
	"time"

	"tourguide/database"
	contactRepo "tourguide/database/repository/contact"
	"tourguide/models"
	"tourguide/utils"

	"github.com/go-playground/validator/v10"
)

// Service is the contact inbox.
type Service struct {
	Repo contactRepo.ContactRepository
	Now  func() time.Time

	validate *validator.Validate
}

func NewContactService(repo contactRepo.ContactRepository) *Service {
	return &Service{Repo: repo, Now: time.Now, validate: utils.NewValidator()}
}

// Submit stores a message from the public form with status "new".
func (s *Service) Submit(ctx context.Context, req models.ContactRequest) (*models.Contact, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)
	if details := utils.ValidateStruct(s.validate, req); details != nil {
		return nil, utils.NewValidationError("Invalid contact message", details)
	}

	c := models.Contact{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     strings.TrimSpace(req.Phone),
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    models.ContactStatusNew,
		CreatedAt: s.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, &c); err != nil {
		return nil, utils.NewStoreError("create contact", err)
	}
	return &c, nil
}

func (s *Service) List(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.Repo.List(ctx)
	if err != nil {
		return nil, utils.NewStoreError("list contacts", err)
	}
	return contacts, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Contact, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, database.ErrMalformedID) || (err == nil && c == nil) {
		return nil, utils.NewNotFoundError("Contact message not found")
	}
	if err != nil {
		return nil, utils.NewStoreError("find contact", err)
	}
	return c, nil
}

func (s *Service) MarkRead(ctx context.Context, id string) (*models.Contact, error) {
	return s.setStatus(ctx, id, models.ContactStatusRead)
}

func (s *Service) Resolve(ctx context.Context, id string) (*models.Contact, error) {
	return s.setStatus(ctx, id, models.ContactStatusResolved)
}

// setStatus moves a message forward. Resolved messages stay resolved.
func (s *Service) setStatus(ctx context.Context, id string, status models.ContactStatus) (*models.Contact, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Status == status || (c.Status == models.ContactStatusResolved && status == models.ContactStatusRead) {
		return c, nil
	}
	if err := s.Repo.SetStatus(ctx, id, status); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, utils.NewNotFoundError("Contact message not found")
		}
		return nil, utils.NewStoreError("update contact", err)
	}
	c.Status = status
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, database.ErrNotFound) || errors.Is(err, database.ErrMalformedID) {
		return utils.NewNotFoundError("Contact message not found")
	}
	if err != nil {
		return utils.NewStoreError("delete contact", err)
	}
	return nil
}
