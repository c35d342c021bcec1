package contactRepo

import (
	"context"

	"tourguide/models"
)

// ContactRepository defines methods for contact inbox access.
type ContactRepository interface {
	Create(ctx context.Context, c *models.Contact) error
	// GetByID returns nil, nil when no message has that id.
	GetByID(ctx context.Context, id string) (*models.Contact, error)
	// List returns messages newest first.
	List(ctx context.Context) ([]models.Contact, error)
	SetStatus(ctx context.Context, id string, status models.ContactStatus) error
	Delete(ctx context.Context, id string) error
}
