package bookingRepo

import (
	"context"

	"tourguide/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts b, assigning an id when it has none.
	Create(ctx context.Context, b *models.Booking) error
	// GetByID returns nil, nil when no booking has that id.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// ListByOwner returns the owner's bookings, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]models.Booking, error)
	// Replace overwrites the stored booking with b.
	Replace(ctx context.Context, b *models.Booking) error
}
