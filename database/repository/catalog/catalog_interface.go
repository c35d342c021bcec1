package catalogRepo

import (
	"context"

	"tourguide/models"
)

// Gets return nil, nil when the id is unknown. Update and Delete return
// database.ErrNotFound in that case.

type DestinationRepository interface {
	Create(ctx context.Context, d *models.Destination) error
	GetByID(ctx context.Context, id string) (*models.Destination, error)
	List(ctx context.Context) ([]models.Destination, error)
	// SearchByName matches name case-insensitively anywhere in the destination name.
	SearchByName(ctx context.Context, name string) ([]models.Destination, error)
	// Popular returns up to limit destinations rated at least minRating, best first.
	Popular(ctx context.Context, minRating float64, limit int64) ([]models.Destination, error)
	Update(ctx context.Context, d *models.Destination) error
	Delete(ctx context.Context, id string) error
}

type HotelRepository interface {
	Create(ctx context.Context, h *models.Hotel) error
	GetByID(ctx context.Context, id string) (*models.Hotel, error)
	List(ctx context.Context) ([]models.Hotel, error)
	SearchByLocation(ctx context.Context, location string) ([]models.Hotel, error)
	// Available returns hotels with at least one free room, best rated first.
	Available(ctx context.Context) ([]models.Hotel, error)
	Update(ctx context.Context, h *models.Hotel) error
	Delete(ctx context.Context, id string) error
}

type CabRepository interface {
	Create(ctx context.Context, c *models.Cab) error
	GetByID(ctx context.Context, id string) (*models.Cab, error)
	List(ctx context.Context) ([]models.Cab, error)
	// Filter applies vehicle type and a pricePerKm range.
	Filter(ctx context.Context, f models.CabFilter) ([]models.Cab, error)
	Update(ctx context.Context, c *models.Cab) error
	Delete(ctx context.Context, id string) error
}
