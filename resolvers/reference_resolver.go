package resolvers

import (
	"context"
	"errors"
	"fmt"

	"tourguide/database"
	catalogRepo "tourguide/database/repository/catalog"
	"tourguide/models"
)

// ReferenceResolver loads the entity a booking points at from the collection its type names.
type ReferenceResolver struct {
	Hotels       catalogRepo.HotelRepository
	Cabs         catalogRepo.CabRepository
	Destinations catalogRepo.DestinationRepository
}

func NewReferenceResolver(hotels catalogRepo.HotelRepository, cabs catalogRepo.CabRepository, destinations catalogRepo.DestinationRepository) *ReferenceResolver {
	return &ReferenceResolver{Hotels: hotels, Cabs: cabs, Destinations: destinations}
}

// Resolve returns nil, nil when the referenced entity does not exist.
func (r *ReferenceResolver) Resolve(ctx context.Context, ref models.Reference) (*models.ReferenceItem, error) {
	if ref.ID == "" {
		return nil, nil
	}

	item := &models.ReferenceItem{Type: ref.Type}
	var err error
	switch ref.Type {
	case models.BookingTypeHotel:
		item.Hotel, err = r.Hotels.GetByID(ctx, ref.ID)
		if item.Hotel == nil {
			item = nil
		}
	case models.BookingTypeCab:
		item.Cab, err = r.Cabs.GetByID(ctx, ref.ID)
		if item.Cab == nil {
			item = nil
		}
	case models.BookingTypeDestination:
		item.Destination, err = r.Destinations.GetByID(ctx, ref.ID)
		if item.Destination == nil {
			item = nil
		}
	default:
		return nil, fmt.Errorf("unknown reference type %q", ref.Type)
	}

	// An id that could never have been stored refers to nothing.
	if errors.Is(err, database.ErrMalformedID) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s %s: %w", ref.Type, ref.ID, err)
	}
	return item, nil
}
