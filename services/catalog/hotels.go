package catalog

import (
	"context"
	"io"
	"strings"

	"tourguide/models"
	"tourguide/utils"
)

const hotelLabel = "hotel"

func (s *Service) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	return listed[models.Hotel](s.Hotels.List(ctx))
}

func (s *Service) SearchHotels(ctx context.Context, location string) ([]models.Hotel, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, utils.NewValidationError("Please provide a location", map[string]string{"location": "is required"})
	}
	return listed[models.Hotel](s.Hotels.SearchByLocation(ctx, location))
}

// AvailableHotels returns hotels with free rooms.
func (s *Service) AvailableHotels(ctx context.Context) ([]models.Hotel, error) {
	return listed[models.Hotel](s.Hotels.Available(ctx))
}

func (s *Service) GetHotel(ctx context.Context, id string) (*models.Hotel, error) {
	return get[models.Hotel](ctx, s.Hotels, id, hotelLabel)
}

func (s *Service) CreateHotel(ctx context.Context, h models.Hotel) (*models.Hotel, error) {
	if err := checkRooms(h.Rooms); err != nil {
		return nil, err
	}
	return create[models.Hotel](ctx, s, s.Hotels, &h, hotelLabel)
}

func (s *Service) UpdateHotel(ctx context.Context, id string, h models.Hotel) (*models.Hotel, error) {
	if err := checkRooms(h.Rooms); err != nil {
		return nil, err
	}
	return update[models.Hotel](ctx, s, s.Hotels, id, &h, hotelLabel)
}

func (s *Service) DeleteHotel(ctx context.Context, id string) error {
	return remove[models.Hotel](ctx, s, s.Hotels, id, hotelLabel)
}

func (s *Service) SetHotelImage(ctx context.Context, id string, file io.Reader) (*models.Hotel, error) {
	return setImage[models.Hotel](ctx, s, s.Hotels, id, file, hotelLabel)
}

func checkRooms(r models.RoomAvailability) error {
	if r.Total > 0 && r.Available > r.Total {
		return utils.NewValidationError("Invalid hotel", map[string]string{"rooms.available": "must not exceed rooms.total"})
	}
	return nil
}
