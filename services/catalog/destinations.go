package catalog

import (
	"context"
	"io"
	"strings"

	"tourguide/models"
	"tourguide/utils"
)

const destinationLabel = "destination"

func (s *Service) ListDestinations(ctx context.Context) ([]models.Destination, error) {
	return listed[models.Destination](s.Destinations.List(ctx))
}

// SearchDestinations matches name anywhere in the destination name, ignoring case.
func (s *Service) SearchDestinations(ctx context.Context, name string) ([]models.Destination, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, utils.NewValidationError("Please provide a destination name", map[string]string{"name": "is required"})
	}
	return listed[models.Destination](s.Destinations.SearchByName(ctx, name))
}

// PopularDestinations returns the ten best rated destinations rated 4 or more.
func (s *Service) PopularDestinations(ctx context.Context) ([]models.Destination, error) {
	return listed[models.Destination](s.Destinations.Popular(ctx, popularMinRating, popularLimit))
}

func (s *Service) GetDestination(ctx context.Context, id string) (*models.Destination, error) {
	return get[models.Destination](ctx, s.Destinations, id, destinationLabel)
}

func (s *Service) CreateDestination(ctx context.Context, d models.Destination) (*models.Destination, error) {
	return create[models.Destination](ctx, s, s.Destinations, &d, destinationLabel)
}

func (s *Service) UpdateDestination(ctx context.Context, id string, d models.Destination) (*models.Destination, error) {
	return update[models.Destination](ctx, s, s.Destinations, id, &d, destinationLabel)
}

func (s *Service) DeleteDestination(ctx context.Context, id string) error {
	return remove[models.Destination](ctx, s, s.Destinations, id, destinationLabel)
}

func (s *Service) SetDestinationImage(ctx context.Context, id string, file io.Reader) (*models.Destination, error) {
	return setImage[models.Destination](ctx, s, s.Destinations, id, file, destinationLabel)
}
