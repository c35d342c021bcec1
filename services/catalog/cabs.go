package catalog

import (
	"context"
	"io"
	"strconv"

	"tourguide/models"
	"tourguide/utils"
)

const cabLabel = "cab"

func (s *Service) ListCabs(ctx context.Context) ([]models.Cab, error) {
	return listed[models.Cab](s.Cabs.List(ctx))
}

// ParseCabFilter reads the vehicleType, minPrice and maxPrice query values.
func ParseCabFilter(vehicleType, minPrice, maxPrice string) (models.CabFilter, error) {
	f := models.CabFilter{VehicleType: models.VehicleType(vehicleType)}
	details := map[string]string{}

	parse := func(field, raw string) *float64 {
		if raw == "" {
			return nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			details[field] = "must be a non-negative number"
			return nil
		}
		return &v
	}
	f.MinPrice = parse("minPrice", minPrice)
	f.MaxPrice = parse("maxPrice", maxPrice)

	switch f.VehicleType {
	case "", models.VehicleEconomy, models.VehiclePremium, models.VehicleLuxury, models.VehicleVan:
	default:
		details["vehicleType"] = "must be one of: economy, premium, luxury, van"
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		details["minPrice"] = "must not exceed maxPrice"
	}
	if len(details) > 0 {
		return models.CabFilter{}, utils.NewValidationError("Invalid cab filter", details)
	}
	return f, nil
}

func (s *Service) FilterCabs(ctx context.Context, f models.CabFilter) ([]models.Cab, error) {
	return listed[models.Cab](s.Cabs.Filter(ctx, f))
}

func (s *Service) GetCab(ctx context.Context, id string) (*models.Cab, error) {
	return get[models.Cab](ctx, s.Cabs, id, cabLabel)
}

func (s *Service) CreateCab(ctx context.Context, c models.Cab) (*models.Cab, error) {
	return create[models.Cab](ctx, s, s.Cabs, &c, cabLabel)
}

func (s *Service) UpdateCab(ctx context.Context, id string, c models.Cab) (*models.Cab, error) {
	return update[models.Cab](ctx, s, s.Cabs, id, &c, cabLabel)
}

func (s *Service) DeleteCab(ctx context.Context, id string) error {
	return remove[models.Cab](ctx, s, s.Cabs, id, cabLabel)
}

func (s *Service) SetCabImage(ctx context.Context, id string, file io.Reader) (*models.Cab, error) {
	return setImage[models.Cab](ctx, s, s.Cabs, id, file, cabLabel)
}
