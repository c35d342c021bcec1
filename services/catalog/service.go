package catalog

import (
	"context"
	"errors"
	"io"
	"time"

	"tourguide/database"
	catalogRepo "tourguide/database/repository/catalog"
	"tourguide/models"
	"tourguide/services/storage"
	"tourguide/utils"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	popularMinRating = 4
	popularLimit     = 10
	imageFolder      = "tourguide"
)

// ErrImagesDisabled is returned by image uploads when no image store is configured.
var ErrImagesDisabled = utils.NewValidationError("Image uploads are not configured", nil)

// Service serves destinations, hotels and cabs.
type Service struct {
	Destinations catalogRepo.DestinationRepository
	Hotels       catalogRepo.HotelRepository
	Cabs         catalogRepo.CabRepository
	Images       storage.ImageStore // optional
	Now          func() time.Time

	validate *validator.Validate
}

func NewCatalogService(destinations catalogRepo.DestinationRepository, hotels catalogRepo.HotelRepository, cabs catalogRepo.CabRepository, images storage.ImageStore) *Service {
	return &Service{
		Destinations: destinations,
		Hotels:       hotels,
		Cabs:         cabs,
		Images:       images,
		Now:          time.Now,
		validate:     utils.NewValidator(),
	}
}

// repo is the id-keyed CRUD every catalog repository offers.
type repo[T any] interface {
	Create(ctx context.Context, item *T) error
	GetByID(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, item *T) error
	Delete(ctx context.Context, id string) error
}

// entity is a pointer to a catalog model.
type entity[T any] interface {
	*T
	Meta() *models.CatalogMeta
}

func get[T any](ctx context.Context, r repo[T], id, label string) (*T, error) {
	item, err := r.GetByID(ctx, id)
	if errors.Is(err, database.ErrMalformedID) {
		return nil, utils.NewNotFoundError(label + " not found")
	}
	if err != nil {
		return nil, utils.NewStoreError("find "+label, err)
	}
	if item == nil {
		return nil, utils.NewNotFoundError(label + " not found")
	}
	return item, nil
}

func create[T any, PT entity[T]](ctx context.Context, s *Service, r repo[T], item PT, label string) (*T, error) {
	if details := utils.ValidateStruct(s.validate, item); details != nil {
		return nil, utils.NewValidationError("Invalid "+label, details)
	}
	meta := item.Meta()
	meta.ID = ""
	meta.Image, meta.ImagePublicID = "", ""
	meta.CreatedAt = s.Now().UTC()
	if err := r.Create(ctx, (*T)(item)); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, utils.NewValidationError(label+" already exists", nil)
		}
		return nil, utils.NewStoreError("create "+label, err)
	}
	return (*T)(item), nil
}

// update replaces the descriptive fields of the stored entity, keeping id, image and creation time.
func update[T any, PT entity[T]](ctx context.Context, s *Service, r repo[T], id string, item PT, label string) (*T, error) {
	current, err := get(ctx, r, id, label)
	if err != nil {
		return nil, err
	}
	if details := utils.ValidateStruct(s.validate, item); details != nil {
		return nil, utils.NewValidationError("Invalid "+label, details)
	}
	*item.Meta() = *PT(current).Meta()
	if err := r.Update(ctx, (*T)(item)); err != nil {
		return nil, storeWriteError(err, label)
	}
	return (*T)(item), nil
}

func remove[T any, PT entity[T]](ctx context.Context, s *Service, r repo[T], id, label string) error {
	current, err := get(ctx, r, id, label)
	if err != nil {
		return err
	}
	if err := r.Delete(ctx, id); err != nil {
		return storeWriteError(err, label)
	}
	if publicID := PT(current).Meta().ImagePublicID; publicID != "" && s.Images != nil {
		if err := s.Images.DeleteImage(ctx, publicID); err != nil {
			utils.GetLogger().Warn("Failed to delete image", zap.String("publicId", publicID), zap.Error(err))
		}
	}
	return nil
}

func setImage[T any, PT entity[T]](ctx context.Context, s *Service, r repo[T], id string, file io.Reader, label string) (*T, error) {
	if s.Images == nil {
		return nil, ErrImagesDisabled
	}
	current, err := get(ctx, r, id, label)
	if err != nil {
		return nil, err
	}

	uploaded, err := s.Images.UploadImage(ctx, file, imageFolder+"/"+label)
	if err != nil {
		return nil, utils.NewStoreError("upload "+label+" image", err)
	}
	meta := PT(current).Meta()
	previous := meta.ImagePublicID
	meta.Image, meta.ImagePublicID = uploaded.URL, uploaded.PublicID
	if err := r.Update(ctx, current); err != nil {
		return nil, storeWriteError(err, label)
	}
	if previous != "" && previous != uploaded.PublicID {
		if err := s.Images.DeleteImage(ctx, previous); err != nil {
			utils.GetLogger().Warn("Failed to delete replaced image", zap.String("publicId", previous), zap.Error(err))
		}
	}
	return current, nil
}

func storeWriteError(err error, label string) error {
	if errors.Is(err, database.ErrNotFound) {
		return utils.NewNotFoundError(label + " not found")
	}
	if errors.Is(err, database.ErrDuplicate) {
		return utils.NewValidationError(label+" already exists", nil)
	}
	return utils.NewStoreError("update "+label, err)
}

func listed[T any](items []T, err error) ([]T, error) {
	if err != nil {
		return nil, utils.NewStoreError("query catalog", err)
	}
	return items, nil
}
