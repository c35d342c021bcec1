// Package memory holds map-backed repositories with the same contracts as the
// Mongo ones. Handler and service tests run against them.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"tourguide/database"
	"tourguide/models"
)

// store is an id-keyed map of value copies.
type store[T any] struct {
	mu   sync.RWMutex
	docs map[string]T
	// Err, when set, fails every call.
	Err error
}

func newStore[T any]() *store[T] {
	return &store[T]{docs: map[string]T{}}
}

func (s *store[T]) put(id string, doc T, mustExist bool) error {
	if err := database.CheckID(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.docs[id]; ok != mustExist {
		if mustExist {
			return fmt.Errorf("%s: %w", id, database.ErrNotFound)
		}
		return fmt.Errorf("%s: %w", id, database.ErrDuplicate)
	}
	s.docs[id] = doc
	return nil
}

func (s *store[T]) get(id string) (*T, error) {
	if err := database.CheckID(id); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, s.Err
	}
	doc, ok := s.docs[id]
	if !ok {
		return nil, nil
	}
	return &doc, nil
}

func (s *store[T]) filter(keep func(T) bool) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := []T{}
	for _, doc := range s.docs {
		if keep == nil || keep(doc) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (s *store[T]) delete(id string) error {
	if err := database.CheckID(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.docs[id]; !ok {
		return fmt.Errorf("%s: %w", id, database.ErrNotFound)
	}
	delete(s.docs, id)
	return nil
}

func (s *store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

func ensureID(id *string) {
	if *id == "" {
		*id = database.NewID()
	}
}

// BookingRepo implements bookingRepo.BookingRepository.
type BookingRepo struct{ *store[models.Booking] }

func NewBookingRepo() *BookingRepo { return &BookingRepo{newStore[models.Booking]()} }

func (r *BookingRepo) Create(_ context.Context, b *models.Booking) error {
	ensureID(&b.ID)
	return r.put(b.ID, *b, false)
}

func (r *BookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	return r.get(id)
}

func (r *BookingRepo) ListByOwner(_ context.Context, ownerID string) ([]models.Booking, error) {
	out, err := r.filter(func(b models.Booking) bool { return b.OwnerUserID == ownerID })
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BookingDate.After(out[j].BookingDate) })
	return out, nil
}

func (r *BookingRepo) Replace(_ context.Context, b *models.Booking) error {
	return r.put(b.ID, *b, true)
}

// HotelRepo implements catalogRepo.HotelRepository.
type HotelRepo struct{ *store[models.Hotel] }

func NewHotelRepo() *HotelRepo { return &HotelRepo{newStore[models.Hotel]()} }

func (r *HotelRepo) Create(_ context.Context, h *models.Hotel) error {
	ensureID(&h.ID)
	return r.put(h.ID, *h, false)
}

func (r *HotelRepo) GetByID(_ context.Context, id string) (*models.Hotel, error) { return r.get(id) }

func (r *HotelRepo) List(_ context.Context) ([]models.Hotel, error) {
	return sortHotels(r.filter(nil))
}

func (r *HotelRepo) SearchByLocation(_ context.Context, location string) ([]models.Hotel, error) {
	return sortHotels(r.filter(func(h models.Hotel) bool { return containsFold(h.Location, location) }))
}

func (r *HotelRepo) Available(_ context.Context) ([]models.Hotel, error) {
	return sortHotels(r.filter(func(h models.Hotel) bool { return h.Rooms.Available > 0 }))
}

func (r *HotelRepo) Update(_ context.Context, h *models.Hotel) error {
	return r.put(h.ID, *h, true)
}

func (r *HotelRepo) Delete(_ context.Context, id string) error { return r.delete(id) }

func sortHotels(out []models.Hotel, err error) ([]models.Hotel, error) {
	sort.Slice(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	return out, err
}

// CabRepo implements catalogRepo.CabRepository.
type CabRepo struct{ *store[models.Cab] }

func NewCabRepo() *CabRepo { return &CabRepo{newStore[models.Cab]()} }

func (r *CabRepo) Create(_ context.Context, c *models.Cab) error {
	ensureID(&c.ID)
	return r.put(c.ID, *c, false)
}

func (r *CabRepo) GetByID(_ context.Context, id string) (*models.Cab, error) { return r.get(id) }

func (r *CabRepo) List(_ context.Context) ([]models.Cab, error) {
	return r.filter(nil)
}

func (r *CabRepo) Filter(_ context.Context, f models.CabFilter) ([]models.Cab, error) {
	return r.filter(func(c models.Cab) bool {
		if f.VehicleType != "" && c.VehicleType != f.VehicleType {
			return false
		}
		if f.MinPrice != nil && c.PricePerKm < *f.MinPrice {
			return false
		}
		if f.MaxPrice != nil && c.PricePerKm > *f.MaxPrice {
			return false
		}
		return true
	})
}

func (r *CabRepo) Update(_ context.Context, c *models.Cab) error {
	return r.put(c.ID, *c, true)
}

func (r *CabRepo) Delete(_ context.Context, id string) error { return r.delete(id) }

// DestinationRepo implements catalogRepo.DestinationRepository.
type DestinationRepo struct{ *store[models.Destination] }

func NewDestinationRepo() *DestinationRepo {
	return &DestinationRepo{newStore[models.Destination]()}
}

func (r *DestinationRepo) Create(_ context.Context, d *models.Destination) error {
	ensureID(&d.ID)
	return r.put(d.ID, *d, false)
}

func (r *DestinationRepo) GetByID(_ context.Context, id string) (*models.Destination, error) {
	return r.get(id)
}

func (r *DestinationRepo) List(_ context.Context) ([]models.Destination, error) {
	out, err := r.filter(nil)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, err
}

func (r *DestinationRepo) SearchByName(_ context.Context, name string) ([]models.Destination, error) {
	return r.filter(func(d models.Destination) bool { return containsFold(d.Name, name) })
}

func (r *DestinationRepo) Popular(_ context.Context, minRating float64, limit int64) ([]models.Destination, error) {
	out, err := r.filter(func(d models.Destination) bool { return d.Rating >= minRating })
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *DestinationRepo) Update(_ context.Context, d *models.Destination) error {
	return r.put(d.ID, *d, true)
}

func (r *DestinationRepo) Delete(_ context.Context, id string) error { return r.delete(id) }

// ContactRepo implements contactRepo.ContactRepository.
type ContactRepo struct{ *store[models.Contact] }

func NewContactRepo() *ContactRepo { return &ContactRepo{newStore[models.Contact]()} }

func (r *ContactRepo) Create(_ context.Context, c *models.Contact) error {
	ensureID(&c.ID)
	return r.put(c.ID, *c, false)
}

func (r *ContactRepo) GetByID(_ context.Context, id string) (*models.Contact, error) {
	return r.get(id)
}

func (r *ContactRepo) List(_ context.Context) ([]models.Contact, error) {
	out, err := r.filter(nil)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, err
}

func (r *ContactRepo) SetStatus(_ context.Context, id string, status models.ContactStatus) error {
	c, err := r.get(id)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("%s: %w", id, database.ErrNotFound)
	}
	c.Status = status
	return r.put(id, *c, true)
}

func (r *ContactRepo) Delete(_ context.Context, id string) error { return r.delete(id) }

// UserRepo implements userRepo.UserRepository.
type UserRepo struct{ *store[models.User] }

func NewUserRepo() *UserRepo { return &UserRepo{newStore[models.User]()} }

func (r *UserRepo) Create(_ context.Context, u *models.User) error {
	ensureID(&u.ID)
	taken, err := r.filter(func(existing models.User) bool {
		return existing.Email == u.Email || existing.Username == u.Username
	})
	if err != nil {
		return err
	}
	if len(taken) > 0 {
		return fmt.Errorf("failed to create user: %w", database.ErrDuplicate)
	}
	return r.put(u.ID, *u, false)
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	// Mongo looks user ids up without a UUID check, so a malformed id is simply absent.
	if database.CheckID(id) != nil {
		return nil, nil
	}
	return r.get(id)
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	found, err := r.filter(func(u models.User) bool { return u.Email == email })
	if err != nil || len(found) == 0 {
		return nil, err
	}
	return &found[0], nil
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
