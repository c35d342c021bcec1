package booking

import (
	"context"

	"tourguide/models"
)

// BookingService creates, reads, updates and cancels bookings on behalf of a principal.
type BookingService interface {
	ListForUser(ctx context.Context, principal models.Principal) ([]models.BookingDetail, error)
	GetByID(ctx context.Context, id string, principal models.Principal) (*models.BookingDetail, error)
	Create(ctx context.Context, principal models.Principal, req models.BookingCreateRequest) (*models.Booking, error)
	Update(ctx context.Context, id string, principal models.Principal, req models.BookingUpdateRequest) (*models.Booking, error)
	Cancel(ctx context.Context, id string, principal models.Principal) (*models.Booking, error)
}

// ReferenceResolver loads the entity a booking points at. It returns nil, nil when that entity is gone.
type ReferenceResolver interface {
	Resolve(ctx context.Context, ref models.Reference) (*models.ReferenceItem, error)
}

// ReminderScheduler queues follow-up work for a new booking.
type ReminderScheduler interface {
	ScheduleCheckInReminder(ctx context.Context, b models.Booking) error
}
