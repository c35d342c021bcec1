package booking

import (
	"context"
	"errors"
	"time"

	"tourguide/database"
	bookingRepo "tourguide/database/repository/booking"
	"tourguide/metrics"
	"tourguide/models"
	"tourguide/utils"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Resolver  ReferenceResolver
	Reminders ReminderScheduler // optional
	Now       func() time.Time

	validate *validator.Validate
}

func NewBookingService(repo bookingRepo.BookingRepository, resolver ReferenceResolver, reminders ReminderScheduler) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:      repo,
		Resolver:  resolver,
		Reminders: reminders,
		Now:       time.Now,
		validate:  utils.NewValidator(),
	}
}

func (s *DefaultBookingService) now() time.Time {
	return s.Now().UTC()
}

// load fetches a booking and applies the ownership rule.
func (s *DefaultBookingService) load(ctx context.Context, id string, principal models.Principal) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewStoreError("find booking", err)
	}
	if b == nil {
		return nil, utils.NewNotFoundError("Booking not found")
	}
	if !principal.CanAccess(b.OwnerUserID) {
		return nil, utils.NewForbiddenError("Not authorized to access this booking")
	}
	return b, nil
}

func (s *DefaultBookingService) save(ctx context.Context, b *models.Booking) error {
	if err := s.Repo.Replace(ctx, b); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return utils.NewNotFoundError("Booking not found")
		}
		return utils.NewStoreError("update booking", err)
	}
	return nil
}

// expand attaches the reference entity. Lookup failures degrade to a null reference.
func (s *DefaultBookingService) expand(ctx context.Context, b models.Booking) models.BookingDetail {
	detail := models.BookingDetail{Booking: b}
	if s.Resolver == nil {
		return detail
	}
	item, err := s.Resolver.Resolve(ctx, b.Reference)
	if err != nil {
		utils.GetLogger().Warn("Failed to resolve booking reference",
			zap.String("bookingId", b.ID),
			zap.String("type", string(b.Reference.Type)),
			zap.String("refId", b.Reference.ID),
			zap.Error(err))
		return detail
	}
	detail.Reference = item
	return detail
}

func (s *DefaultBookingService) scheduleReminder(ctx context.Context, b models.Booking) {
	if s.Reminders == nil || b.CheckInDate == nil || !b.CheckInDate.After(s.now()) {
		return
	}
	if err := s.Reminders.ScheduleCheckInReminder(ctx, b); err != nil {
		metrics.IncReminder("schedule_failed")
		utils.GetLogger().Warn("Failed to schedule check-in reminder",
			zap.String("bookingId", b.ID), zap.Error(err))
		return
	}
	metrics.IncReminder("scheduled")
}

func record(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "internal"
		if appErr, ok := utils.AsAppError(err); ok {
			outcome = appErr.Kind.String()
		}
	}
	metrics.IncBookingOperation(operation, outcome)
}
