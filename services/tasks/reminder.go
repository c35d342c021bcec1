package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tourguide/models"

	"github.com/hibiken/asynq"
)

const TypeCheckInReminder = "booking:checkin_reminder"

// ReminderTaskID is unique per booking so a booking is reminded at most once.
func ReminderTaskID(bookingID string) string {
	return "checkin-reminder:" + bookingID
}

// NewCheckInReminderTask builds the reminder for b, due lead before check-in or now if that has passed.
func NewCheckInReminderTask(b models.Booking, lead time.Duration, now time.Time) (*asynq.Task, []asynq.Option, error) {
	if b.CheckInDate == nil {
		return nil, nil, fmt.Errorf("booking %s has no check-in date", b.ID)
	}
	payload, err := json.Marshal(models.ReminderPayload{
		BookingID:   b.ID,
		OwnerUserID: b.OwnerUserID,
		BookingType: b.Reference.Type,
		CheckInDate: *b.CheckInDate,
	})
	if err != nil {
		return nil, nil, err
	}

	fireAt := b.CheckInDate.Add(-lead)
	if fireAt.Before(now) {
		fireAt = now
	}
	task := asynq.NewTask(TypeCheckInReminder, payload)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID(ReminderTaskID(b.ID)),
		asynq.MaxRetry(3),
	}
	return task, opts, nil
}

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ReminderScheduler queues check-in reminders for new bookings.
type ReminderScheduler struct {
	Client   Enqueuer
	LeadTime time.Duration
	Now      func() time.Time
}

func NewReminderScheduler(client Enqueuer, lead time.Duration) *ReminderScheduler {
	return &ReminderScheduler{Client: client, LeadTime: lead, Now: time.Now}
}

func (s *ReminderScheduler) ScheduleCheckInReminder(ctx context.Context, b models.Booking) error {
	task, opts, err := NewCheckInReminderTask(b, s.LeadTime, s.Now())
	if err != nil {
		return err
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", b.ID, err)
	}
	return nil
}
