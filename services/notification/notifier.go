package notification

import (
	"context"

	"tourguide/models"
	"tourguide/utils"

	"go.uber.org/zap"
)

// Notifier delivers booking notifications to the booking owner.
type Notifier interface {
	NotifyCheckIn(ctx context.Context, b models.Booking) error
}

// LogNotifier writes notifications to the application log.
type LogNotifier struct{}

func (LogNotifier) NotifyCheckIn(_ context.Context, b models.Booking) error {
	utils.GetLogger().Info("Check-in reminder",
		zap.String("bookingId", b.ID),
		zap.String("ownerUserId", b.OwnerUserID),
		zap.String("bookingType", string(b.Reference.Type)),
		zap.Timep("checkInDate", b.CheckInDate))
	return nil
}
