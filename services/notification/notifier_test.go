package notification

import (
	"context"
	"testing"
	"time"

	"tourguide/models"

	"github.com/stretchr/testify/assert"
)

func TestLogNotifier(t *testing.T) {
	checkIn := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	var n Notifier = LogNotifier{}

	assert.NoError(t, n.NotifyCheckIn(context.Background(), models.Booking{ID: "b1", CheckInDate: &checkIn}))
	assert.NoError(t, n.NotifyCheckIn(context.Background(), models.Booking{ID: "b2"}))
}
