package models

import "time"

// ReminderPayload is the queued body of a check-in reminder.
type ReminderPayload struct {
	BookingID   string      `json:"bookingId"`
	OwnerUserID string      `json:"ownerUserId"`
	BookingType BookingType `json:"bookingType"`
	CheckInDate time.Time   `json:"checkInDate"`
}
