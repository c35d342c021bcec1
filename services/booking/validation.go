package booking

import (
	"fmt"

	"tourguide/models"
)

func referenceField(t models.BookingType) string {
	switch t {
	case models.BookingTypeCab:
		return "cabId"
	case models.BookingTypeDestination:
		return "destinationId"
	default:
		return "hotelId"
	}
}

// checkBooking verifies the invariants every stored booking must satisfy.
func checkBooking(b models.Booking, details map[string]string) map[string]string {
	add := func(field, msg string) {
		if details == nil {
			details = map[string]string{}
		}
		if _, exists := details[field]; !exists {
			details[field] = msg
		}
	}

	if !b.Reference.Type.Valid() {
		add("bookingType", "must be one of: hotel, cab, destination")
	} else if b.Reference.ID == "" {
		add(referenceField(b.Reference.Type), fmt.Sprintf("is required for a %s booking", b.Reference.Type))
	}
	if b.TotalPrice < 0 {
		add("totalPrice", "must be at least 0")
	}
	for field, n := range map[string]*int{
		"numberOfGuests": b.NumberOfGuests,
		"numberOfRooms":  b.NumberOfRooms,
		"numberOfDays":   b.NumberOfDays,
	} {
		if n != nil && *n < 0 {
			add(field, "must be at least 0")
		}
	}
	if b.CheckInDate != nil && b.CheckOutDate != nil && b.CheckOutDate.Before(*b.CheckInDate) {
		add("checkOutDate", "must not be before checkInDate")
	}
	if !b.BookingStatus.Valid() {
		add("bookingStatus", "must be one of: confirmed, cancelled, completed")
	}
	if !b.PaymentStatus.Valid() {
		add("paymentStatus", "must be one of: pending, completed, cancelled")
	}
	return details
}
