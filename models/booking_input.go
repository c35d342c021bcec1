package models

// BookingCreateRequest lists every field a client may set when booking.
// Owner, id, statuses and bookingDate are assigned by the server.
type BookingCreateRequest struct {
	BookingType    BookingType `json:"bookingType" validate:"required"`
	HotelID        string      `json:"hotelId"`
	CabID          string      `json:"cabId"`
	DestinationID  string      `json:"destinationId"`
	CheckInDate    *Date       `json:"checkInDate"`
	CheckOutDate   *Date       `json:"checkOutDate"`
	NumberOfGuests *int        `json:"numberOfGuests" validate:"omitempty,gte=0"`
	NumberOfRooms  *int        `json:"numberOfRooms" validate:"omitempty,gte=0"`
	NumberOfDays   *int        `json:"numberOfDays" validate:"omitempty,gte=0"`
	TotalPrice     *float64    `json:"totalPrice" validate:"required,gte=0"`
}

// ReferenceID returns the id field matching BookingType.
func (r BookingCreateRequest) ReferenceID() string {
	return pickReferenceID(r.BookingType, r.HotelID, r.CabID, r.DestinationID)
}

// BookingUpdateRequest lists the fields an update may change. Nil means unchanged.
type BookingUpdateRequest struct {
	BookingType    *BookingType   `json:"bookingType"`
	HotelID        string         `json:"hotelId"`
	CabID          string         `json:"cabId"`
	DestinationID  string         `json:"destinationId"`
	CheckInDate    *Date          `json:"checkInDate"`
	CheckOutDate   *Date          `json:"checkOutDate"`
	NumberOfGuests *int           `json:"numberOfGuests" validate:"omitempty,gte=0"`
	NumberOfRooms  *int           `json:"numberOfRooms" validate:"omitempty,gte=0"`
	NumberOfDays   *int           `json:"numberOfDays" validate:"omitempty,gte=0"`
	TotalPrice     *float64       `json:"totalPrice" validate:"omitempty,gte=0"`
	BookingStatus  *BookingStatus `json:"bookingStatus"`
	PaymentStatus  *PaymentStatus `json:"paymentStatus"`
}

// ReferenceID returns the id field matching t, ignoring the other two.
func (r BookingUpdateRequest) ReferenceID(t BookingType) string {
	return pickReferenceID(t, r.HotelID, r.CabID, r.DestinationID)
}

func pickReferenceID(t BookingType, hotelID, cabID, destinationID string) string {
	switch t {
	case BookingTypeHotel:
		return hotelID
	case BookingTypeCab:
		return cabID
	case BookingTypeDestination:
		return destinationID
	}
	return ""
}
