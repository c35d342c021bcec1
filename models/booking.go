package models

import (
	"encoding/json"
	"time"
)

// BookingType names the kind of entity a booking reserves.
type BookingType string

const (
	BookingTypeHotel       BookingType = "hotel"
	BookingTypeCab         BookingType = "cab"
	BookingTypeDestination BookingType = "destination"
)

func (t BookingType) Valid() bool {
	switch t {
	case BookingTypeHotel, BookingTypeCab, BookingTypeDestination:
		return true
	}
	return false
}

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusCancelled:
		return true
	}
	return false
}

// Reference points a booking at exactly one hotel, cab or destination.
type Reference struct {
	Type BookingType `bson:"type" json:"type"`
	ID   string      `bson:"id" json:"id"`
}

// Booking is a reservation of one reference entity by one user.
type Booking struct {
	ID             string        `bson:"id"`
	OwnerUserID    string        `bson:"ownerUserId"`
	Reference      Reference     `bson:"reference"`
	CheckInDate    *time.Time    `bson:"checkInDate,omitempty"`
	CheckOutDate   *time.Time    `bson:"checkOutDate,omitempty"`
	NumberOfGuests *int          `bson:"numberOfGuests,omitempty"`
	NumberOfRooms  *int          `bson:"numberOfRooms,omitempty"`
	NumberOfDays   *int          `bson:"numberOfDays,omitempty"`
	TotalPrice     float64       `bson:"totalPrice"`
	PaymentStatus  PaymentStatus `bson:"paymentStatus"`
	BookingStatus  BookingStatus `bson:"bookingStatus"`
	BookingDate    time.Time     `bson:"bookingDate"`
	UpdatedAt      time.Time     `bson:"updatedAt"`
}

// bookingJSON is the wire shape: the reference is flattened to the one id field matching bookingType.
type bookingJSON struct {
	ID             string        `json:"id"`
	OwnerUserID    string        `json:"ownerUserId"`
	BookingType    BookingType   `json:"bookingType"`
	HotelID        string        `json:"hotelId,omitempty"`
	CabID          string        `json:"cabId,omitempty"`
	DestinationID  string        `json:"destinationId,omitempty"`
	CheckInDate    *Date         `json:"checkInDate,omitempty"`
	CheckOutDate   *Date         `json:"checkOutDate,omitempty"`
	NumberOfGuests *int          `json:"numberOfGuests,omitempty"`
	NumberOfRooms  *int          `json:"numberOfRooms,omitempty"`
	NumberOfDays   *int          `json:"numberOfDays,omitempty"`
	TotalPrice     float64       `json:"totalPrice"`
	PaymentStatus  PaymentStatus `json:"paymentStatus"`
	BookingStatus  BookingStatus `json:"bookingStatus"`
	BookingDate    time.Time     `json:"bookingDate"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

func (b Booking) wire() bookingJSON {
	out := bookingJSON{
		ID:             b.ID,
		OwnerUserID:    b.OwnerUserID,
		BookingType:    b.Reference.Type,
		CheckInDate:    DatePtr(b.CheckInDate),
		CheckOutDate:   DatePtr(b.CheckOutDate),
		NumberOfGuests: b.NumberOfGuests,
		NumberOfRooms:  b.NumberOfRooms,
		NumberOfDays:   b.NumberOfDays,
		TotalPrice:     b.TotalPrice,
		PaymentStatus:  b.PaymentStatus,
		BookingStatus:  b.BookingStatus,
		BookingDate:    b.BookingDate,
		UpdatedAt:      b.UpdatedAt,
	}
	switch b.Reference.Type {
	case BookingTypeHotel:
		out.HotelID = b.Reference.ID
	case BookingTypeCab:
		out.CabID = b.Reference.ID
	case BookingTypeDestination:
		out.DestinationID = b.Reference.ID
	}
	return out
}

func (b Booking) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.wire())
}

// BookingDetail is a booking expanded with its reference entity.
// Reference is nil when the entity no longer exists.
type BookingDetail struct {
	Booking   Booking
	Reference *ReferenceItem
}

func (d BookingDetail) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		bookingJSON
		Reference *ReferenceItem `json:"reference"`
	}{
		bookingJSON: d.Booking.wire(),
		Reference:   d.Reference,
	})
}

// ReferenceItem holds exactly one of Hotel, Cab or Destination, selected by Type.
type ReferenceItem struct {
	Type        BookingType
	Hotel       *Hotel
	Cab         *Cab
	Destination *Destination
}

func (r ReferenceItem) MarshalJSON() ([]byte, error) {
	switch r.Type {
	case BookingTypeHotel:
		return json.Marshal(r.Hotel)
	case BookingTypeCab:
		return json.Marshal(r.Cab)
	case BookingTypeDestination:
		return json.Marshal(r.Destination)
	}
	return []byte("null"), nil
}
