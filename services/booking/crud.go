package booking

import (
	"context"

	"tourguide/models"
	"tourguide/utils"
)

func requireIdentity(principal models.Principal) error {
	if principal.ID == "" {
		return utils.NewAuthenticationError("Authentication required")
	}
	return nil
}

// ListForUser returns the principal's own bookings, newest first.
func (s *DefaultBookingService) ListForUser(ctx context.Context, principal models.Principal) (out []models.BookingDetail, err error) {
	defer func() { record("list", err) }()

	if err := requireIdentity(principal); err != nil {
		return nil, err
	}
	bookings, err := s.Repo.ListByOwner(ctx, principal.ID)
	if err != nil {
		return nil, utils.NewStoreError("list bookings", err)
	}

	out = make([]models.BookingDetail, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, s.expand(ctx, b))
	}
	return out, nil
}

func (s *DefaultBookingService) GetByID(ctx context.Context, id string, principal models.Principal) (detail *models.BookingDetail, err error) {
	defer func() { record("get", err) }()

	if err := requireIdentity(principal); err != nil {
		return nil, err
	}
	b, err := s.load(ctx, id, principal)
	if err != nil {
		return nil, err
	}
	d := s.expand(ctx, *b)
	return &d, nil
}

// Create books the referenced entity for principal. Owner, statuses and
// bookingDate are always server-assigned.
func (s *DefaultBookingService) Create(ctx context.Context, principal models.Principal, req models.BookingCreateRequest) (created *models.Booking, err error) {
	defer func() { record("create", err) }()

	if err := requireIdentity(principal); err != nil {
		return nil, err
	}

	details := utils.ValidateStruct(s.validate, req)
	b := models.Booking{
		OwnerUserID:    principal.ID,
		Reference:      models.Reference{Type: req.BookingType, ID: req.ReferenceID()},
		CheckInDate:    req.CheckInDate.TimePtr(),
		CheckOutDate:   req.CheckOutDate.TimePtr(),
		NumberOfGuests: req.NumberOfGuests,
		NumberOfRooms:  req.NumberOfRooms,
		NumberOfDays:   req.NumberOfDays,
		PaymentStatus:  models.PaymentStatusPending,
		BookingStatus:  models.BookingStatusConfirmed,
	}
	if req.TotalPrice != nil {
		b.TotalPrice = *req.TotalPrice
	}
	if details = checkBooking(b, details); len(details) > 0 {
		return nil, utils.NewValidationError("Invalid booking", details)
	}

	now := s.now()
	b.BookingDate = now
	b.UpdatedAt = now
	if err := s.Repo.Create(ctx, &b); err != nil {
		return nil, utils.NewStoreError("create booking", err)
	}

	s.scheduleReminder(ctx, b)
	return &b, nil
}

// Update merges the whitelisted fields of req into the booking. Only admins
// move statuses freely; an owner may only cancel.
func (s *DefaultBookingService) Update(ctx context.Context, id string, principal models.Principal, req models.BookingUpdateRequest) (updated *models.Booking, err error) {
	defer func() { record("update", err) }()

	if err := requireIdentity(principal); err != nil {
		return nil, err
	}
	current, err := s.load(ctx, id, principal)
	if err != nil {
		return nil, err
	}
	if err := authorizeStatusChange(*current, principal, req); err != nil {
		return nil, err
	}

	details := utils.ValidateStruct(s.validate, req)
	next := merge(*current, req)
	if next.BookingStatus != current.BookingStatus && current.BookingStatus != models.BookingStatusConfirmed {
		if details == nil {
			details = map[string]string{}
		}
		details["bookingStatus"] = "cannot change once the booking is " + string(current.BookingStatus)
	}
	if details = checkBooking(next, details); len(details) > 0 {
		return nil, utils.NewValidationError("Invalid booking", details)
	}

	next.UpdatedAt = s.now()
	if err := s.save(ctx, &next); err != nil {
		return nil, err
	}
	return &next, nil
}

func authorizeStatusChange(current models.Booking, principal models.Principal, req models.BookingUpdateRequest) error {
	if principal.IsAdmin() {
		return nil
	}
	if req.PaymentStatus != nil && *req.PaymentStatus != current.PaymentStatus {
		return utils.NewForbiddenError("Only administrators can change paymentStatus")
	}
	if req.BookingStatus != nil && *req.BookingStatus != current.BookingStatus && *req.BookingStatus != models.BookingStatusCancelled {
		return utils.NewForbiddenError("Only administrators can change bookingStatus other than to cancelled")
	}
	return nil
}

// merge applies req to b. A reference id is taken only from the field matching the resulting type.
func merge(b models.Booking, req models.BookingUpdateRequest) models.Booking {
	refType := b.Reference.Type
	if req.BookingType != nil {
		refType = *req.BookingType
	}
	refID := req.ReferenceID(refType)
	if refID == "" && refType == b.Reference.Type {
		refID = b.Reference.ID
	}
	b.Reference = models.Reference{Type: refType, ID: refID}

	if req.CheckInDate != nil {
		b.CheckInDate = req.CheckInDate.TimePtr()
	}
	if req.CheckOutDate != nil {
		b.CheckOutDate = req.CheckOutDate.TimePtr()
	}
	if req.NumberOfGuests != nil {
		b.NumberOfGuests = req.NumberOfGuests
	}
	if req.NumberOfRooms != nil {
		b.NumberOfRooms = req.NumberOfRooms
	}
	if req.NumberOfDays != nil {
		b.NumberOfDays = req.NumberOfDays
	}
	if req.TotalPrice != nil {
		b.TotalPrice = *req.TotalPrice
	}
	if req.BookingStatus != nil {
		b.BookingStatus = *req.BookingStatus
	}
	if req.PaymentStatus != nil {
		b.PaymentStatus = *req.PaymentStatus
	}
	return b
}

// Cancel soft-cancels a booking from any status. Cancelling twice is a no-op.
func (s *DefaultBookingService) Cancel(ctx context.Context, id string, principal models.Principal) (cancelled *models.Booking, err error) {
	defer func() { record("cancel", err) }()

	if err := requireIdentity(principal); err != nil {
		return nil, err
	}
	b, err := s.load(ctx, id, principal)
	if err != nil {
		return nil, err
	}

	if b.BookingStatus == models.BookingStatusCancelled {
		return b, nil
	}

	b.BookingStatus = models.BookingStatusCancelled
	b.UpdatedAt = s.now()
	if err := s.save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
