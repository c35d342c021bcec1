package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"tourguide/database/repository/memory"
	"tourguide/models"
	"tourguide/resolvers"
	"tourguide/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	alice = models.Principal{ID: "user-a", Role: models.RoleUser}
	bob   = models.Principal{ID: "user-b", Role: models.RoleUser}
	admin = models.Principal{ID: "admin-1", Role: models.RoleAdmin}

	fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
)

type mockReminders struct {
	mock.Mock
}

func (m *mockReminders) ScheduleCheckInReminder(ctx context.Context, b models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

type fixture struct {
	svc      *DefaultBookingService
	bookings *memory.BookingRepo
	hotels   *memory.HotelRepo
	cabs     *memory.CabRepo
	dests    *memory.DestinationRepo
}

func newFixture(t *testing.T, reminders ReminderScheduler) *fixture {
	t.Helper()
	f := &fixture{
		bookings: memory.NewBookingRepo(),
		hotels:   memory.NewHotelRepo(),
		cabs:     memory.NewCabRepo(),
		dests:    memory.NewDestinationRepo(),
	}
	resolver := resolvers.NewReferenceResolver(f.hotels, f.cabs, f.dests)
	f.svc = NewBookingService(f.bookings, resolver, reminders)
	f.svc.Now = func() time.Time { return fixedNow }
	return f
}

func price(v float64) *float64 { return &v }
func count(v int) *int         { return &v }

func date(s string) *models.Date {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	d := models.NewDate(t)
	return &d
}

func hotelRequest() models.BookingCreateRequest {
	return models.BookingCreateRequest{
		BookingType: models.BookingTypeHotel,
		HotelID:     "H1",
		TotalPrice:  price(5000),
	}
}

func requireKind(t *testing.T, err error, kind utils.ErrorKind) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := utils.AsAppError(err)
	require.True(t, ok, "expected AppError, got %T: %v", err, err)
	assert.Equal(t, kind, appErr.Kind, appErr.Error())
}

func (f *fixture) create(t *testing.T, p models.Principal, req models.BookingCreateRequest) *models.Booking {
	t.Helper()
	b, err := f.svc.Create(context.Background(), p, req)
	require.NoError(t, err)
	return b
}

func TestCreateHotelBooking(t *testing.T) {
	f := newFixture(t, nil)

	b := f.create(t, alice, hotelRequest())

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, alice.ID, b.OwnerUserID)
	assert.Equal(t, models.Reference{Type: models.BookingTypeHotel, ID: "H1"}, b.Reference)
	assert.Equal(t, models.BookingStatusConfirmed, b.BookingStatus)
	assert.Equal(t, models.PaymentStatusPending, b.PaymentStatus)
	assert.Equal(t, 5000.0, b.TotalPrice)
	assert.Equal(t, fixedNow, b.BookingDate)

	stored, err := f.bookings.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, *b, *stored)
}

func TestCreateKeepsOnlyMatchingReference(t *testing.T) {
	f := newFixture(t, nil)

	cases := []struct {
		req  models.BookingCreateRequest
		want models.Reference
	}{
		{
			req:  models.BookingCreateRequest{BookingType: models.BookingTypeHotel, HotelID: "H1", CabID: "C1", DestinationID: "D1", TotalPrice: price(1)},
			want: models.Reference{Type: models.BookingTypeHotel, ID: "H1"},
		},
		{
			req:  models.BookingCreateRequest{BookingType: models.BookingTypeCab, HotelID: "H1", CabID: "C1", TotalPrice: price(1)},
			want: models.Reference{Type: models.BookingTypeCab, ID: "C1"},
		},
		{
			req:  models.BookingCreateRequest{BookingType: models.BookingTypeDestination, CabID: "C1", DestinationID: "D1", TotalPrice: price(0)},
			want: models.Reference{Type: models.BookingTypeDestination, ID: "D1"},
		},
	}
	for _, tc := range cases {
		b := f.create(t, alice, tc.req)
		assert.Equal(t, tc.want, b.Reference)
	}
}

func TestCreateValidation(t *testing.T) {
	cases := map[string]struct {
		mutate func(*models.BookingCreateRequest)
		field  string
	}{
		"unsupported type": {func(r *models.BookingCreateRequest) { r.BookingType = "flight" }, "bookingType"},
		"missing type":     {func(r *models.BookingCreateRequest) { r.BookingType = "" }, "bookingType"},
		"negative price":   {func(r *models.BookingCreateRequest) { r.TotalPrice = price(-100) }, "totalPrice"},
		"missing price":    {func(r *models.BookingCreateRequest) { r.TotalPrice = nil }, "totalPrice"},
		"missing ref id":   {func(r *models.BookingCreateRequest) { r.HotelID = ""; r.CabID = "C1" }, "hotelId"},
		"negative guests":  {func(r *models.BookingCreateRequest) { r.NumberOfGuests = count(-1) }, "numberOfGuests"},
		"negative rooms":   {func(r *models.BookingCreateRequest) { r.NumberOfRooms = count(-2) }, "numberOfRooms"},
		"checkout first": {func(r *models.BookingCreateRequest) {
			r.CheckInDate = date("2025-07-10")
			r.CheckOutDate = date("2025-07-09")
		}, "checkOutDate"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, nil)
			req := hotelRequest()
			tc.mutate(&req)

			_, err := f.svc.Create(context.Background(), alice, req)
			requireKind(t, err, utils.KindValidation)
			appErr, _ := utils.AsAppError(err)
			assert.Contains(t, appErr.Details, tc.field)
			assert.Equal(t, 0, f.bookings.Len(), "nothing may be persisted")
		})
	}
}

func TestCreateRequiresIdentity(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.svc.Create(context.Background(), models.Principal{}, hotelRequest())
	requireKind(t, err, utils.KindAuthentication)
}

func TestCreateStoreFailure(t *testing.T) {
	f := newFixture(t, nil)
	f.bookings.Err = errors.New("connection refused")

	_, err := f.svc.Create(context.Background(), alice, hotelRequest())
	requireKind(t, err, utils.KindStore)
}

func TestGetByID(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	hotel := &models.Hotel{Name: "Taj", Location: "Mumbai", PricePerNight: 5000}
	require.NoError(t, f.hotels.Create(ctx, hotel))

	req := hotelRequest()
	req.HotelID = hotel.ID
	b := f.create(t, alice, req)

	detail, err := f.svc.GetByID(ctx, b.ID, alice)
	require.NoError(t, err)
	require.NotNil(t, detail.Reference)
	assert.Equal(t, "Taj", detail.Reference.Hotel.Name)

	detail, err = f.svc.GetByID(ctx, b.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, b.ID, detail.Booking.ID)

	_, err = f.svc.GetByID(ctx, b.ID, bob)
	requireKind(t, err, utils.KindAuthorization)

	_, err = f.svc.GetByID(ctx, "5b0f5f8e-6a0c-4c1e-9a55-7b1c0d7d5e11", alice)
	requireKind(t, err, utils.KindNotFound)

	_, err = f.svc.GetByID(ctx, "not-a-uuid", alice)
	requireKind(t, err, utils.KindStore)
}

func TestGetByIDWithDeletedReference(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	cab := &models.Cab{CompanyName: "Ola", VehicleType: models.VehicleEconomy, Capacity: 4}
	require.NoError(t, f.cabs.Create(ctx, cab))

	b := f.create(t, alice, models.BookingCreateRequest{BookingType: models.BookingTypeCab, CabID: cab.ID, TotalPrice: price(300)})
	require.NoError(t, f.cabs.Delete(ctx, cab.ID))

	detail, err := f.svc.GetByID(ctx, b.ID, alice)
	require.NoError(t, err)
	assert.Nil(t, detail.Reference)
	assert.Equal(t, cab.ID, detail.Booking.Reference.ID)
}

func TestGetByIDDegradesWhenCatalogFails(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	dest := &models.Destination{Name: "Goa", Description: "Beaches"}
	require.NoError(t, f.dests.Create(ctx, dest))
	b := f.create(t, alice, models.BookingCreateRequest{BookingType: models.BookingTypeDestination, DestinationID: dest.ID, TotalPrice: price(10)})

	f.dests.Err = errors.New("timeout")
	detail, err := f.svc.GetByID(ctx, b.ID, alice)
	require.NoError(t, err)
	assert.Nil(t, detail.Reference)
}

func TestListForUser(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	first := f.create(t, alice, hotelRequest())
	f.svc.Now = func() time.Time { return fixedNow.Add(time.Hour) }
	second := f.create(t, alice, models.BookingCreateRequest{BookingType: models.BookingTypeCab, CabID: "C1", TotalPrice: price(10)})
	f.create(t, bob, hotelRequest())

	list, err := f.svc.ListForUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].Booking.ID)
	assert.Equal(t, first.ID, list[1].Booking.ID)
	for _, d := range list {
		assert.Equal(t, alice.ID, d.Booking.OwnerUserID)
	}

	list, err = f.svc.ListForUser(ctx, models.Principal{ID: "nobody", Role: models.RoleUser})
	require.NoError(t, err)
	assert.Empty(t, list)

	f.bookings.Err = errors.New("down")
	_, err = f.svc.ListForUser(ctx, alice)
	requireKind(t, err, utils.KindStore)
}

func TestAdminCancelsThroughUpdate(t *testing.T) {
	f := newFixture(t, nil)
	b := f.create(t, alice, hotelRequest())

	status := models.BookingStatusCancelled
	updated, err := f.svc.Update(context.Background(), b.ID, admin, models.BookingUpdateRequest{BookingStatus: &status})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, updated.BookingStatus)
	assert.Equal(t, alice.ID, updated.OwnerUserID)
	assert.Equal(t, models.PaymentStatusPending, updated.PaymentStatus)
}

func TestUpdateStatusRestrictions(t *testing.T) {
	ctx := context.Background()
	paid := models.PaymentStatusCompleted
	completed := models.BookingStatusCompleted
	cancelled := models.BookingStatusCancelled
	pending := models.PaymentStatusPending

	t.Run("owner cannot set payment status", func(t *testing.T) {
		f := newFixture(t, nil)
		b := f.create(t, alice, hotelRequest())
		_, err := f.svc.Update(ctx, b.ID, alice, models.BookingUpdateRequest{PaymentStatus: &paid})
		requireKind(t, err, utils.KindAuthorization)
	})

	t.Run("owner may echo unchanged payment status", func(t *testing.T) {
		f := newFixture(t, nil)
		b := f.create(t, alice, hotelRequest())
		_, err := f.svc.Update(ctx, b.ID, alice, models.BookingUpdateRequest{PaymentStatus: &pending, NumberOfGuests: count(2)})
		require.NoError(t, err)
	})

	t.Run("owner cannot complete", func(t *testing.T) {
		f := newFixture(t, nil)
		b := f.create(t, alice, hotelRequest())
		_, err := f.svc.Update(ctx, b.ID, alice, models.BookingUpdateRequest{BookingStatus: &completed})
		requireKind(t, err, utils.KindAuthorization)
	})

	t.Run("owner may cancel", func(t *testing.T) {
		f := newFixture(t, nil)
		b := f.create(t, alice, hotelRequest())
		updated, err := f.svc.Update(ctx, b.ID, alice, models.BookingUpdateRequest{BookingStatus: &cancelled})
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusCancelled, updated.BookingStatus)
	})

	t.Run("admin sets payment status", func(t *testing.T) {
		f := newFixture(t, nil)
		b := f.create(t, alice, hotelRequest())
		updated, err := f.svc.Update(ctx, b.ID, admin, models.BookingUpdateRequest{PaymentStatus: &paid, BookingStatus: &completed})
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusCompleted, updated.PaymentStatus)
		assert.Equal(t, models.BookingStatusCompleted, updated.BookingStatus)
	})

	t.Run("completed bookings never move", func(t *testing.T) {
		f := newFixture(t, nil)
		b := f.create(t, alice, hotelRequest())
		_, err := f.svc.Update(ctx, b.ID, admin, models.BookingUpdateRequest{BookingStatus: &completed})
		require.NoError(t, err)

		_, err = f.svc.Update(ctx, b.ID, admin, models.BookingUpdateRequest{BookingStatus: &cancelled})
		requireKind(t, err, utils.KindValidation)
	})

	t.Run("admin cannot set unknown status", func(t *testing.T) {
		f := newFixture(t, nil)
		b := f.create(t, alice, hotelRequest())
		bogus := models.BookingStatus("archived")
		_, err := f.svc.Update(ctx, b.ID, admin, models.BookingUpdateRequest{BookingStatus: &bogus})
		requireKind(t, err, utils.KindValidation)
	})
}

func TestUpdateMergesAndRevalidates(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	b := f.create(t, alice, hotelRequest())

	cab := models.BookingTypeCab
	updated, err := f.svc.Update(ctx, b.ID, alice, models.BookingUpdateRequest{
		BookingType:    &cab,
		CabID:          "C9",
		HotelID:        "H-ignored",
		NumberOfGuests: count(3),
		TotalPrice:     price(700),
	})
	require.NoError(t, err)
	assert.Equal(t, models.Reference{Type: models.BookingTypeCab, ID: "C9"}, updated.Reference)
	assert.Equal(t, 3, *updated.NumberOfGuests)
	assert.Equal(t, 700.0, updated.TotalPrice)
	assert.Equal(t, b.BookingDate, updated.BookingDate)

	dest := models.BookingTypeDestination
	_, err = f.svc.Update(ctx, b.ID, alice, models.BookingUpdateRequest{BookingType: &dest})
	requireKind(t, err, utils.KindValidation)

	_, err = f.svc.Update(ctx, b.ID, alice, models.BookingUpdateRequest{TotalPrice: price(-1)})
	requireKind(t, err, utils.KindValidation)

	stored, err := f.bookings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 700.0, stored.TotalPrice, "failed updates must not persist")
}

func TestUpdateAuthorization(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	b := f.create(t, alice, hotelRequest())

	_, err := f.svc.Update(ctx, b.ID, bob, models.BookingUpdateRequest{TotalPrice: price(1)})
	requireKind(t, err, utils.KindAuthorization)

	_, err = f.svc.Update(ctx, "5b0f5f8e-6a0c-4c1e-9a55-7b1c0d7d5e11", alice, models.BookingUpdateRequest{})
	requireKind(t, err, utils.KindNotFound)
}

func TestCancel(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	b := f.create(t, alice, hotelRequest())

	_, err := f.svc.Cancel(ctx, b.ID, bob)
	requireKind(t, err, utils.KindAuthorization)

	first, err := f.svc.Cancel(ctx, b.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, first.BookingStatus)
	assert.Equal(t, models.PaymentStatusPending, first.PaymentStatus)

	f.svc.Now = func() time.Time { return fixedNow.Add(time.Hour) }
	second, err := f.svc.Cancel(ctx, b.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, second.BookingStatus)
	assert.Equal(t, first.UpdatedAt, second.UpdatedAt, "second cancel must not write")

	_, err = f.svc.Cancel(ctx, "5b0f5f8e-6a0c-4c1e-9a55-7b1c0d7d5e11", alice)
	requireKind(t, err, utils.KindNotFound)
}

func TestCancelCompletedBooking(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	b := f.create(t, alice, hotelRequest())
	completed := models.BookingStatusCompleted
	_, err := f.svc.Update(ctx, b.ID, admin, models.BookingUpdateRequest{BookingStatus: &completed})
	require.NoError(t, err)

	cancelled, err := f.svc.Cancel(ctx, b.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.BookingStatus)
	assert.Equal(t, models.PaymentStatusPending, cancelled.PaymentStatus)

	stored, err := f.bookings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, stored.BookingStatus)
}

func TestConcurrentUpdatesLastWriterWins(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	b := f.create(t, alice, hotelRequest())

	var wg sync.WaitGroup
	for _, p := range []float64{100, 200} {
		wg.Add(1)
		go func(p float64) {
			defer wg.Done()
			_, err := f.svc.Update(ctx, b.ID, alice, models.BookingUpdateRequest{TotalPrice: price(p), NumberOfGuests: count(int(p))})
			assert.NoError(t, err)
		}(p)
	}
	wg.Wait()

	stored, err := f.bookings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Contains(t, []float64{100, 200}, stored.TotalPrice)
	assert.Equal(t, int(stored.TotalPrice), *stored.NumberOfGuests, "final state must equal one whole write")
}

func TestReminderScheduling(t *testing.T) {
	t.Run("future check-in is scheduled", func(t *testing.T) {
		reminders := &mockReminders{}
		reminders.On("ScheduleCheckInReminder", mock.Anything, mock.AnythingOfType("models.Booking")).Return(nil).Once()
		f := newFixture(t, reminders)

		req := hotelRequest()
		req.CheckInDate = date("2025-07-01")
		f.create(t, alice, req)
		reminders.AssertExpectations(t)
	})

	t.Run("past check-in is skipped", func(t *testing.T) {
		reminders := &mockReminders{}
		f := newFixture(t, reminders)

		req := hotelRequest()
		req.CheckInDate = date("2025-05-01")
		f.create(t, alice, req)
		reminders.AssertNotCalled(t, "ScheduleCheckInReminder", mock.Anything, mock.Anything)
	})

	t.Run("queue failure does not fail the booking", func(t *testing.T) {
		reminders := &mockReminders{}
		reminders.On("ScheduleCheckInReminder", mock.Anything, mock.Anything).Return(errors.New("redis down"))
		f := newFixture(t, reminders)

		req := hotelRequest()
		req.CheckInDate = date("2025-07-01")
		b, err := f.svc.Create(context.Background(), alice, req)
		require.NoError(t, err)
		assert.Equal(t, 1, f.bookings.Len())
		assert.NotEmpty(t, b.ID)
	})
}
