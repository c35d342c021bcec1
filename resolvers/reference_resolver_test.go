package resolvers

import (
	"context"
	"errors"
	"testing"

	"tourguide/database/repository/memory"
	"tourguide/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDispatchesOnType(t *testing.T) {
	ctx := context.Background()
	hotels, cabs, dests := memory.NewHotelRepo(), memory.NewCabRepo(), memory.NewDestinationRepo()
	r := NewReferenceResolver(hotels, cabs, dests)

	hotel := &models.Hotel{Name: "Taj"}
	cab := &models.Cab{CompanyName: "Ola"}
	dest := &models.Destination{Name: "Goa"}
	require.NoError(t, hotels.Create(ctx, hotel))
	require.NoError(t, cabs.Create(ctx, cab))
	require.NoError(t, dests.Create(ctx, dest))

	item, err := r.Resolve(ctx, models.Reference{Type: models.BookingTypeHotel, ID: hotel.ID})
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Taj", item.Hotel.Name)
	assert.Nil(t, item.Cab)

	item, err = r.Resolve(ctx, models.Reference{Type: models.BookingTypeCab, ID: cab.ID})
	require.NoError(t, err)
	assert.Equal(t, "Ola", item.Cab.CompanyName)

	item, err = r.Resolve(ctx, models.Reference{Type: models.BookingTypeDestination, ID: dest.ID})
	require.NoError(t, err)
	assert.Equal(t, "Goa", item.Destination.Name)

	// A hotel id looked up as a cab resolves to nothing.
	item, err = r.Resolve(ctx, models.Reference{Type: models.BookingTypeCab, ID: hotel.ID})
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestResolveMissingOrMalformed(t *testing.T) {
	r := NewReferenceResolver(memory.NewHotelRepo(), memory.NewCabRepo(), memory.NewDestinationRepo())
	ctx := context.Background()

	item, err := r.Resolve(ctx, models.Reference{Type: models.BookingTypeHotel, ID: "H1"})
	require.NoError(t, err)
	assert.Nil(t, item)

	item, err = r.Resolve(ctx, models.Reference{Type: models.BookingTypeHotel})
	require.NoError(t, err)
	assert.Nil(t, item)

	_, err = r.Resolve(ctx, models.Reference{Type: "flight", ID: "x"})
	assert.Error(t, err)
}

func TestResolveStoreFailure(t *testing.T) {
	hotels := memory.NewHotelRepo()
	hotels.Err = errors.New("down")
	r := NewReferenceResolver(hotels, memory.NewCabRepo(), memory.NewDestinationRepo())

	_, err := r.Resolve(context.Background(), models.Reference{Type: models.BookingTypeHotel, ID: "5b0f5f8e-6a0c-4c1e-9a55-7b1c0d7d5e11"})
	assert.Error(t, err)
}
