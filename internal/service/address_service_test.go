package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streetkart/internal/model"
	"streetkart/internal/repository"
)

func newAddressFixture(t *testing.T) (AddressService, *repository.Store) {
	t.Helper()

	logger := zerolog.Nop()
	store := repository.NewStore(logger)
	return NewAddressService(store.Addresses, nil, logger), store
}

func TestAddAddress_AssignsIDAndDefault(t *testing.T) {
	addresses, _ := newAddressFixture(t)

	saved := addresses.AddAddress(model.DeliveryAddress{
		UserID:    "u1",
		Label:     "Home",
		Street:    "12 Vine St",
		City:      "Oakland",
		IsDefault: true,
	})

	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.True(t, saved.IsDefault)
}

func TestAddAddress_NewDefaultClearsPrevious(t *testing.T) {
	addresses, _ := newAddressFixture(t)

	first := addresses.AddAddress(model.DeliveryAddress{UserID: "u1", Label: "Home", IsDefault: true})
	second := addresses.AddAddress(model.DeliveryAddress{UserID: "u1", Label: "Work", IsDefault: true})

	list := addresses.GetAddresses("u1")
	require.Len(t, list, 2)

	defaults := 0
	for _, a := range list {
		if a.IsDefault {
			defaults++
			assert.Equal(t, second.ID, a.ID)
		}
	}
	assert.Equal(t, 1, defaults)
	_ = first
}

func TestSetDefaultAddress_DoesNotTouchOtherUsers(t *testing.T) {
	addresses, _ := newAddressFixture(t)

	mine := addresses.AddAddress(model.DeliveryAddress{UserID: "u1", Label: "Home", IsDefault: true})
	other := addresses.AddAddress(model.DeliveryAddress{UserID: "u2", Label: "Home", IsDefault: true})
	work := addresses.AddAddress(model.DeliveryAddress{UserID: "u1", Label: "Work"})

	addresses.SetDefaultAddress("u1", work.ID)

	u1 := addresses.GetAddresses("u1")
	require.Len(t, u1, 2)
	assert.Equal(t, work.ID, u1[0].ID) // default sorts first
	assert.True(t, u1[0].IsDefault)
	for _, a := range u1 {
		if a.ID == mine.ID {
			assert.False(t, a.IsDefault)
		}
	}

	// The other user's default is untouched.
	u2 := addresses.GetAddresses("u2")
	require.Len(t, u2, 1)
	assert.Equal(t, other.ID, u2[0].ID)
	assert.True(t, u2[0].IsDefault)
}

func TestSetDefaultAddress_WrongUserIsNoOp(t *testing.T) {
	addresses, _ := newAddressFixture(t)

	mine := addresses.AddAddress(model.DeliveryAddress{UserID: "u1", Label: "Home", IsDefault: true})
	addresses.SetDefaultAddress("u2", mine.ID)

	list := addresses.GetAddresses("u1")
	require.Len(t, list, 1)
	assert.True(t, list[0].IsDefault)
	assert.Empty(t, addresses.GetAddresses("u2"))
}

func TestUpdateAndDeleteAddress(t *testing.T) {
	addresses, _ := newAddressFixture(t)

	home := addresses.AddAddress(model.DeliveryAddress{UserID: "u1", Label: "Home", IsDefault: true})
	work := addresses.AddAddress(model.DeliveryAddress{UserID: "u1", Label: "Work"})

	work.IsDefault = true
	addresses.UpdateAddress(work)

	list := addresses.GetAddresses("u1")
	require.Len(t, list, 2)
	assert.Equal(t, work.ID, list[0].ID)
	assert.True(t, list[0].IsDefault)

	addresses.DeleteAddress(home.ID)
	assert.Len(t, addresses.GetAddresses("u1"), 1)

	// Unknown IDs are silent no-ops.
	addresses.DeleteAddress(uuid.New())
	addresses.UpdateAddress(model.DeliveryAddress{ID: uuid.New(), UserID: "u1"})
}
