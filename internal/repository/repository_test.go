package repository

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streetkart/internal/model"
)

func TestMerchantRepository_CRUD(t *testing.T) {
	repo := NewMerchantRepository(zerolog.Nop())

	repo.Save(model.Merchant{ID: "m1", Name: "Shop"})
	require.NotNil(t, repo.Get("m1"))
	assert.Len(t, repo.All(), 1)

	// Get returns a copy; mutating it must not leak into the store.
	m := repo.Get("m1")
	m.Name = "Changed"
	assert.Equal(t, "Shop", repo.Get("m1").Name)

	repo.Delete("m1")
	assert.Nil(t, repo.Get("m1"))

	// Unknown IDs are no-ops.
	repo.Delete("ghost")
	assert.Nil(t, repo.Get("ghost"))
}

func TestItemRepository_DeleteByMerchant(t *testing.T) {
	repo := NewItemRepository(zerolog.Nop())

	repo.Save(model.MerchantItem{ID: "i1", MerchantID: "m1"})
	repo.Save(model.MerchantItem{ID: "i2", MerchantID: "m1"})
	repo.Save(model.MerchantItem{ID: "i3", MerchantID: "m2"})

	repo.DeleteByMerchant("m1")

	assert.Nil(t, repo.Get("i1"))
	assert.Nil(t, repo.Get("i2"))
	assert.NotNil(t, repo.Get("i3"))
}

func TestCartRepository_SingleCart(t *testing.T) {
	repo := NewCartRepository(zerolog.Nop())

	assert.Nil(t, repo.Get())

	repo.Put(model.Cart{MerchantID: "m1", Subtotal: 10})
	cart := repo.Get()
	require.NotNil(t, cart)
	assert.Equal(t, "m1", cart.MerchantID)

	// Replacing swaps the whole cart.
	repo.Put(model.Cart{MerchantID: "m2"})
	assert.Equal(t, "m2", repo.Get().MerchantID)

	repo.Clear()
	assert.Nil(t, repo.Get())
}

func TestOrderRepository_NumberSequence(t *testing.T) {
	repo := NewOrderRepository(zerolog.Nop())

	first := repo.NextOrderNumber()
	second := repo.NextOrderNumber()

	assert.True(t, strings.HasPrefix(first, "ORD-"))
	assert.NotEqual(t, first, second)
	assert.Equal(t, 1002, repo.Sequence())

	// Restoring never moves the sequence backwards.
	repo.RestoreSequence(900)
	assert.Equal(t, 1002, repo.Sequence())
	repo.RestoreSequence(2000)
	assert.Equal(t, 2000, repo.Sequence())
}

func TestDiscountRepository_GetByCode(t *testing.T) {
	repo := NewDiscountRepository(zerolog.Nop())

	repo.Save(model.Discount{ID: "d1", Code: "WELCOME20"})
	repo.Save(model.Discount{ID: "d2"}) // codeless discounts are never matched

	require.NotNil(t, repo.GetByCode("welcome20"))
	assert.Equal(t, "d1", repo.GetByCode("WELCOME20").ID)
	assert.Nil(t, repo.GetByCode(""))
	assert.Nil(t, repo.GetByCode("GHOST"))
}

func TestAddressRepository_ByUser(t *testing.T) {
	repo := NewAddressRepository(zerolog.Nop())

	a1 := model.DeliveryAddress{ID: uuid.New(), UserID: "u1", Label: "Home"}
	a2 := model.DeliveryAddress{ID: uuid.New(), UserID: "u1", Label: "Work"}
	a3 := model.DeliveryAddress{ID: uuid.New(), UserID: "u2", Label: "Home"}
	repo.Save(a1)
	repo.Save(a2)
	repo.Save(a3)

	assert.Len(t, repo.ByUser("u1"), 2)
	assert.Len(t, repo.ByUser("u2"), 1)
	assert.Empty(t, repo.ByUser("u3"))

	repo.Delete(a1.ID)
	assert.Len(t, repo.ByUser("u1"), 1)
}

func TestStore_SnapshotRoundTrip(t *testing.T) {
	logger := zerolog.Nop()
	store := NewStore(logger)

	store.Merchants.Save(model.Merchant{ID: "m1", Name: "Shop", IsActive: true})
	store.Items.Save(model.MerchantItem{ID: "i1", MerchantID: "m1", Name: "Thing", Price: 5, UnitsSold: 7, Revenue: 35})
	store.Cart.Put(model.Cart{
		MerchantID: "m1",
		Items: []model.CartItem{{
			ID: uuid.New(), ItemID: "i1", Name: "Thing",
			BasePrice: 5, Quantity: 2, LineTotal: 10,
		}},
		Subtotal: 10,
	})
	store.Orders.Save(model.Order{
		ID:            uuid.New(),
		OrderNumber:   store.Orders.NextOrderNumber(),
		MerchantID:    "m1",
		Subtotal:      10,
		Total:         10.88,
		Status:        model.StatusPending,
		PaymentStatus: model.PaymentPending,
	})
	store.Discounts.Save(model.Discount{ID: "d1", Code: "CODE", UsageCount: 3})
	store.Addresses.Save(model.DeliveryAddress{ID: uuid.New(), UserID: "u1", IsDefault: true})

	snap := store.Export()
	restored := NewStore(logger)
	restored.Import(snap)

	// No recompute pass: derived fields come back exactly as stored.
	assert.Equal(t, store.Merchants.All(), restored.Merchants.All())
	assert.Equal(t, store.Items.All(), restored.Items.All())
	assert.Equal(t, store.Cart.Get(), restored.Cart.Get())
	assert.ElementsMatch(t, store.Orders.All(), restored.Orders.All())
	assert.Equal(t, store.Orders.Sequence(), restored.Orders.Sequence())
	assert.Equal(t, store.Discounts.All(), restored.Discounts.All())
	assert.Equal(t, store.Addresses.All(), restored.Addresses.All())

	// The restored sequence keeps issuing fresh numbers.
	next := restored.Orders.NextOrderNumber()
	assert.NotEmpty(t, next)
	assert.Equal(t, store.Orders.Sequence()+1, restored.Orders.Sequence())
}

func TestStore_ImportNil(t *testing.T) {
	store := NewStore(zerolog.Nop())
	store.Import(nil)
	assert.Empty(t, store.Merchants.All())
}
