package service

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streetkart/internal/model"
	"streetkart/internal/repository"
)

func newDiscountFixture(t *testing.T) (DiscountService, *repository.Store) {
	t.Helper()

	logger := zerolog.Nop()
	store := repository.NewStore(logger)
	return NewDiscountService(store.Discounts, nil, logger), store
}

func TestApplyDiscount_PercentageCapScenario(t *testing.T) {
	// WELCOME20: 20% capped at $15. On a $100 subtotal the discount is
	// the cap, not $20.
	discounts, _ := newDiscountFixture(t)
	discounts.AddDiscount(model.Discount{
		ID:          "d1",
		Name:        "Welcome",
		Code:        "WELCOME20",
		Type:        model.DiscountPercentage,
		Value:       20,
		MaxDiscount: 15,
		IsActive:    true,
	})

	result := discounts.ApplyDiscount("WELCOME20", 100)

	require.True(t, result.Valid)
	assert.InDelta(t, 15, result.Discount, 0.001)

	// Under the cap the percentage applies directly.
	result = discounts.ApplyDiscount("WELCOME20", 50)
	require.True(t, result.Valid)
	assert.InDelta(t, 10, result.Discount, 0.001)
}

func TestApplyDiscount_FixedAmount(t *testing.T) {
	discounts, _ := newDiscountFixture(t)
	discounts.AddDiscount(model.Discount{
		ID:       "d1",
		Code:     "TAKE5",
		Type:     model.DiscountFixed,
		Value:    5,
		IsActive: true,
	})

	result := discounts.ApplyDiscount("take5", 30)

	require.True(t, result.Valid)
	assert.InDelta(t, 5, result.Discount, 0.001)
}

func TestApplyDiscount_FailurePaths(t *testing.T) {
	past := time.Now().Add(-48 * time.Hour)
	lessPast := time.Now().Add(-24 * time.Hour)
	future := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name     string
		discount model.Discount
		subtotal float64
		message  string
	}{
		{
			name: "Inactive",
			discount: model.Discount{
				ID: "d1", Code: "CODE", Type: model.DiscountFixed, Value: 5, IsActive: false,
			},
			subtotal: 50,
			message:  "no longer active",
		},
		{
			name: "Expired",
			discount: model.Discount{
				ID: "d1", Code: "CODE", Type: model.DiscountFixed, Value: 5, IsActive: true,
				StartDate: &past, EndDate: &lessPast,
			},
			subtotal: 50,
			message:  "expired",
		},
		{
			name: "Not started",
			discount: model.Discount{
				ID: "d1", Code: "CODE", Type: model.DiscountFixed, Value: 5, IsActive: true,
				StartDate: &future,
			},
			subtotal: 50,
			message:  "not active yet",
		},
		{
			name: "Over usage limit",
			discount: model.Discount{
				ID: "d1", Code: "CODE", Type: model.DiscountFixed, Value: 5, IsActive: true,
				UsageLimit: 10, UsageCount: 10,
			},
			subtotal: 50,
			message:  "usage limit",
		},
		{
			name: "Under minimum order",
			discount: model.Discount{
				ID: "d1", Code: "CODE", Type: model.DiscountFixed, Value: 5, IsActive: true,
				MinOrderAmount: 25,
			},
			subtotal: 20,
			message:  "Minimum order",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discounts, store := newDiscountFixture(t)
			discounts.AddDiscount(tt.discount)
			usageBefore := tt.discount.UsageCount

			result := discounts.ApplyDiscount("CODE", tt.subtotal)

			assert.False(t, result.Valid)
			assert.Zero(t, result.Discount)
			assert.Contains(t, result.Message, tt.message)

			// A failed application never burns a use.
			stored := store.Discounts.Get("d1")
			require.NotNil(t, stored)
			assert.Equal(t, usageBefore, stored.UsageCount)
		})
	}
}

func TestApplyDiscount_UnknownCode(t *testing.T) {
	discounts, _ := newDiscountFixture(t)

	result := discounts.ApplyDiscount("NOPE", 100)

	assert.False(t, result.Valid)
	assert.Zero(t, result.Discount)
	assert.Contains(t, result.Message, "Invalid")
}

func TestApplyDiscount_UsageCountIncrementsOncePerUse(t *testing.T) {
	discounts, store := newDiscountFixture(t)
	discounts.AddDiscount(model.Discount{
		ID: "d1", Code: "CODE", Type: model.DiscountFixed, Value: 5, IsActive: true,
		UsageLimit: 2,
	})

	require.True(t, discounts.ApplyDiscount("CODE", 50).Valid)
	assert.Equal(t, 1, store.Discounts.Get("d1").UsageCount)

	require.True(t, discounts.ApplyDiscount("CODE", 50).Valid)
	assert.Equal(t, 2, store.Discounts.Get("d1").UsageCount)

	// The limit is now reached.
	result := discounts.ApplyDiscount("CODE", 50)
	assert.False(t, result.Valid)
	assert.Equal(t, 2, store.Discounts.Get("d1").UsageCount)
}

func TestDiscountCRUD(t *testing.T) {
	discounts, _ := newDiscountFixture(t)

	discounts.AddDiscount(model.Discount{ID: "d1", Code: "CODE", Type: model.DiscountFixed, Value: 5, IsActive: true})
	require.NotNil(t, discounts.GetDiscount("d1"))
	assert.Len(t, discounts.ListDiscounts(), 1)

	discounts.SetDiscountActive("d1", false)
	assert.False(t, discounts.GetDiscount("d1").IsActive)

	// Unknown IDs are silent no-ops.
	discounts.SetDiscountActive("ghost", true)
	discounts.DeleteDiscount("ghost")

	discounts.DeleteDiscount("d1")
	assert.Nil(t, discounts.GetDiscount("d1"))
	assert.Empty(t, discounts.ListDiscounts())
}
