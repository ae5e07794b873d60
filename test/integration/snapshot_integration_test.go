package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streetkart/internal/model"
	"streetkart/internal/repository"
	"streetkart/internal/service"
	"streetkart/internal/snapshot"
)

func TestPostgresSnapshotStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := NopLogger()
	ctx := context.Background()

	snapStore, err := snapshot.NewPostgresStore(ctx, testDB.Pool, logger)
	require.NoError(t, err)

	t.Run("Load before any save returns nil", func(t *testing.T) {
		snap, err := snapStore.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, snap)
	})

	t.Run("Round trip preserves the whole store", func(t *testing.T) {
		store := repository.NewStore(logger)
		require.True(t, service.SeedSampleData(store, logger))

		// Drive real domain activity through the services so the
		// snapshot carries derived state.
		carts := service.NewCartService(store.Cart, store.Items, nil, logger)
		orders := service.NewOrderService(store.Orders, store.Cart, store.Items, store.Merchants, nil, logger)
		discounts := service.NewDiscountService(store.Discounts, nil, logger)

		require.True(t, carts.AddToCart("i-carnitas-burrito", 2, []model.OptionPick{
			{GroupID: "g-size", ChoiceID: "c-large"},
		}, "").Success)
		created := orders.CreateOrder(model.OrderRequest{
			UserID:       "u1",
			DeliveryType: model.DeliveryTypeDelivery,
			Tip:          2,
		})
		require.True(t, created.Success)
		require.True(t, discounts.ApplyDiscount("WELCOME20", 80).Valid)

		require.NoError(t, snapStore.Save(ctx, store.Export()))

		loaded, err := snapStore.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, loaded)

		restored := repository.NewStore(logger)
		restored.Import(loaded)

		// Derived state survives without a recompute pass.
		order := restored.Orders.Get(created.Order.ID)
		require.NotNil(t, order)
		assert.InDelta(t, created.Order.Total, order.Total, 0.001)

		item := restored.Items.Get("i-carnitas-burrito")
		require.NotNil(t, item)
		assert.Equal(t, 2, item.UnitsSold)

		discount := restored.Discounts.GetByCode("WELCOME20")
		require.NotNil(t, discount)
		assert.Equal(t, 1, discount.UsageCount)

		assert.Equal(t, store.Orders.Sequence(), restored.Orders.Sequence())
	})

	t.Run("Save replaces the previous snapshot", func(t *testing.T) {
		store := repository.NewStore(logger)
		store.Merchants.Save(model.Merchant{ID: "only", Name: "Only Shop", IsActive: true})

		require.NoError(t, snapStore.Save(ctx, store.Export()))

		loaded, err := snapStore.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Len(t, loaded.Merchants, 1)
		assert.Equal(t, "only", loaded.Merchants[0].ID)
	})
}
