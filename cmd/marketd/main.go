package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"streetkart/internal/config"
	"streetkart/internal/database"
	"streetkart/internal/model"
	"streetkart/internal/repository"
	"streetkart/internal/service"
	"streetkart/internal/snapshot"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting streetkart market core")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snapStore, err := newSnapshotStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if snapStore != nil {
		defer snapStore.Close()
	}

	// The store is the single owner of domain state; everything below
	// receives it explicitly.
	store := repository.NewStore(logger)

	if snapStore != nil {
		snap, err := snapStore.Load(ctx)
		if err != nil {
			return fmt.Errorf("failed to restore snapshot: %w", err)
		}
		if snap != nil {
			store.Import(snap)
			logger.Info().
				Time("saved_at", snap.SavedAt).
				Int("merchants", len(snap.Merchants)).
				Int("orders", len(snap.Orders)).
				Msg("state restored from snapshot")
		}
	}

	// Save-on-change boundary: domain services only fire the hook, the
	// snapshot write happens here.
	var onChange service.ChangeHook
	if snapStore != nil {
		onChange = func() {
			if err := snapStore.Save(ctx, store.Export()); err != nil {
				logger.Error().Err(err).Msg("failed to persist snapshot")
			}
		}
	}

	catalog := service.NewCatalogService(store.Merchants, store.Items, onChange, logger)
	carts := service.NewCartService(store.Cart, store.Items, onChange, logger)
	orders := service.NewOrderService(store.Orders, store.Cart, store.Items, store.Merchants, onChange, logger)
	discounts := service.NewDiscountService(store.Discounts, onChange, logger)
	addresses := service.NewAddressService(store.Addresses, onChange, logger)
	analytics := service.NewAnalyticsService(store.Orders, store.Items, store.Merchants, logger)

	if service.SeedSampleData(store, logger) && snapStore != nil {
		if err := snapStore.Save(ctx, store.Export()); err != nil {
			logger.Error().Err(err).Msg("failed to persist seeded snapshot")
		}
	}

	// First run only: walk one order through checkout so the dashboard
	// has something to show.
	if len(orders.ListOrders()) == 0 {
		runDemoCheckout(carts, orders, discounts, addresses, logger)
	}

	merchants := catalog.QueryMerchants(model.MerchantFilter{})

	stats := analytics.Dashboard(0, 5)
	out, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render dashboard: %w", err)
	}
	fmt.Println(string(out))

	logger.Info().
		Int("merchants", len(merchants)).
		Int("paid_orders", stats.OrderCount).
		Msg("market core ready")
	return nil
}

// runDemoCheckout walks one seeded order from cart to confirmed so a
// fresh install has live data behind the dashboard.
func runDemoCheckout(carts service.CartService, orders service.OrderService, discounts service.DiscountService, addresses service.AddressService, logger zerolog.Logger) {
	home := addresses.AddAddress(model.DeliveryAddress{
		UserID:    "demo-user",
		Label:     "Home",
		Street:    "455 Valencia St",
		City:      "San Francisco",
		State:     "CA",
		ZipCode:   "94103",
		IsDefault: true,
	})

	added := carts.AddToCart("i-carnitas-burrito", 2, []model.OptionPick{
		{GroupID: "g-size", ChoiceID: "c-large"},
		{GroupID: "g-extras", ChoiceID: "c-guac"},
	}, "extra napkins please")
	if !added.Success {
		logger.Warn().Str("message", added.Message).Msg("demo checkout skipped")
		return
	}

	promo := discounts.ApplyDiscount("WELCOME20", carts.GetCartTotal().Subtotal)

	result := orders.CreateOrder(model.OrderRequest{
		UserID:       "demo-user",
		DeliveryType: model.DeliveryTypeDelivery,
		Address:      &home,
		Tip:          3,
		Discount:     promo.Discount,
		DiscountCode: "WELCOME20",
	})
	if !result.Success {
		logger.Warn().Str("message", result.Message).Msg("demo checkout skipped")
		return
	}

	if err := orders.UpdatePaymentStatus(result.Order.ID, model.PaymentPaid); err != nil {
		logger.Error().Err(err).Msg("demo payment update failed")
	}
	if err := orders.UpdateOrderStatus(result.Order.ID, model.StatusConfirmed); err != nil {
		logger.Error().Err(err).Msg("demo status update failed")
	}

	logger.Info().
		Str("order_number", result.Order.OrderNumber).
		Float64("total", result.Order.Total).
		Msg("demo order placed")
}

// newSnapshotStore builds the configured snapshot backend, or nil when
// persistence is disabled.
func newSnapshotStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (snapshot.Store, error) {
	switch cfg.Snapshot.Backend {
	case config.SnapshotNone:
		logger.Info().Msg("snapshot persistence disabled")
		return nil, nil
	case config.SnapshotFile:
		return snapshot.NewFileStore(cfg.Snapshot.FilePath, logger), nil
	case config.SnapshotPostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		store, err := snapshot.NewPostgresStore(ctx, pool, logger)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return store, nil
	}
	return nil, fmt.Errorf("unknown snapshot backend: %s", cfg.Snapshot.Backend)
}
