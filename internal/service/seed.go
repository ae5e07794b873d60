package service

import (
	"time"

	"github.com/rs/zerolog"

	"streetkart/internal/model"
	"streetkart/internal/repository"
)

// SeedSampleData populates demonstration merchants, items and discounts.
// It is idempotent: a catalogue that already holds merchants is left
// untouched. Returns whether anything was seeded.
func SeedSampleData(store *repository.Store, logger zerolog.Logger) bool {
	logger = logger.With().Str("component", "seed").Logger()

	if len(store.Merchants.All()) > 0 {
		logger.Debug().Msg("catalogue not empty, seed skipped")
		return false
	}

	now := time.Now()

	merchants := []model.Merchant{
		{
			ID:               "m-taqueria",
			Name:             "La Esquina Taqueria",
			Description:      "Street tacos, burritos and aguas frescas",
			Category:         "Mexican",
			OpeningTime:      "10:00",
			ClosingTime:      "22:00",
			Rating:           4.6,
			ReviewCount:      312,
			DeliveryFee:      2.99,
			MinOrderAmount:   10,
			DeliveryMinutes:  35,
			SupportsDelivery: true,
			SupportsPickup:   true,
			IsActive:         true,
			IsOpen:           true,
			CreatedAt:        now,
		},
		{
			ID:               "m-noodlebar",
			Name:             "Golden Noodle Bar",
			Description:      "Hand-pulled noodles and dumplings",
			Category:         "Chinese",
			OpeningTime:      "11:00",
			ClosingTime:      "21:30",
			Rating:           4.4,
			ReviewCount:      198,
			DeliveryFee:      3.49,
			MinOrderAmount:   15,
			DeliveryMinutes:  45,
			SupportsDelivery: true,
			SupportsPickup:   true,
			IsActive:         true,
			IsOpen:           true,
			CreatedAt:        now,
		},
		{
			ID:               "m-greenbowl",
			Name:             "Green Bowl Kitchen",
			Description:      "Salads, grain bowls and fresh juices",
			Category:         "Healthy",
			OpeningTime:      "08:00",
			ClosingTime:      "20:00",
			Rating:           4.8,
			ReviewCount:      86,
			DeliveryFee:      1.99,
			MinOrderAmount:   12,
			DeliveryMinutes:  25,
			SupportsDelivery: true,
			SupportsPickup:   false,
			IsActive:         true,
			IsOpen:           true,
			CreatedAt:        now,
		},
	}

	items := []model.MerchantItem{
		{
			ID:          "i-carnitas-burrito",
			MerchantID:  "m-taqueria",
			Name:        "Carnitas Burrito",
			Description: "Slow-cooked pork, rice, beans and salsa verde",
			Price:       12.99,
			Category:    "Burritos",
			IsAvailable: true,
			IsFeatured:  true,
			SortOrder:   1,
			CreatedAt:   now,
			Options: []model.OptionGroup{
				{
					ID:            "g-size",
					Name:          "Size",
					SelectionType: model.SelectionSingle,
					Required:      true,
					Choices: []model.Choice{
						{ID: "c-regular", Name: "Regular", PriceDelta: 0, IsAvailable: true, IsDefault: true},
						{ID: "c-large", Name: "Large", PriceDelta: 6, IsAvailable: true},
					},
				},
				{
					ID:            "g-extras",
					Name:          "Extras",
					SelectionType: model.SelectionMultiple,
					MaxSelect:     2,
					Choices: []model.Choice{
						{ID: "c-guac", Name: "Guacamole", PriceDelta: 1.50, IsAvailable: true},
						{ID: "c-queso", Name: "Queso", PriceDelta: 1.25, IsAvailable: true},
						{ID: "c-crema", Name: "Crema", PriceDelta: 0.75, IsAvailable: true},
					},
				},
			},
		},
		{
			ID:          "i-street-tacos",
			MerchantID:  "m-taqueria",
			Name:        "Street Tacos (3)",
			Description: "Corn tortillas, onion, cilantro, choice of filling",
			Price:       9.49,
			Category:    "Tacos",
			IsAvailable: true,
			SortOrder:   2,
			CreatedAt:   now,
		},
		{
			ID:          "i-dan-dan",
			MerchantID:  "m-noodlebar",
			Name:        "Dan Dan Noodles",
			Description: "Spicy sesame pork over hand-pulled noodles",
			Price:       13.50,
			Category:    "Noodles",
			IsAvailable: true,
			IsFeatured:  true,
			SortOrder:   1,
			CreatedAt:   now,
			Options: []model.OptionGroup{
				{
					ID:            "g-spice",
					Name:          "Spice Level",
					SelectionType: model.SelectionSingle,
					Required:      true,
					Choices: []model.Choice{
						{ID: "c-mild", Name: "Mild", PriceDelta: 0, IsAvailable: true, IsDefault: true},
						{ID: "c-hot", Name: "Hot", PriceDelta: 0, IsAvailable: true},
						{ID: "c-numbing", Name: "Numbing", PriceDelta: 0.50, IsAvailable: true},
					},
				},
			},
		},
		{
			ID:          "i-dumplings",
			MerchantID:  "m-noodlebar",
			Name:        "Pork Dumplings (8)",
			Description: "Pan-fried, with black vinegar dip",
			Price:       8.95,
			Category:    "Dumplings",
			IsAvailable: true,
			SortOrder:   2,
			CreatedAt:   now,
		},
		{
			ID:          "i-harvest-bowl",
			MerchantID:  "m-greenbowl",
			Name:        "Harvest Bowl",
			Description: "Quinoa, roasted squash, kale and tahini",
			Price:       11.75,
			Category:    "Bowls",
			IsAvailable: true,
			IsFeatured:  true,
			SortOrder:   1,
			CreatedAt:   now,
		},
	}

	discounts := []model.Discount{
		{
			ID:          "d-welcome20",
			Name:        "Welcome 20% Off",
			Code:        "WELCOME20",
			Type:        model.DiscountPercentage,
			Value:       20,
			MaxDiscount: 15,
			IsActive:    true,
			CreatedAt:   now,
		},
		{
			ID:             "d-fivebucks",
			Name:           "Five Off Twenty-Five",
			Code:           "TAKE5",
			Type:           model.DiscountFixed,
			Value:          5,
			MinOrderAmount: 25,
			UsageLimit:     100,
			IsActive:       true,
			CreatedAt:      now,
		},
	}

	for _, m := range merchants {
		store.Merchants.Save(m)
	}
	for _, item := range items {
		store.Items.Save(item)
	}
	for _, d := range discounts {
		store.Discounts.Save(d)
	}

	logger.Info().
		Int("merchants", len(merchants)).
		Int("items", len(items)).
		Int("discounts", len(discounts)).
		Msg("sample data seeded")
	return true
}
