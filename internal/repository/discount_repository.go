package repository

import (
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"streetkart/internal/model"
)

// discountRepository implements DiscountRepository with an in-memory map.
type discountRepository struct {
	mu        sync.RWMutex
	discounts map[string]model.Discount
	logger    zerolog.Logger
}

// NewDiscountRepository creates a new in-memory discount repository.
func NewDiscountRepository(logger zerolog.Logger) DiscountRepository {
	return &discountRepository{
		discounts: make(map[string]model.Discount),
		logger:    logger.With().Str("repository", "discount").Logger(),
	}
}

// Save inserts or replaces a discount.
func (r *discountRepository) Save(d model.Discount) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.discounts[d.ID] = d
	r.logger.Debug().Str("discount_id", d.ID).Str("code", d.Code).Msg("discount saved")
}

// Get retrieves a discount by ID. Returns nil when absent.
func (r *discountRepository) Get(id string) *model.Discount {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.discounts[id]
	if !ok {
		return nil
	}
	return &d
}

// GetByCode retrieves a discount by its code, case-insensitively.
func (r *discountRepository) GetByCode(code string) *model.Discount {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.discounts {
		if d.Code != "" && strings.EqualFold(d.Code, code) {
			return &d
		}
	}
	return nil
}

// Delete removes a discount. Unknown IDs are a no-op.
func (r *discountRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.discounts, id)
	r.logger.Debug().Str("discount_id", id).Msg("discount deleted")
}

// All returns every stored discount.
func (r *discountRepository) All() []model.Discount {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Discount, 0, len(r.discounts))
	for _, d := range r.discounts {
		out = append(out, d)
	}
	return out
}
