package repository

import (
	"sync"

	"github.com/rs/zerolog"

	"streetkart/internal/model"
)

// cartRepository implements CartRepository. It holds at most one cart.
type cartRepository struct {
	mu     sync.RWMutex
	cart   *model.Cart
	logger zerolog.Logger
}

// NewCartRepository creates a new in-memory cart repository.
func NewCartRepository(logger zerolog.Logger) CartRepository {
	return &cartRepository{
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

// Get returns the active cart, or nil when no cart exists.
func (r *cartRepository) Get() *model.Cart {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.cart == nil {
		return nil
	}
	c := *r.cart
	c.Items = append([]model.CartItem(nil), r.cart.Items...)
	return &c
}

// Put replaces the active cart.
func (r *cartRepository) Put(cart model.Cart) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cart = &cart
	r.logger.Debug().
		Str("merchant_id", cart.MerchantID).
		Int("lines", len(cart.Items)).
		Msg("cart stored")
}

// Clear discards the active cart.
func (r *cartRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cart = nil
	r.logger.Debug().Msg("cart cleared")
}
