package repository

import (
	"sync"

	"github.com/rs/zerolog"

	"streetkart/internal/model"
)

// itemRepository implements ItemRepository with an in-memory map.
type itemRepository struct {
	mu     sync.RWMutex
	items  map[string]model.MerchantItem
	logger zerolog.Logger
}

// NewItemRepository creates a new in-memory item repository.
func NewItemRepository(logger zerolog.Logger) ItemRepository {
	return &itemRepository{
		items:  make(map[string]model.MerchantItem),
		logger: logger.With().Str("repository", "item").Logger(),
	}
}

// Save inserts or replaces an item.
func (r *itemRepository) Save(item model.MerchantItem) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	r.logger.Debug().Str("item_id", item.ID).Msg("item saved")
}

// Get retrieves an item by ID. Returns nil when absent.
func (r *itemRepository) Get(id string) *model.MerchantItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil
	}
	return &item
}

// Delete removes an item. Unknown IDs are a no-op.
func (r *itemRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	r.logger.Debug().Str("item_id", id).Msg("item deleted")
}

// DeleteByMerchant removes every item owned by the given merchant.
func (r *itemRepository) DeleteByMerchant(merchantID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, item := range r.items {
		if item.MerchantID == merchantID {
			delete(r.items, id)
			removed++
		}
	}

	r.logger.Debug().
		Str("merchant_id", merchantID).
		Int("removed", removed).
		Msg("items deleted for merchant")
}

// All returns every stored item.
func (r *itemRepository) All() []model.MerchantItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.MerchantItem, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	return out
}
