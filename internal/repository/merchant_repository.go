package repository

import (
	"sync"

	"github.com/rs/zerolog"

	"streetkart/internal/model"
)

// merchantRepository implements MerchantRepository with an in-memory map.
type merchantRepository struct {
	mu        sync.RWMutex
	merchants map[string]model.Merchant
	logger    zerolog.Logger
}

// NewMerchantRepository creates a new in-memory merchant repository.
func NewMerchantRepository(logger zerolog.Logger) MerchantRepository {
	return &merchantRepository{
		merchants: make(map[string]model.Merchant),
		logger:    logger.With().Str("repository", "merchant").Logger(),
	}
}

// Save inserts or replaces a merchant.
func (r *merchantRepository) Save(m model.Merchant) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.merchants[m.ID] = m
	r.logger.Debug().Str("merchant_id", m.ID).Msg("merchant saved")
}

// Get retrieves a merchant by ID. Returns nil when absent.
func (r *merchantRepository) Get(id string) *model.Merchant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.merchants[id]
	if !ok {
		return nil
	}
	return &m
}

// Delete removes a merchant. Unknown IDs are a no-op.
func (r *merchantRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.merchants, id)
	r.logger.Debug().Str("merchant_id", id).Msg("merchant deleted")
}

// All returns every stored merchant.
func (r *merchantRepository) All() []model.Merchant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Merchant, 0, len(r.merchants))
	for _, m := range r.merchants {
		out = append(out, m)
	}
	return out
}
