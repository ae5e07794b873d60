package repository

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"streetkart/internal/model"
)

// addressRepository implements AddressRepository with an in-memory map.
type addressRepository struct {
	mu        sync.RWMutex
	addresses map[uuid.UUID]model.DeliveryAddress
	logger    zerolog.Logger
}

// NewAddressRepository creates a new in-memory address repository.
func NewAddressRepository(logger zerolog.Logger) AddressRepository {
	return &addressRepository{
		addresses: make(map[uuid.UUID]model.DeliveryAddress),
		logger:    logger.With().Str("repository", "address").Logger(),
	}
}

// Save inserts or replaces an address.
func (r *addressRepository) Save(a model.DeliveryAddress) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.addresses[a.ID] = a
	r.logger.Debug().
		Str("address_id", a.ID.String()).
		Str("user_id", a.UserID).
		Msg("address saved")
}

// Get retrieves an address by ID. Returns nil when absent.
func (r *addressRepository) Get(id uuid.UUID) *model.DeliveryAddress {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.addresses[id]
	if !ok {
		return nil
	}
	return &a
}

// Delete removes an address. Unknown IDs are a no-op.
func (r *addressRepository) Delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.addresses, id)
	r.logger.Debug().Str("address_id", id.String()).Msg("address deleted")
}

// ByUser returns every address owned by the given user.
func (r *addressRepository) ByUser(userID string) []model.DeliveryAddress {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.DeliveryAddress
	for _, a := range r.addresses {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out
}

// All returns every stored address.
func (r *addressRepository) All() []model.DeliveryAddress {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.DeliveryAddress, 0, len(r.addresses))
	for _, a := range r.addresses {
		out = append(out, a)
	}
	return out
}
