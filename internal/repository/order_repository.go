package repository

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"streetkart/internal/model"
)

// orderRepository implements OrderRepository with an in-memory map and a
// monotone order-number sequence.
type orderRepository struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]model.Order
	seq    int
	logger zerolog.Logger
}

// NewOrderRepository creates a new in-memory order repository.
func NewOrderRepository(logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		orders: make(map[uuid.UUID]model.Order),
		seq:    1000,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// Save inserts or replaces an order.
func (r *orderRepository) Save(order model.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[order.ID] = order
	r.logger.Debug().
		Str("order_id", order.ID.String()).
		Str("order_number", order.OrderNumber).
		Msg("order saved")
}

// Get retrieves an order by ID. Returns nil when absent.
func (r *orderRepository) Get(id uuid.UUID) *model.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil
	}
	return &order
}

// All returns every stored order.
func (r *orderRepository) All() []model.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Order, 0, len(r.orders))
	for _, order := range r.orders {
		out = append(out, order)
	}
	return out
}

// NextOrderNumber issues the next human-readable order number, e.g.
// "ORD-20251103-1001".
func (r *orderRepository) NextOrderNumber() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	return fmt.Sprintf("ORD-%s-%d", time.Now().Format("20060102"), r.seq)
}

// Sequence returns the current order-number sequence value.
func (r *orderRepository) Sequence() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.seq
}

// RestoreSequence reinstates a sequence value from a snapshot. The
// sequence never moves backwards.
func (r *orderRepository) RestoreSequence(seq int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if seq > r.seq {
		r.seq = seq
	}
}
