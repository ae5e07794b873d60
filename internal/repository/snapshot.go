package repository

import (
	"time"

	"github.com/rs/zerolog"

	"streetkart/internal/model"
)

// Snapshot is a serializable image of the whole store. Derived fields
// (line totals, subtotals, sales counters) are carried as stored, so a
// restored store needs no recompute pass.
type Snapshot struct {
	Merchants []model.Merchant        `json:"merchants"`
	Items     []model.MerchantItem    `json:"items"`
	Cart      *model.Cart             `json:"cart,omitempty"`
	Orders    []model.Order           `json:"orders"`
	OrderSeq  int                     `json:"orderSeq"`
	Discounts []model.Discount        `json:"discounts"`
	Addresses []model.DeliveryAddress `json:"addresses"`
	SavedAt   time.Time               `json:"savedAt"`
}

// NewStore creates a Store backed by fresh in-memory repositories.
func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		Merchants: NewMerchantRepository(logger),
		Items:     NewItemRepository(logger),
		Cart:      NewCartRepository(logger),
		Orders:    NewOrderRepository(logger),
		Discounts: NewDiscountRepository(logger),
		Addresses: NewAddressRepository(logger),
	}
}

// Export captures the current state of every repository.
func (s *Store) Export() *Snapshot {
	return &Snapshot{
		Merchants: s.Merchants.All(),
		Items:     s.Items.All(),
		Cart:      s.Cart.Get(),
		Orders:    s.Orders.All(),
		OrderSeq:  s.Orders.Sequence(),
		Discounts: s.Discounts.All(),
		Addresses: s.Addresses.All(),
		SavedAt:   time.Now(),
	}
}

// Import loads a snapshot into the store. It upserts entity by entity
// and is intended for a freshly constructed store.
func (s *Store) Import(snap *Snapshot) {
	if snap == nil {
		return
	}

	for _, m := range snap.Merchants {
		s.Merchants.Save(m)
	}
	for _, item := range snap.Items {
		s.Items.Save(item)
	}
	if snap.Cart != nil {
		s.Cart.Put(*snap.Cart)
	} else {
		s.Cart.Clear()
	}
	for _, order := range snap.Orders {
		s.Orders.Save(order)
	}
	s.Orders.RestoreSequence(snap.OrderSeq)
	for _, d := range snap.Discounts {
		s.Discounts.Save(d)
	}
	for _, a := range snap.Addresses {
		s.Addresses.Save(a)
	}
}
