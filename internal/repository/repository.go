package repository

import (
	"github.com/google/uuid"

	"streetkart/internal/model"
)

// MerchantRepository defines storage operations for merchants.
type MerchantRepository interface {
	// Save inserts or replaces a merchant.
	Save(m model.Merchant)

	// Get retrieves a merchant by ID. Returns nil when absent.
	Get(id string) *model.Merchant

	// Delete removes a merchant. Unknown IDs are a no-op.
	Delete(id string)

	// All returns every stored merchant.
	All() []model.Merchant
}

// ItemRepository defines storage operations for merchant items.
type ItemRepository interface {
	// Save inserts or replaces an item.
	Save(item model.MerchantItem)

	// Get retrieves an item by ID. Returns nil when absent.
	Get(id string) *model.MerchantItem

	// Delete removes an item. Unknown IDs are a no-op.
	Delete(id string)

	// DeleteByMerchant removes every item owned by the given merchant.
	DeleteByMerchant(merchantID string)

	// All returns every stored item.
	All() []model.MerchantItem
}

// CartRepository holds the single active cart.
type CartRepository interface {
	// Get returns the active cart, or nil when no cart exists.
	Get() *model.Cart

	// Put replaces the active cart.
	Put(cart model.Cart)

	// Clear discards the active cart.
	Clear()
}

// OrderRepository defines storage operations for orders. Orders are
// never deleted.
type OrderRepository interface {
	// Save inserts or replaces an order.
	Save(order model.Order)

	// Get retrieves an order by ID. Returns nil when absent.
	Get(id uuid.UUID) *model.Order

	// All returns every stored order.
	All() []model.Order

	// NextOrderNumber issues the next human-readable order number.
	NextOrderNumber() string

	// Sequence returns the current order-number sequence value.
	Sequence() int

	// RestoreSequence reinstates a sequence value from a snapshot.
	RestoreSequence(seq int)
}

// DiscountRepository defines storage operations for discounts.
type DiscountRepository interface {
	// Save inserts or replaces a discount.
	Save(d model.Discount)

	// Get retrieves a discount by ID. Returns nil when absent.
	Get(id string) *model.Discount

	// GetByCode retrieves a discount by its code, case-insensitively.
	// Returns nil when absent.
	GetByCode(code string) *model.Discount

	// Delete removes a discount. Unknown IDs are a no-op.
	Delete(id string)

	// All returns every stored discount.
	All() []model.Discount
}

// AddressRepository defines storage operations for delivery addresses.
type AddressRepository interface {
	// Save inserts or replaces an address.
	Save(a model.DeliveryAddress)

	// Get retrieves an address by ID. Returns nil when absent.
	Get(id uuid.UUID) *model.DeliveryAddress

	// Delete removes an address. Unknown IDs are a no-op.
	Delete(id uuid.UUID)

	// ByUser returns every address owned by the given user.
	ByUser(userID string) []model.DeliveryAddress

	// All returns every stored address.
	All() []model.DeliveryAddress
}

// Store bundles every repository behind one state object. The
// composition root owns it; collaborators receive the repositories they
// need and never touch ambient globals.
type Store struct {
	Merchants MerchantRepository
	Items     ItemRepository
	Cart      CartRepository
	Orders    OrderRepository
	Discounts DiscountRepository
	Addresses AddressRepository
}
