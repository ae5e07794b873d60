package service

import (
	"time"

	"github.com/google/uuid"

	"streetkart/internal/model"
)

// ChangeHook is invoked after every successful state mutation. The
// composition root registers a snapshot save here so domain logic stays
// free of I/O.
type ChangeHook func()

func (h ChangeHook) fire() {
	if h != nil {
		h()
	}
}

// CatalogService defines operations for merchant and item management.
// Operations referencing an unknown ID are silent no-ops; callers that
// need failure feedback check existence via a getter first.
type CatalogService interface {
	// AddMerchant inserts a merchant into the catalogue.
	AddMerchant(m model.Merchant)

	// UpdateMerchant applies a partial patch to a merchant.
	UpdateMerchant(id string, patch model.MerchantPatch)

	// DeleteMerchant removes a merchant and cascades to its items.
	DeleteMerchant(id string)

	// GetMerchant retrieves a merchant by ID. Returns nil when absent.
	GetMerchant(id string) *model.Merchant

	// QueryMerchants returns active merchants matching the filter,
	// sorted by name.
	QueryMerchants(filter model.MerchantFilter) []model.Merchant

	// AddItem inserts an item into the catalogue.
	AddItem(item model.MerchantItem)

	// UpdateItem applies a partial patch to an item.
	UpdateItem(id string, patch model.ItemPatch)

	// DeleteItem removes an item.
	DeleteItem(id string)

	// GetItem retrieves an item by ID. Returns nil when absent.
	GetItem(id string) *model.MerchantItem

	// QueryItems returns items matching the filter, ordered by the
	// filter's sort key.
	QueryItems(filter model.ItemFilter) []model.MerchantItem

	// BulkUpdateItems applies one patch to every listed item as a
	// single unit.
	BulkUpdateItems(ids []string, patch model.ItemPatch)

	// BulkDeleteItems removes every listed item as a single unit.
	BulkDeleteItems(ids []string)
}

// CartService defines operations on the single active cart.
type CartService interface {
	// AddToCart adds an item line to the cart, creating the cart
	// lazily. Fails with a structured result when the cart is pinned
	// to a different merchant.
	AddToCart(itemID string, quantity int, picks []model.OptionPick, notes string) model.CartResult

	// UpdateCartItem applies a partial patch to a cart line. A
	// resulting quantity of zero or less removes the line.
	UpdateCartItem(lineID uuid.UUID, patch model.CartItemPatch)

	// RemoveFromCart drops a cart line; removing the last line
	// discards the cart.
	RemoveFromCart(lineID uuid.UUID)

	// GetCart returns the active cart, or nil when no cart exists.
	GetCart() *model.Cart

	// GetCartTotal returns the cart subtotal and summed quantities.
	GetCartTotal() model.CartTotal

	// ClearCart discards the active cart.
	ClearCart()
}

// OrderService drives orders through their fulfilment and payment
// lifecycles.
type OrderService interface {
	// CreateOrder snapshots the active cart into an immutable order.
	CreateOrder(req model.OrderRequest) model.OrderResult

	// GetOrder retrieves an order by ID. Returns nil when absent.
	GetOrder(id uuid.UUID) *model.Order

	// ListOrders returns every order, newest first.
	ListOrders() []model.Order

	// ListOrdersByStatus returns orders in the given fulfilment
	// status, newest first.
	ListOrdersByStatus(status model.OrderStatus) []model.Order

	// ListOrdersForUser returns a user's orders, newest first.
	ListOrdersForUser(userID string) []model.Order

	// UpdateOrderStatus advances an order one step along its
	// fulfilment flow.
	UpdateOrderStatus(id uuid.UUID, status model.OrderStatus) error

	// UpdatePaymentStatus moves the payment lifecycle independently of
	// fulfilment.
	UpdatePaymentStatus(id uuid.UUID, status model.PaymentStatus) error

	// CancelOrder moves an order to cancelled. The reason is mandatory.
	CancelOrder(id uuid.UUID, reason string) error

	// RefundOrder sets payment status and fulfilment status to
	// refunded as one compound action.
	RefundOrder(id uuid.UUID) error
}

// DiscountService manages promotional rules and their application.
type DiscountService interface {
	// AddDiscount inserts a discount.
	AddDiscount(d model.Discount)

	// DeleteDiscount removes a discount.
	DeleteDiscount(id string)

	// GetDiscount retrieves a discount by ID. Returns nil when absent.
	GetDiscount(id string) *model.Discount

	// ListDiscounts returns every discount.
	ListDiscounts() []model.Discount

	// SetDiscountActive toggles a discount on or off.
	SetDiscountActive(id string, active bool)

	// ApplyDiscount validates a code against an order subtotal and, on
	// success, computes the amount and burns one use.
	ApplyDiscount(code string, orderSubtotal float64) model.DiscountResult
}

// AddressService manages a user's saved delivery addresses.
type AddressService interface {
	// AddAddress saves an address, assigning its ID. A default
	// address clears the flag on the user's other addresses first.
	AddAddress(a model.DeliveryAddress) model.DeliveryAddress

	// UpdateAddress replaces a saved address, keeping the
	// single-default invariant.
	UpdateAddress(a model.DeliveryAddress)

	// DeleteAddress removes an address.
	DeleteAddress(id uuid.UUID)

	// GetAddresses returns a user's addresses, default first.
	GetAddresses(userID string) []model.DeliveryAddress

	// SetDefaultAddress makes one address the user's default,
	// clearing the previous one atomically.
	SetDefaultAddress(userID string, id uuid.UUID)
}

// AnalyticsService derives dashboard statistics from orders and the
// catalogue. It never mutates state.
type AnalyticsService interface {
	// Dashboard computes statistics over paid orders in the trailing
	// window. A zero window defaults to 30 days; topN defaults to 5.
	Dashboard(window time.Duration, topN int) model.DashboardStats
}
