package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusReady          OrderStatus = "ready"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCompleted      OrderStatus = "completed"
	StatusCancelled      OrderStatus = "cancelled"
	StatusRefunded       OrderStatus = "refunded"
)

// IsTerminal reports whether no further status transition is allowed.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case StatusDelivered, StatusCompleted, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

// PaymentStatus is the payment lifecycle, tracked independently of
// fulfilment status.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// DeliveryType selects the fulfilment flow.
type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

// OrderItem is an immutable snapshot of a cart line taken at checkout.
type OrderItem struct {
	ItemID          string           `json:"itemId"`
	Name            string           `json:"name"`
	UnitPrice       float64          `json:"unitPrice"` // base + option deltas
	SelectedOptions []SelectedOption `json:"selectedOptions,omitempty"`
	Quantity        int              `json:"quantity"`
	Notes           string           `json:"notes,omitempty"`
	LineTotal       float64          `json:"lineTotal"`
}

// Order is the immutable post-checkout snapshot. It is created once and
// mutated only through status-update operations; it is never deleted.
type Order struct {
	ID           uuid.UUID   `json:"id"`
	OrderNumber  string      `json:"orderNumber"`
	UserID       string      `json:"userId"`
	MerchantID   string      `json:"merchantId"`
	MerchantName string      `json:"merchantName"`
	Items        []OrderItem `json:"items"`

	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	DeliveryFee float64 `json:"deliveryFee"`
	Tip         float64 `json:"tip"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`

	DeliveryType DeliveryType     `json:"deliveryType"`
	Address      *DeliveryAddress `json:"address,omitempty"`

	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`

	CancelReason string     `json:"cancelReason,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	ConfirmedAt  *time.Time `json:"confirmedAt,omitempty"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	CancelledAt  *time.Time `json:"cancelledAt,omitempty"`
}

// OrderRequest carries the checkout parameters alongside the active cart.
type OrderRequest struct {
	UserID       string           `json:"userId"`
	DeliveryType DeliveryType     `json:"deliveryType"`
	Address      *DeliveryAddress `json:"address,omitempty"`
	Tip          float64          `json:"tip"`
	Discount     float64          `json:"discount"`
	DiscountCode string           `json:"discountCode,omitempty"`
}

// OrderResult is the structured outcome of order creation. Failure is a
// business state (empty cart, unknown merchant), not an error.
type OrderResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Order   *Order `json:"order,omitempty"`
}
