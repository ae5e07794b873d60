package model

import "github.com/google/uuid"

// OptionPick is a caller-supplied option selection: one choice picked
// from one group, in click order.
type OptionPick struct {
	GroupID  string `json:"groupId"`
	ChoiceID string `json:"choiceId"`
}

// SelectedOption is a resolved option pick captured by value, so later
// catalogue edits never change the pricing of a cart line.
type SelectedOption struct {
	GroupID    string  `json:"groupId"`
	GroupName  string  `json:"groupName"`
	ChoiceID   string  `json:"choiceId"`
	ChoiceName string  `json:"choiceName"`
	PriceDelta float64 `json:"priceDelta"`
}

// CartItem is one line in the cart. BasePrice is snapshotted from the
// catalogue at add time; LineTotal is recomputed inside every mutation
// that touches quantity or options.
type CartItem struct {
	ID              uuid.UUID        `json:"id"`
	ItemID          string           `json:"itemId"`
	Name            string           `json:"name"`
	BasePrice       float64          `json:"basePrice"`
	SelectedOptions []SelectedOption `json:"selectedOptions,omitempty"`
	Quantity        int              `json:"quantity"`
	Notes           string           `json:"notes,omitempty"`
	LineTotal       float64          `json:"lineTotal"`
}

// Cart is the single in-progress basket, pinned to one merchant. There
// is no empty-cart state: removing the last line discards the cart.
type Cart struct {
	MerchantID string     `json:"merchantId"`
	Items      []CartItem `json:"items"`
	Subtotal   float64    `json:"subtotal"`
}

// CartTotal is the summary returned to the caller after any cart read.
// ItemCount sums quantities, not line count.
type CartTotal struct {
	Subtotal  float64 `json:"subtotal"`
	ItemCount int     `json:"itemCount"`
}

// CartItemPatch holds the fields a cart line update may change. Nil
// fields are left untouched; a quantity of zero or less removes the line.
type CartItemPatch struct {
	Quantity        *int
	Notes           *string
	SelectedOptions *[]OptionPick
}

// CartResult is the structured outcome of a cart mutation with a
// business-rule rejection path (merchant mismatch, unknown item).
type CartResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Cart    *Cart  `json:"cart,omitempty"`
}
