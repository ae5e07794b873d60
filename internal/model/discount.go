package model

import "time"

// DiscountType is the kind of promotional rule.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Discount is a promotional rule applied against an order subtotal.
// UsageCount only increases, never resets, and moves exactly once per
// successful application.
type Discount struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Code  string       `json:"code,omitempty"`
	Type  DiscountType `json:"type"`
	Value float64      `json:"value"` // percent for percentage, amount for fixed

	MinOrderAmount float64    `json:"minOrderAmount,omitempty"`
	MaxDiscount    float64    `json:"maxDiscount,omitempty"` // percentage type only
	StartDate      *time.Time `json:"startDate,omitempty"`
	EndDate        *time.Time `json:"endDate,omitempty"`
	UsageLimit     int        `json:"usageLimit,omitempty"` // 0 means unlimited
	UsageCount     int        `json:"usageCount"`

	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// DiscountResult is the validation outcome of applying a code. Every
// failure path is a structured result, never an error.
type DiscountResult struct {
	Valid    bool    `json:"valid"`
	Discount float64 `json:"discount"`
	Message  string  `json:"message"`
}
