package model

import "time"

// Merchant represents a restaurant or shop listed in the catalogue.
type Merchant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Cuisine     string `json:"cuisine,omitempty"`

	OpeningTime string `json:"openingTime"` // "09:00"
	ClosingTime string `json:"closingTime"` // "22:00"

	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`

	DeliveryFee      float64 `json:"deliveryFee"`
	MinOrderAmount   float64 `json:"minOrderAmount"`
	DeliveryMinutes  int     `json:"deliveryMinutes"`
	SupportsDelivery bool    `json:"supportsDelivery"`
	SupportsPickup   bool    `json:"supportsPickup"`

	IsActive  bool      `json:"isActive"`
	IsOpen    bool      `json:"isOpen"`
	CreatedAt time.Time `json:"createdAt"`
}

// MerchantPatch holds the fields an update may change. Nil fields are
// left untouched.
type MerchantPatch struct {
	Name             *string
	Description      *string
	Category         *string
	OpeningTime      *string
	ClosingTime      *string
	Rating           *float64
	ReviewCount      *int
	DeliveryFee      *float64
	MinOrderAmount   *float64
	DeliveryMinutes  *int
	SupportsDelivery *bool
	SupportsPickup   *bool
	IsActive         *bool
	IsOpen           *bool
}

// MerchantFilter describes a catalogue query over merchants. Zero values
// mean "no constraint" for every field.
type MerchantFilter struct {
	Category  string
	OpenOnly  bool
	MinRating float64
	Delivery  bool // only merchants that support delivery
	Search    string
}
