package model

import "time"

// SelectionType controls how many choices an option group accepts.
type SelectionType string

const (
	SelectionSingle   SelectionType = "single"
	SelectionMultiple SelectionType = "multiple"
)

// Choice is one selectable entry inside an option group. PriceDelta may
// be negative.
type Choice struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	PriceDelta  float64 `json:"priceDelta"`
	IsAvailable bool    `json:"isAvailable"`
	IsDefault   bool    `json:"isDefault"`
}

// OptionGroup is a named set of priced choices attached to an item,
// e.g. size or add-ons.
type OptionGroup struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	SelectionType SelectionType `json:"selectionType"`
	Required      bool          `json:"required"`
	MaxSelect     int           `json:"maxSelect,omitempty"` // multiple only; 0 means unlimited
	Choices       []Choice      `json:"choices"`
}

// MerchantItem represents a single catalogue item owned by one merchant.
// UnitsSold and Revenue are lifetime sales counters; they only move
// forward, and only order creation moves them.
type MerchantItem struct {
	ID          string        `json:"id"`
	MerchantID  string        `json:"merchantId"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	Category    string        `json:"category"`
	IsAvailable bool          `json:"isAvailable"`
	IsFeatured  bool          `json:"isFeatured"`
	SortOrder   int           `json:"sortOrder"`
	Options     []OptionGroup `json:"options,omitempty"`
	UnitsSold   int           `json:"unitsSold"`
	Revenue     float64       `json:"revenue"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// ItemPatch holds the fields an item update (or bulk update) may change.
// Nil fields are left untouched. Sales counters are deliberately absent.
type ItemPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	IsAvailable *bool
	IsFeatured  *bool
	SortOrder   *int
	Options     *[]OptionGroup
}

// ItemSortKey selects the ordering of an item query.
type ItemSortKey string

const (
	ItemSortName      ItemSortKey = "name"
	ItemSortPrice     ItemSortKey = "price"
	ItemSortUnitsSold ItemSortKey = "unitsSold"
	ItemSortOrder     ItemSortKey = "sortOrder"
)

// ItemFilter describes a catalogue query over items. Zero values mean
// "no constraint".
type ItemFilter struct {
	MerchantID    string
	Category      string
	AvailableOnly bool
	FeaturedOnly  bool
	Search        string
	SortBy        ItemSortKey
	Descending    bool
}
