package model

import "github.com/google/uuid"

// DeliveryAddress is a saved delivery destination owned by one user.
// At most one address per user carries IsDefault.
type DeliveryAddress struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"userId"`
	Label     string    `json:"label"` // "Home", "Work"
	Street    string    `json:"street"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zipCode"`
	Notes     string    `json:"notes,omitempty"`
	IsDefault bool      `json:"isDefault"`
}
