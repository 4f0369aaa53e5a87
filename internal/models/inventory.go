package models

import (
	"time"

	"github.com/google/uuid"
)

// Storage locations for inventory items.
const (
	LocationPantry  = "pantry"
	LocationFridge  = "fridge"
	LocationFreezer = "freezer"
)

// ValidLocation reports whether loc is one of the known storage locations.
func ValidLocation(loc string) bool {
	return loc == LocationPantry || loc == LocationFridge || loc == LocationFreezer
}

// InventoryItem is a single ingredient a user has on hand.
type InventoryItem struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Quantity   float64    `json:"quantity"`
	Unit       string     `json:"unit"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	Location   string     `json:"location"`
	Category   string     `json:"category,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	AddedAt    time.Time  `json:"added_at"`
}

// ExpiringItem is an inventory item that expires within the warning window.
type ExpiringItem struct {
	Item            InventoryItem `json:"item"`
	DaysUntilExpiry int           `json:"days_until_expiry"`
}
