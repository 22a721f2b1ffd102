package models

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionPackage struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	DurationDays int       `json:"duration_days"`
	MaxListings  int       `json:"max_listings"`
	Features     []string  `json:"features"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}
