package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ListingType string

const (
	ListingBuy  ListingType = "buy"
	ListingRent ListingType = "rent"
)

func ParseListingType(s string) (ListingType, error) {
	switch ListingType(s) {
	case ListingBuy, ListingRent:
		return ListingType(s), nil
	default:
		return "", fmt.Errorf("invalid listing type: %q", s)
	}
}

// Property is a dealer-submitted listing.
type Property struct {
	Versioned

	ID             uuid.UUID      `json:"id"`
	DealerID       uuid.UUID      `json:"dealer_id"`
	Title          string         `json:"title"`
	Description    *string        `json:"description,omitempty"`
	Price          float64        `json:"price"`
	ListingType    ListingType    `json:"listing_type"`
	PropertyType   string         `json:"property_type"`
	Location       *string        `json:"location,omitempty"`
	City           *string        `json:"city,omitempty"`
	Area           *string        `json:"area,omitempty"`
	Latitude       *float64       `json:"latitude,omitempty"`
	Longitude      *float64       `json:"longitude,omitempty"`
	Bedrooms       int            `json:"bedrooms"`
	Bathrooms      int            `json:"bathrooms"`
	Images         []string       `json:"images"`
	IsActive       bool           `json:"is_active"`
	IsFeatured     bool           `json:"is_featured"`
	ViewsCount     int            `json:"views_count"`
	InquiriesCount int            `json:"inquiries_count"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	Dealer         *DealerSummary `json:"profiles,omitempty"`
}

func (p *Property) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}
