package models

import (
	"time"

	"github.com/google/uuid"
)

type Inquiry struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	Name       string    `json:"name"`
	Email      *string   `json:"email,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	Message    *string   `json:"message,omitempty"`
	CreatedAt  time.Time `json:"created_at"`

	// Populated on dealer listings only.
	PropertyTitle    string  `json:"property_title,omitempty"`
	PropertyLocation *string `json:"property_location,omitempty"`
}
