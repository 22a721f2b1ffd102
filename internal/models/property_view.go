package models

import (
	"time"

	"github.com/google/uuid"
)

type PropertyView struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	ViewedAt   time.Time `json:"viewed_at"`
}
