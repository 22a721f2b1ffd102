package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a login identity. Display data lives on Profile.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
