package dtos

import (
	"time"

	"github.com/google/uuid"

	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
)

type RegisterRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8,max=72"`
	FullName    string  `json:"full_name" validate:"required,max=120"`
	CompanyName *string `json:"company_name,omitempty" validate:"omitempty,max=120"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CurrentUserResponse is what the frontend needs to decide which
// dashboards and affordances to show.
type CurrentUserResponse struct {
	UserID       uuid.UUID       `json:"user_id"`
	Email        string          `json:"email"`
	Profile      *models.Profile `json:"profile,omitempty"`
	Roles        []string        `json:"roles"`
	IsDealer     bool            `json:"is_dealer"`
	IsSuperadmin bool            `json:"is_superadmin"`
}

type AuthResponse struct {
	AccessToken string              `json:"access_token"`
	ExpiresAt   time.Time           `json:"expires_at"`
	User        CurrentUserResponse `json:"user"`
}
