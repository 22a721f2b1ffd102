package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the public face of a user; dealers are profiles holding the
// dealer role.
type Profile struct {
	Versioned

	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Email       string    `json:"email"`
	CompanyName *string   `json:"company_name,omitempty"`
	FullName    *string   `json:"full_name,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	LogoURL     *string   `json:"logo_url,omitempty"`
	Bio         *string   `json:"bio,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DisplayName prefers the company name, then the person's name.
func (p *Profile) DisplayName() string {
	if p.CompanyName != nil && *p.CompanyName != "" {
		return *p.CompanyName
	}
	if p.FullName != nil {
		return *p.FullName
	}
	return ""
}

// DealerSummary is the slice of a dealer profile joined onto listings.
type DealerSummary struct {
	CompanyName *string `json:"company_name,omitempty"`
	FullName    *string `json:"full_name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
}
