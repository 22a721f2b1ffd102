package dtos

import "time"

type CreatePropertyRequest struct {
	Title        string   `json:"title" validate:"required,max=200"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,max=5000"`
	Price        float64  `json:"price" validate:"required,gt=0"`
	ListingType  string   `json:"listing_type" validate:"required,oneof=buy rent"`
	PropertyType string   `json:"property_type" validate:"required,max=60"`
	Location     *string  `json:"location,omitempty" validate:"omitempty,max=255"`
	City         *string  `json:"city,omitempty" validate:"omitempty,max=100"`
	Area         *string  `json:"area,omitempty" validate:"omitempty,max=60"`
	Latitude     *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Bedrooms     int      `json:"bedrooms" validate:"min=0,max=50"`
	Bathrooms    int      `json:"bathrooms" validate:"min=0,max=50"`
	Images       []string `json:"images,omitempty" validate:"omitempty,max=20,dive,max=1024"`
}

// UpdatePropertyRequest is a partial update; nil fields are left alone.
type UpdatePropertyRequest struct {
	Title        *string  `json:"title,omitempty" validate:"omitempty,max=200"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,max=5000"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	ListingType  *string  `json:"listing_type,omitempty" validate:"omitempty,oneof=buy rent"`
	PropertyType *string  `json:"property_type,omitempty" validate:"omitempty,max=60"`
	Location     *string  `json:"location,omitempty" validate:"omitempty,max=255"`
	City         *string  `json:"city,omitempty" validate:"omitempty,max=100"`
	Area         *string  `json:"area,omitempty" validate:"omitempty,max=60"`
	Latitude     *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Bedrooms     *int     `json:"bedrooms,omitempty" validate:"omitempty,min=0,max=50"`
	Bathrooms    *int     `json:"bathrooms,omitempty" validate:"omitempty,min=0,max=50"`
	IsActive     *bool    `json:"is_active,omitempty"`

	// Only honoured for superadmins.
	IsFeatured *bool `json:"is_featured,omitempty"`
}

type ImageUploadRequest struct {
	FileName    string `json:"file_name" validate:"required,max=200"`
	ContentType string `json:"content_type" validate:"required,oneof=image/jpeg image/png image/webp"`
}

type ImageUploadResponse struct {
	UploadURL string    `json:"upload_url"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expires_at"`
}
