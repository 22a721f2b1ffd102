package dtos

type CreateInquiryRequest struct {
	PropertyID string  `json:"property_id" validate:"required,uuid"`
	Name       string  `json:"name" validate:"required,max=120"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Message    *string `json:"message,omitempty" validate:"omitempty,max=2000"`
}
