package dtos

type DealerStatsResponse struct {
	TotalProperties  int `json:"total_properties"`
	ActiveProperties int `json:"active_properties"`
	TotalViews       int `json:"total_views"`
	TotalInquiries   int `json:"total_inquiries"`
}

type AdminStatsResponse struct {
	Dealers    int `json:"dealers"`
	Properties int `json:"properties"`
	Inquiries  int `json:"inquiries"`
	Views      int `json:"views"`
}

type SetDealerStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}
