package routes

const (
	// Health
	Health = "/health"

	// Map
	Map        = "/api/v1/map"
	MapSidebar = "/api/v1/map/sidebar"
	MapSelect  = "/api/v1/map/select"

	// Auth
	AuthRegister = "/api/v1/auth/register"
	AuthLogin    = "/api/v1/auth/login"
	AuthLogout   = "/api/v1/auth/logout"
	AuthMe       = "/api/v1/auth/me"

	// Listings
	Properties     = "/api/v1/properties"
	Property       = "/api/v1/properties/{id}"
	PropertyImages = "/api/v1/properties/{id}/images"
	PropertyViews  = "/api/v1/properties/{id}/views"
	Inquiries      = "/api/v1/inquiries"
	Packages       = "/api/v1/packages"

	// Dealer dashboard
	DealerProperties = "/api/v1/dealer/properties"
	DealerInquiries  = "/api/v1/dealer/inquiries"
	DealerStats      = "/api/v1/dealer/stats"

	// Superadmin
	AdminDealers      = "/api/v1/admin/dealers"
	AdminDealerStatus = "/api/v1/admin/dealers/{id}/status"
	AdminProperties   = "/api/v1/admin/properties"
	AdminStats        = "/api/v1/admin/stats"
)
