package utils

const (
	OrganizationName = "Royal Palm City"

	// FallbackDealerPhone is used for contact links when a listing has no
	// dealer phone on file.
	FallbackDealerPhone = "923001234567"

	// Added to the CORS allow-list unless cors_high_security is on.
	CORSLowSecurityAllowedOriginLocalhost = "http://localhost:5173"
)
