package dtos

// HealthCheckResponse also reports the compiled-in inventory sizes.
type HealthCheckResponse struct {
	Status    string `json:"status"`
	Plots     int    `json:"plots"`
	Landmarks int    `json:"landmarks"`
}
