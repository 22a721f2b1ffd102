package services

import (
	"context"
	"strings"
	"time"

	"googlemaps.github.io/maps"

	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

// Geocoder resolves a free-text address to coordinates. ok is false when
// nothing matched.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (lat, lng float64, ok bool, err error)
}

type gmapsGeocoder struct {
	client *maps.Client
	region string
}

// NewGeocoder returns nil when no API key is configured; callers treat a nil
// Geocoder as "geocoding disabled".
func NewGeocoder(apiKey string) Geocoder {
	if apiKey == "" {
		utils.Logger.Warn("[Geocoder] GMAPS_API_KEY is empty; listings without coordinates stay off the map")
		return nil
	}
	c, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		utils.Logger.WithError(err).Error("[Geocoder] Failed to create Google Maps client")
		return nil
	}
	return &gmapsGeocoder{client: c, region: "pk"}
}

func (g *gmapsGeocoder) Geocode(ctx context.Context, address string) (float64, float64, bool, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return 0, 0, false, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address, Region: g.region})
	if err != nil {
		return 0, 0, false, err
	}
	if len(res) == 0 {
		return 0, 0, false, nil
	}
	loc := res[0].Geometry.Location
	return loc.Lat, loc.Lng, true, nil
}

// geocodeQuery joins the address parts a listing carries.
func geocodeQuery(location, city *string) string {
	parts := []string{}
	if v := utils.Val(location); v != "" {
		parts = append(parts, v)
	}
	if v := utils.Val(city); v != "" {
		parts = append(parts, v)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(append(parts, "Pakistan"), ", ")
}
