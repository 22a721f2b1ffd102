package mapview

import "github.com/AliHaider728/royal-palm-map-clone/internal/inventory"

const (
	OSMTileURL     = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	OSMAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a>`
)

// Config fixes where and how the map opens.
type Config struct {
	Center              LatLng `json:"center"`
	Zoom                int    `json:"zoom"`
	MaxZoom             int    `json:"max_zoom"`
	TileURL             string `json:"tile_url"`
	Attribution         string `json:"attribution"`
	ZoomControlPosition string `json:"zoom_control_position"`
}

func DefaultConfig() Config {
	return Config{
		Center:              LatLng{Lat: inventory.CenterLat, Lng: inventory.CenterLng},
		Zoom:                inventory.Zoom,
		MaxZoom:             19,
		TileURL:             OSMTileURL,
		Attribution:         OSMAttribution,
		ZoomControlPosition: "bottomright",
	}
}
