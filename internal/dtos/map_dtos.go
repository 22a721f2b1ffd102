package dtos

import (
	"github.com/AliHaider728/royal-palm-map-clone/internal/contact"
	"github.com/AliHaider728/royal-palm-map-clone/internal/mapview"
	"github.com/AliHaider728/royal-palm-map-clone/internal/records"
)

type MapResponse struct {
	Variant records.Variant `json:"variant"`
	Query   string          `json:"query"`
	// Category echoes the applied filter; nil means none.
	Category *string `json:"category"`
	mapview.Snapshot
}

type SelectRequest struct {
	Variant string `json:"variant" validate:"omitempty,oneof=plots properties"`
	ID      string `json:"id" validate:"required,max=64"`
}

type SelectResponse struct {
	Record    records.LocationRecord `json:"record"`
	Contact   contact.Links          `json:"contact"`
	PopupHTML string                 `json:"popup_html"`
}

type LegendEntry struct {
	Category records.Category `json:"category"`
	Label    string           `json:"label"`
	Color    string           `json:"color"`
}

type LandmarkLegendEntry struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color"`
}

type SidebarResponse struct {
	Title      string                `json:"title"`
	Legend     []LegendEntry         `json:"legend"`
	Blocks     []string              `json:"blocks"`
	Landmarks  []LandmarkLegendEntry `json:"landmarks"`
	Disclaimer string                `json:"disclaimer"`
}
