package models

import "fmt"

type PlotStatus string

const (
	PlotAvailable  PlotStatus = "available"
	PlotSold       PlotStatus = "sold"
	PlotReserved   PlotStatus = "reserved"
	PlotCommercial PlotStatus = "commercial"
)

func ParsePlotStatus(s string) (PlotStatus, error) {
	switch PlotStatus(s) {
	case PlotAvailable, PlotSold, PlotReserved, PlotCommercial:
		return PlotStatus(s), nil
	default:
		return "", fmt.Errorf("invalid plot status: %q", s)
	}
}

// Plot is one entry of the society's static land inventory.
type Plot struct {
	ID         string     `json:"id"`
	PlotNumber string     `json:"plot_number"`
	Block      string     `json:"block"`
	Size       string     `json:"size"`
	Price      string     `json:"price"`
	Status     PlotStatus `json:"status"`
	Lat        float64    `json:"lat"`
	Lng        float64    `json:"lng"`
}

type LandmarkType string

const (
	LandmarkPark       LandmarkType = "park"
	LandmarkSchool     LandmarkType = "school"
	LandmarkMosque     LandmarkType = "mosque"
	LandmarkCommercial LandmarkType = "commercial"
)

// Landmark is a fixed, always-visible map label.
type Landmark struct {
	Name string       `json:"name"`
	Lat  float64      `json:"lat"`
	Lng  float64      `json:"lng"`
	Type LandmarkType `json:"type"`
}
