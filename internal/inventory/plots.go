// Package inventory holds the compiled-in land inventory of Royal Palm City,
// Gujranwala: plot blocks A-H and the fixed landmarks drawn on every map.
package inventory

import (
	"fmt"

	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
)

const (
	CenterLat = 32.1617
	CenterLng = 74.1868
	Zoom      = 15

	// offsetStep converts the survey grid units into degrees.
	offsetStep = 0.001
)

type plotSpec struct {
	num        string
	size       string
	price      string
	dLat, dLng float64
}

type blockSpec struct {
	block     string
	baseLat   float64
	baseLng   float64
	status    models.PlotStatus
	plotSpecs []plotSpec
}

var blocks = []blockSpec{
	{"A", CenterLat - 0.004, CenterLng - 0.002, models.PlotAvailable, []plotSpec{
		{"1", "5 marla", "34.50 Lakh", 0, 0},
		{"2", "5 marla", "37.50 Lakh", 0.3, 0.2},
		{"3", "10 marla", "1.00 Crore", 0.6, 0.0},
		{"4", "5 marla", "38.00 Lakh", 0.1, 0.5},
		{"5", "10 marla", "1.15 Crore", 0.4, 0.6},
		{"6", "6 marla", "85.00 Lakh", 0.7, 0.3},
		{"7", "10 marla", "58.00 Lakh", 0.9, 0.1},
	}},
	{"B", CenterLat - 0.001, CenterLng + 0.001, models.PlotAvailable, []plotSpec{
		{"1", "1 kanal", "2.80 Crore", 0, 0},
		{"2", "1 kanal", "3.00 Crore", 0.3, 0.1},
		{"3", "1 kanal", "2.75 Crore", 0.5, -0.1},
		{"4", "10 marla", "1.20 Crore", 0.1, 0.4},
		{"5", "10 marla", "1.25 Crore", 0.4, 0.5},
	}},
	{"C", CenterLat + 0.002, CenterLng - 0.003, models.PlotReserved, []plotSpec{
		{"1", "5 marla", "59.00 Lakh", 0, 0},
		{"2", "5 marla", "65.00 Lakh", 0.2, 0.3},
		{"3", "10 marla", "1.15 Crore", 0.5, 0.1},
		{"4", "5 marla", "72.00 Lakh", 0.3, 0.6},
		{"5", "10 marla", "1.20 Crore", 0.7, 0.4},
		{"6", "10 marla", "1.15 Crore", 0.9, 0.2},
	}},
	{"D", CenterLat + 0.001, CenterLng + 0.003, models.PlotSold, []plotSpec{
		{"1", "5 marla", "50.00 Lakh", 0, 0},
		{"2", "5 marla", "45.50 Lakh", 0.2, 0.2},
		{"3", "10 marla", "1.22 Crore", 0.5, 0.0},
		{"4", "5 marla", "39.00 Lakh", 0.3, 0.5},
		{"5", "10 marla", "1.08 Crore", 0.7, 0.3},
	}},
	{"E", CenterLat + 0.004, CenterLng + 0.000, models.PlotAvailable, []plotSpec{
		{"1", "5 marla", "60.00 Lakh", 0, 0},
		{"2", "5 marla", "60.00 Lakh", 0.2, 0.3},
		{"3", "11 marla", "1.45 Crore", 0.4, 0.1},
		{"4", "5 marla", "49.00 Lakh", 0.1, 0.6},
		{"5", "11 marla", "1.25 Crore", 0.6, 0.5},
	}},
	{"F", CenterLat + 0.003, CenterLng - 0.005, models.PlotCommercial, []plotSpec{
		{"1", "10 marla", "1.30 Crore", 0, 0},
		{"2", "10 marla", "1.30 Crore", 0.3, 0.2},
		{"3", "10 marla", "1.00 Crore", 0.6, 0.0},
		{"4", "11 marla", "85.00 Lakh", 0.2, 0.5},
	}},
	{"G", CenterLat + 0.005, CenterLng + 0.004, models.PlotAvailable, []plotSpec{
		{"1", "5 marla", "40.00 Lakh", 0, 0},
		{"2", "10 marla", "85.00 Lakh", 0.3, 0.2},
		{"3", "5 marla", "34.00 Lakh", 0.6, 0.0},
		{"4", "5 marla", "37.50 Lakh", 0.1, 0.5},
	}},
	{"H", CenterLat + 0.006, CenterLng - 0.001, models.PlotReserved, []plotSpec{
		{"1", "20 marla", "2.50 Crore", 0, 0},
		{"2", "10 marla", "1.30 Crore", 0.4, 0.3},
	}},
}

// Plots returns a fresh copy of the full inventory in block order.
func Plots() []models.Plot {
	var out []models.Plot
	for _, b := range blocks {
		for _, p := range b.plotSpecs {
			out = append(out, models.Plot{
				ID:         fmt.Sprintf("%s-%s", b.block, p.num),
				PlotNumber: p.num,
				Block:      b.block,
				Size:       p.size,
				Price:      p.price,
				Status:     b.status,
				Lat:        b.baseLat + p.dLat*offsetStep,
				Lng:        b.baseLng + p.dLng*offsetStep,
			})
		}
	}
	return out
}

// Blocks lists block ids in display order.
func Blocks() []string {
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, b.block)
	}
	return out
}

func Landmarks() []models.Landmark {
	return []models.Landmark{
		{Name: "PARK", Lat: CenterLat - 0.001, Lng: CenterLng - 0.001, Type: models.LandmarkPark},
		{Name: "SCHOOL", Lat: CenterLat - 0.004, Lng: CenterLng - 0.004, Type: models.LandmarkSchool},
		{Name: "MOSQUE", Lat: CenterLat + 0.002, Lng: CenterLng + 0.002, Type: models.LandmarkMosque},
		{Name: "G PARK", Lat: CenterLat + 0.005, Lng: CenterLng + 0.003, Type: models.LandmarkPark},
		{Name: "COMMERCIAL", Lat: CenterLat + 0.003, Lng: CenterLng - 0.005, Type: models.LandmarkCommercial},
	}
}
