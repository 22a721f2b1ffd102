package mapview

import (
	"fmt"
	"math"

	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
	"github.com/AliHaider728/royal-palm-map-clone/internal/records"
)

const (
	crore = 10_000_000
	lac   = 100_000

	DefaultColor = "#2563eb"
)

var categoryColors = map[records.Category]string{
	records.CategoryAvailable:  "#22c55e",
	records.CategorySold:       "#ef4444",
	records.CategoryReserved:   "#f59e0b",
	records.CategoryCommercial: "#3b82f6",
	records.CategoryBuy:        "#22c55e",
	records.CategoryRent:       "#ea7a1d",
}

// CategoryColor never fails; unknown categories get DefaultColor.
func CategoryColor(c records.Category) string {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return DefaultColor
}

var landmarkColors = map[models.LandmarkType]string{
	models.LandmarkPark:       "#16a34a",
	models.LandmarkSchool:     "#dc2626",
	models.LandmarkMosque:     "#7c3aed",
	models.LandmarkCommercial: "#2563eb",
}

func LandmarkColor(t models.LandmarkType) string {
	if col, ok := landmarkColors[t]; ok {
		return col
	}
	return DefaultColor
}

// MarkerClass is the CSS class of the price chip; listings reuse the plot
// status palette (buy looks available, rent looks reserved).
func MarkerClass(c records.Category) string {
	switch c {
	case records.CategoryBuy:
		return "available"
	case records.CategoryRent:
		return "reserved"
	default:
		return string(c)
	}
}

// FormatListingPrice renders a PKR amount the way listings show it:
// rent per month in thousands, sales in crore or lac.
func FormatListingPrice(c records.Category, price float64) string {
	switch {
	case c == records.CategoryRent:
		return fmt.Sprintf("PKR %.0fK/mo", math.Round(price/1000))
	case price >= crore:
		return fmt.Sprintf("PKR %.1f Cr", round1(price/crore))
	default:
		return fmt.Sprintf("PKR %.1f Lac", round1(price/lac))
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

// MarkerLabel is the text on a record's marker chip.
func MarkerLabel(r records.LocationRecord) string {
	if r.Variant == records.VariantPlots {
		return fmt.Sprintf("%s | %s", r.ID, r.PriceText)
	}
	return FormatListingPrice(r.Category, r.Price)
}

// CategoryLabel is the human label used in legends and popups.
func CategoryLabel(c records.Category) string {
	switch c {
	case records.CategoryAvailable:
		return "Available"
	case records.CategorySold:
		return "Sold"
	case records.CategoryReserved:
		return "Reserved"
	case records.CategoryCommercial:
		return "Commercial"
	case records.CategoryBuy:
		return "For Sale"
	case records.CategoryRent:
		return "For Rent"
	default:
		return string(c)
	}
}
