// Package records generalizes the two kinds of things the map can show,
// static land plots and dealer property listings, into one LocationRecord.
package records

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
)

// Variant says which inventory a record came from.
type Variant string

const (
	VariantPlots      Variant = "plots"
	VariantProperties Variant = "properties"
)

func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantPlots, VariantProperties:
		return Variant(s), nil
	case "":
		return VariantPlots, nil
	default:
		return "", fmt.Errorf("invalid variant: %q", s)
	}
}

// Category is the closed set of statuses/listing types a record may carry.
type Category string

const (
	CategoryAvailable  Category = "available"
	CategorySold       Category = "sold"
	CategoryReserved   Category = "reserved"
	CategoryCommercial Category = "commercial"
	CategoryBuy        Category = "buy"
	CategoryRent       Category = "rent"
)

var allCategories = []Category{
	CategoryAvailable, CategorySold, CategoryReserved, CategoryCommercial,
	CategoryBuy, CategoryRent,
}

// Categories returns every known category in legend order.
func Categories() []Category {
	return append([]Category(nil), allCategories...)
}

func ParseCategory(s string) (Category, error) {
	for _, c := range allCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid category: %q", s)
}

// OwnerRef is a weak reference to the dealer behind a listing. It is used
// for display and contact links only.
type OwnerRef struct {
	CompanyName string `json:"company_name,omitempty"`
	FullName    string `json:"full_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

func (o *OwnerRef) DisplayName() string {
	if o == nil {
		return ""
	}
	if o.CompanyName != "" {
		return o.CompanyName
	}
	return o.FullName
}

// LocationRecord is the read-only unit the renderer works on.
type LocationRecord struct {
	ID       string   `json:"id"`
	Variant  Variant  `json:"variant"`
	Lat      *float64 `json:"lat"`
	Lng      *float64 `json:"lng"`
	Category Category `json:"category"`

	Title        string  `json:"title,omitempty"`
	PropertyType string  `json:"property_type,omitempty"`
	Location     string  `json:"location,omitempty"`
	Area         string  `json:"area,omitempty"`
	Size         string  `json:"size,omitempty"`
	Block        string  `json:"block,omitempty"`
	PlotNumber   string  `json:"plot_number,omitempty"`
	Price        float64 `json:"price,omitempty"`
	PriceText    string  `json:"price_text,omitempty"`
	Bedrooms     int     `json:"bedrooms,omitempty"`

	Owner *OwnerRef `json:"owner,omitempty"`
}

// HasCoordinates reports whether the record can be placed on the map.
func (r LocationRecord) HasCoordinates() bool {
	return r.Lat != nil && r.Lng != nil
}

// FilterKey is the field the category filter compares against: the block
// for plots, the listing type for properties.
func (r LocationRecord) FilterKey() string {
	if r.Variant == VariantPlots {
		return r.Block
	}
	return string(r.Category)
}

// SearchFields lists the fields eligible for substring search.
func (r LocationRecord) SearchFields() []string {
	if r.Variant == VariantPlots {
		return []string{r.ID, r.Block, r.PlotNumber, r.Size, r.PriceText, string(r.Category)}
	}
	return []string{r.Title, r.Location, r.Area}
}

// SearchableText is the lower-cased concatenation of SearchFields.
func (r LocationRecord) SearchableText() string {
	return strings.ToLower(strings.Join(r.SearchFields(), " "))
}

// Matches reports whether any single search field contains the query,
// case-insensitively. An empty query always matches.
func (r LocationRecord) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range r.SearchFields() {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// FromPlot lifts an inventory plot into a LocationRecord.
func FromPlot(p models.Plot) LocationRecord {
	lat, lng := p.Lat, p.Lng
	return LocationRecord{
		ID:         p.ID,
		Variant:    VariantPlots,
		Lat:        &lat,
		Lng:        &lng,
		Category:   Category(p.Status),
		Title:      fmt.Sprintf("Block %s Plot %s", p.Block, p.PlotNumber),
		Size:       p.Size,
		Block:      p.Block,
		PlotNumber: p.PlotNumber,
		PriceText:  p.Price,
	}
}

// FromProperty lifts a listing into a LocationRecord.
func FromProperty(p *models.Property) LocationRecord {
	rec := LocationRecord{
		ID:           p.ID.String(),
		Variant:      VariantProperties,
		Lat:          p.Latitude,
		Lng:          p.Longitude,
		Category:     Category(p.ListingType),
		Title:        p.Title,
		PropertyType: p.PropertyType,
		Price:        p.Price,
		PriceText:    strconv.FormatFloat(p.Price, 'f', -1, 64),
		Bedrooms:     p.Bedrooms,
	}
	if p.Location != nil {
		rec.Location = *p.Location
	}
	if p.Area != nil {
		rec.Area = *p.Area
	}
	if d := p.Dealer; d != nil {
		owner := &OwnerRef{}
		if d.CompanyName != nil {
			owner.CompanyName = *d.CompanyName
		}
		if d.FullName != nil {
			owner.FullName = *d.FullName
		}
		if d.Phone != nil {
			owner.Phone = *d.Phone
		}
		rec.Owner = owner
	}
	return rec
}
