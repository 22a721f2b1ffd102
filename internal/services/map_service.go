package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/AliHaider728/royal-palm-map-clone/internal/dtos"
	"github.com/AliHaider728/royal-palm-map-clone/internal/explorer"
	"github.com/AliHaider728/royal-palm-map-clone/internal/inventory"
	"github.com/AliHaider728/royal-palm-map-clone/internal/mapview"
	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
	"github.com/AliHaider728/royal-palm-map-clone/internal/records"
	"github.com/AliHaider728/royal-palm-map-clone/internal/repositories"
	"github.com/AliHaider728/royal-palm-map-clone/internal/selection"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

const mapDisclaimer = "Map data is for reference only. Verify with authorities. No liability assumed. Prices may vary."

// MapService renders the map server-side: each request mounts a fresh
// explorer, applies the filters and returns what the client should draw.
type MapService struct {
	sources   map[records.Variant]records.Source
	landmarks []models.Landmark
	cfg       mapview.Config
	notifier  selection.AnalyticsNotifier
}

// NewMapService accepts a nil notifier.
func NewMapService(
	plots records.Source,
	properties records.Source,
	landmarks []models.Landmark,
	cfg mapview.Config,
	notifier selection.AnalyticsNotifier,
) *MapService {
	return &MapService{
		sources: map[records.Variant]records.Source{
			records.VariantPlots:      plots,
			records.VariantProperties: properties,
		},
		landmarks: landmarks,
		cfg:       cfg,
		notifier:  notifier,
	}
}

func (s *MapService) Snapshot(ctx context.Context, variant records.Variant, query string, category *string) (*dtos.MapResponse, error) {
	src, err := s.source(variant)
	if err != nil {
		return nil, err
	}
	if err := validateCategory(variant, category); err != nil {
		return nil, err
	}

	ex, err := explorer.Mount(ctx, mapview.NewContainer("snapshot"), explorer.Options{
		Variant:   variant,
		Source:    src,
		Landmarks: s.landmarks,
		MapConfig: s.cfg,
	})
	if err != nil {
		return nil, utils.NewAppError(http.StatusBadGateway, utils.ErrCodeExternalServiceFailure, "Failed to load map records", err)
	}
	defer ex.Unmount()

	ex.SetCategory(category)
	ex.SetQuery(strings.TrimSpace(query))

	return &dtos.MapResponse{
		Variant:  variant,
		Query:    strings.TrimSpace(query),
		Category: category,
		Snapshot: ex.Snapshot(),
	}, nil
}

// Select resolves a record, builds its contact links and popup, and reports
// the view to analytics without waiting on it.
func (s *MapService) Select(ctx context.Context, variant records.Variant, id string) (*dtos.SelectResponse, error) {
	src, err := s.source(variant)
	if err != nil {
		return nil, err
	}
	recs, err := src.ListRecords(ctx, repositories.PropertyFilter{})
	if err != nil {
		return nil, utils.NewAppError(http.StatusBadGateway, utils.ErrCodeExternalServiceFailure, "Failed to load map records", err)
	}

	for _, rec := range recs {
		if rec.ID != id {
			continue
		}
		popup, err := mapview.RenderPopup(rec)
		if err != nil {
			return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to render popup", err)
		}
		selection.NewController(s.notifier).Select(rec)
		return &dtos.SelectResponse{
			Record:    rec,
			Contact:   mapview.ContactLinks(rec),
			PopupHTML: popup,
		}, nil
	}
	return nil, utils.NotFound("Record not found")
}

// Sidebar is the static legend, block list and disclaimer.
func (s *MapService) Sidebar() dtos.SidebarResponse {
	resp := dtos.SidebarResponse{
		Title:      utils.OrganizationName,
		Blocks:     inventory.Blocks(),
		Disclaimer: mapDisclaimer,
	}
	for _, c := range records.Categories() {
		resp.Legend = append(resp.Legend, dtos.LegendEntry{
			Category: c,
			Label:    mapview.CategoryLabel(c),
			Color:    mapview.CategoryColor(c),
		})
	}
	for _, lm := range s.landmarks {
		resp.Landmarks = append(resp.Landmarks, dtos.LandmarkLegendEntry{
			Name:  lm.Name,
			Type:  string(lm.Type),
			Color: mapview.LandmarkColor(lm.Type),
		})
	}
	return resp
}

func (s *MapService) source(variant records.Variant) (records.Source, error) {
	src, ok := s.sources[variant]
	if !ok || src == nil {
		return nil, utils.BadRequest("Unknown map variant", utils.ErrInvalidVariant)
	}
	return src, nil
}

// validateCategory checks the filter against the variant's filter key:
// a block id for plots, a listing type for properties.
func validateCategory(variant records.Variant, category *string) error {
	if category == nil {
		return nil
	}
	k := *category
	switch variant {
	case records.VariantPlots:
		for _, b := range inventory.Blocks() {
			if b == k {
				return nil
			}
		}
	case records.VariantProperties:
		if _, err := models.ParseListingType(k); err == nil {
			return nil
		}
	}
	return utils.BadRequest(
		fmt.Sprintf("Unknown category %q for %s", k, variant),
		utils.ErrInvalidCategory,
	)
}
