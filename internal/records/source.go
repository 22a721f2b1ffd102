package records

import (
	"context"

	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
	"github.com/AliHaider728/royal-palm-map-clone/internal/repositories"
)

// Source produces the record collection the map renders.
type Source interface {
	ListRecords(ctx context.Context, f repositories.PropertyFilter) ([]LocationRecord, error)
}

// StaticSource serves the compiled-in plot inventory. Filtering happens
// client-side, so the filters are ignored.
type StaticSource struct {
	plots []models.Plot
}

func NewStaticSource(plots []models.Plot) *StaticSource {
	return &StaticSource{plots: plots}
}

func (s *StaticSource) ListRecords(_ context.Context, _ repositories.PropertyFilter) ([]LocationRecord, error) {
	out := make([]LocationRecord, 0, len(s.plots))
	for _, p := range s.plots {
		out = append(out, FromPlot(p))
	}
	return out, nil
}

// PropertyLister is satisfied by the property service.
type PropertyLister interface {
	ListProperties(ctx context.Context, f repositories.PropertyFilter) ([]*models.Property, error)
}

// PropertySource fetches active listings from the database.
type PropertySource struct {
	lister PropertyLister
}

func NewPropertySource(l PropertyLister) *PropertySource {
	return &PropertySource{lister: l}
}

func (s *PropertySource) ListRecords(ctx context.Context, f repositories.PropertyFilter) ([]LocationRecord, error) {
	props, err := s.lister.ListProperties(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]LocationRecord, 0, len(props))
	for _, p := range props {
		out = append(out, FromProperty(p))
	}
	return out, nil
}
