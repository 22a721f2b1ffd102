package services

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/AliHaider728/royal-palm-map-clone/internal/dtos"
	"github.com/AliHaider728/royal-palm-map-clone/internal/records"
	"github.com/AliHaider728/royal-palm-map-clone/internal/repositories"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

type AnalyticsService struct {
	views repositories.PropertyViewRepository
	props *PropertyService
}

func NewAnalyticsService(views repositories.PropertyViewRepository, props *PropertyService) *AnalyticsService {
	return &AnalyticsService{views: views, props: props}
}

// LogView appends one row to the view log.
func (s *AnalyticsService) LogView(ctx context.Context, propertyID uuid.UUID) error {
	if err := s.views.Create(ctx, propertyID); err != nil {
		return utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to log view", err)
	}
	return nil
}

// RecordViewed is the selection hook. Static plots have no view log, so
// only listings are recorded.
func (s *AnalyticsService) RecordViewed(ctx context.Context, rec records.LocationRecord) error {
	if rec.Variant != records.VariantProperties {
		return nil
	}
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return err
	}
	return s.views.Create(ctx, id)
}

// DealerStats totals the caller's listings, views and inquiries.
func (s *AnalyticsService) DealerStats(ctx context.Context, actor Actor) (*dtos.DealerStatsResponse, error) {
	props, err := s.props.ListByDealer(ctx, actor)
	if err != nil {
		return nil, err
	}
	stats := &dtos.DealerStatsResponse{TotalProperties: len(props)}
	for _, p := range props {
		if p.IsActive {
			stats.ActiveProperties++
		}
		stats.TotalViews += p.ViewsCount
		stats.TotalInquiries += p.InquiriesCount
	}
	return stats, nil
}

// RollupViews folds the view log into properties.views_count. Run from
// cron.
func (s *AnalyticsService) RollupViews(ctx context.Context) (int64, error) {
	n, err := s.props.repo.RollupViews(ctx)
	if err != nil {
		return 0, err
	}
	utils.Logger.Infof("View rollup updated %d properties", n)
	return n, nil
}
