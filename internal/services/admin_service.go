package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"golang.org/x/sync/errgroup"

	"github.com/AliHaider728/royal-palm-map-clone/internal/dtos"
	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
	"github.com/AliHaider728/royal-palm-map-clone/internal/repositories"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

type AdminService struct {
	profiles  repositories.ProfileRepository
	roles     repositories.RoleRepository
	props     repositories.PropertyRepository
	inquiries repositories.InquiryRepository
	views     repositories.PropertyViewRepository
}

func NewAdminService(
	profiles repositories.ProfileRepository,
	roles repositories.RoleRepository,
	props repositories.PropertyRepository,
	inquiries repositories.InquiryRepository,
	views repositories.PropertyViewRepository,
) *AdminService {
	return &AdminService{
		profiles:  profiles,
		roles:     roles,
		props:     props,
		inquiries: inquiries,
		views:     views,
	}
}

func (s *AdminService) ListDealers(ctx context.Context) ([]*models.Profile, error) {
	out, err := s.profiles.ListByRole(ctx, models.RoleDealer)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to list dealers", err)
	}
	return out, nil
}

func (s *AdminService) ListAllProperties(ctx context.Context) ([]*models.Property, error) {
	out, err := s.props.ListAll(ctx)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to list properties", err)
	}
	return out, nil
}

// Stats runs the four counts in parallel.
func (s *AdminService) Stats(ctx context.Context) (*dtos.AdminStatsResponse, error) {
	var out dtos.AdminStatsResponse
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Dealers, err = s.roles.CountByRole(gctx, models.RoleDealer)
		return
	})
	g.Go(func() (err error) {
		out.Properties, err = s.props.Count(gctx)
		return
	})
	g.Go(func() (err error) {
		out.Inquiries, err = s.inquiries.Count(gctx)
		return
	})
	g.Go(func() (err error) {
		out.Views, err = s.views.Count(gctx)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to compute stats", err)
	}
	return &out, nil
}

// SetDealerActive (de)activates a dealer profile. Deactivated dealers can
// neither log in nor manage listings.
func (s *AdminService) SetDealerActive(ctx context.Context, profileID uuid.UUID, active bool) (*models.Profile, error) {
	var updated *models.Profile
	err := s.profiles.UpdateWithRetry(ctx, profileID, func(p *models.Profile) error {
		p.IsActive = active
		updated = p
		return nil
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.NotFound("Dealer not found")
		}
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to update dealer", err)
	}
	utils.Logger.WithField("profile_id", profileID).Infof("Dealer active=%t", active)
	return updated, nil
}
