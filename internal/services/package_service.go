package services

import (
	"context"
	"net/http"

	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
	"github.com/AliHaider728/royal-palm-map-clone/internal/repositories"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

type PackageService struct {
	repo repositories.PackageRepository
}

func NewPackageService(repo repositories.PackageRepository) *PackageService {
	return &PackageService{repo: repo}
}

// ListActive returns active subscription packages in display order.
func (s *PackageService) ListActive(ctx context.Context) ([]*models.SubscriptionPackage, error) {
	out, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to list packages", err)
	}
	if out == nil {
		out = []*models.SubscriptionPackage{}
	}
	return out, nil
}
