package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/AliHaider728/royal-palm-map-clone/internal/dtos"
	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
	"github.com/AliHaider728/royal-palm-map-clone/internal/repositories"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

// Actor is the authenticated caller of a service method.
type Actor struct {
	UserID uuid.UUID
	Roles  models.RoleSet
}

type PropertyService struct {
	repo     repositories.PropertyRepository
	profiles repositories.ProfileRepository
	geocoder Geocoder
}

// NewPropertyService accepts a nil geocoder.
func NewPropertyService(
	repo repositories.PropertyRepository,
	profiles repositories.ProfileRepository,
	geocoder Geocoder,
) *PropertyService {
	return &PropertyService{repo: repo, profiles: profiles, geocoder: geocoder}
}

// ListProperties returns active listings, newest first. A Near filter is
// applied here with great-circle distance; listings without coordinates
// never match it.
func (s *PropertyService) ListProperties(ctx context.Context, f repositories.PropertyFilter) ([]*models.Property, error) {
	props, err := s.repo.ListActive(ctx, f)
	if err != nil {
		return nil, err
	}
	if f.Near == nil {
		return props, nil
	}
	out := make([]*models.Property, 0, len(props))
	for _, p := range props {
		if !p.HasCoordinates() {
			continue
		}
		if utils.DistanceKm(f.Near.Lat, f.Near.Lng, *p.Latitude, *p.Longitude) <= f.Near.RadiusKm {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *PropertyService) List(ctx context.Context, f repositories.PropertyFilter) ([]*models.Property, error) {
	props, err := s.ListProperties(ctx, f)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to list properties", err)
	}
	return props, nil
}

// Get returns a listing. Inactive listings are only visible to their
// dealer and superadmins.
func (s *PropertyService) Get(ctx context.Context, actor *Actor, id uuid.UUID) (*models.Property, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to load property", err)
	}
	if p == nil {
		return nil, utils.NotFound("Property not found")
	}
	if p.IsActive {
		return p, nil
	}
	if actor != nil {
		if _, err := s.authorizeEdit(ctx, *actor, id); err == nil {
			return p, nil
		}
	}
	return nil, utils.NotFound("Property not found")
}

func (s *PropertyService) ListByDealer(ctx context.Context, actor Actor) ([]*models.Property, error) {
	dealer, err := s.dealerProfile(ctx, actor)
	if err != nil {
		return nil, err
	}
	props, err := s.repo.ListByDealer(ctx, dealer.ID)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to list properties", err)
	}
	return props, nil
}

func (s *PropertyService) ListAll(ctx context.Context) ([]*models.Property, error) {
	props, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to list properties", err)
	}
	return props, nil
}

func (s *PropertyService) Create(ctx context.Context, actor Actor, req dtos.CreatePropertyRequest) (*models.Property, error) {
	dealer, err := s.dealerProfile(ctx, actor)
	if err != nil {
		return nil, err
	}
	lt, err := models.ParseListingType(req.ListingType)
	if err != nil {
		return nil, utils.BadRequest("Invalid listing type", err)
	}

	p := &models.Property{
		ID:           uuid.New(),
		DealerID:     dealer.ID,
		Title:        strings.TrimSpace(req.Title),
		Description:  utils.NilIfBlank(req.Description),
		Price:        req.Price,
		ListingType:  lt,
		PropertyType: req.PropertyType,
		Location:     utils.NilIfBlank(req.Location),
		City:         utils.NilIfBlank(req.City),
		Area:         utils.NilIfBlank(req.Area),
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		Images:       req.Images,
		IsActive:     true,
	}
	s.fillCoordinates(ctx, p)

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to create property", err)
	}
	utils.Logger.WithField("property_id", p.ID).Info("Property created")
	return p, nil
}

func (s *PropertyService) Update(ctx context.Context, actor Actor, id uuid.UUID, req dtos.UpdatePropertyRequest) (*models.Property, error) {
	if _, err := s.authorizeEdit(ctx, actor, id); err != nil {
		return nil, err
	}

	var updated *models.Property
	err := s.repo.UpdateWithRetry(ctx, id, func(p *models.Property) error {
		if req.ListingType != nil {
			lt, err := models.ParseListingType(*req.ListingType)
			if err != nil {
				return utils.BadRequest("Invalid listing type", err)
			}
			p.ListingType = lt
		}
		addressChanged := req.Location != nil || req.City != nil
		if req.Title != nil {
			p.Title = strings.TrimSpace(*req.Title)
		}
		if req.Description != nil {
			p.Description = utils.NilIfBlank(req.Description)
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.PropertyType != nil {
			p.PropertyType = *req.PropertyType
		}
		if req.Location != nil {
			p.Location = utils.NilIfBlank(req.Location)
		}
		if req.City != nil {
			p.City = utils.NilIfBlank(req.City)
		}
		if req.Area != nil {
			p.Area = utils.NilIfBlank(req.Area)
		}
		if req.Latitude != nil {
			p.Latitude = req.Latitude
		}
		if req.Longitude != nil {
			p.Longitude = req.Longitude
		}
		if req.Bedrooms != nil {
			p.Bedrooms = *req.Bedrooms
		}
		if req.Bathrooms != nil {
			p.Bathrooms = *req.Bathrooms
		}
		if req.IsActive != nil {
			p.IsActive = *req.IsActive
		}
		if req.IsFeatured != nil && actor.Roles.IsSuperadmin() {
			p.IsFeatured = *req.IsFeatured
		}
		if addressChanged && req.Latitude == nil && req.Longitude == nil {
			// the old position stays until a new one is found
			if lat, lng, ok := s.geocode(ctx, p); ok {
				p.Latitude, p.Longitude = &lat, &lng
			}
		}
		s.fillCoordinates(ctx, p)
		updated = p
		return nil
	})
	if err != nil {
		var appErr *utils.AppError
		switch {
		case errors.As(err, &appErr):
			return nil, appErr
		case errors.Is(err, pgx.ErrNoRows):
			return nil, utils.NotFound("Property not found")
		case errors.Is(err, utils.ErrRowVersionConflict):
			return nil, utils.NewAppError(http.StatusConflict, utils.ErrCodeRowVersionConflict, "Property was modified concurrently", err)
		default:
			return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to update property", err)
		}
	}
	return updated, nil
}

func (s *PropertyService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if _, err := s.authorizeEdit(ctx, actor, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to delete property", err)
	}
	utils.Logger.WithField("property_id", id).Info("Property deleted")
	return nil
}

// dealerProfile resolves the caller's active dealer profile.
func (s *PropertyService) dealerProfile(ctx context.Context, actor Actor) (*models.Profile, error) {
	if !actor.Roles.IsDealer() {
		return nil, utils.Forbidden("Dealer role required")
	}
	prof, err := s.profiles.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to load profile", err)
	}
	if prof == nil {
		return nil, utils.Forbidden("Dealer profile not found")
	}
	if !prof.IsActive {
		return nil, utils.NewAppError(http.StatusForbidden, utils.ErrCodeLockedAccount, "Dealer account is deactivated", utils.ErrAccountInactive)
	}
	return prof, nil
}

// authorizeEdit allows the owning dealer and superadmins.
func (s *PropertyService) authorizeEdit(ctx context.Context, actor Actor, id uuid.UUID) (*models.Property, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewAppError(http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to load property", err)
	}
	if p == nil {
		return nil, utils.NotFound("Property not found")
	}
	if actor.Roles.IsSuperadmin() {
		return p, nil
	}
	dealer, err := s.dealerProfile(ctx, actor)
	if err != nil {
		return nil, err
	}
	if dealer.ID != p.DealerID {
		return nil, utils.Forbidden("Not your listing")
	}
	return p, nil
}

// fillCoordinates geocodes listings that arrive without a position.
// Failures leave the listing off the map rather than failing the write.
func (s *PropertyService) fillCoordinates(ctx context.Context, p *models.Property) {
	if p.HasCoordinates() {
		return
	}
	if lat, lng, ok := s.geocode(ctx, p); ok {
		p.Latitude, p.Longitude = &lat, &lng
	}
}

// geocode looks up the listing's address. ok is false when no geocoder is
// configured, the lookup fails or nothing matches.
func (s *PropertyService) geocode(ctx context.Context, p *models.Property) (lat, lng float64, ok bool) {
	if s.geocoder == nil {
		return 0, 0, false
	}
	q := geocodeQuery(p.Location, p.City)
	if q == "" {
		return 0, 0, false
	}
	lat, lng, ok, err := s.geocoder.Geocode(ctx, q)
	if err != nil {
		utils.Logger.WithError(err).Warnf("Geocoding failed for property %s", p.ID)
		return 0, 0, false
	}
	if !ok {
		utils.Logger.Debugf("No geocoding result for property %s", p.ID)
	}
	return lat, lng, ok
}
