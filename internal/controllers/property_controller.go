package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/AliHaider728/royal-palm-map-clone/internal/dtos"
	"github.com/AliHaider728/royal-palm-map-clone/internal/repositories"
	"github.com/AliHaider728/royal-palm-map-clone/internal/services"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

const defaultRadiusKm = 5.0

type PropertyController struct {
	propertyService  *services.PropertyService
	mediaService     *services.MediaService
	analyticsService *services.AnalyticsService
	validate         *validator.Validate
}

func NewPropertyController(
	ps *services.PropertyService,
	ms *services.MediaService,
	as *services.AnalyticsService,
) *PropertyController {
	return &PropertyController{
		propertyService:  ps,
		mediaService:     ms,
		analyticsService: as,
		validate:         validator.New(),
	}
}

// ----------------------------------------------------------------
// GET /api/v1/properties
// ----------------------------------------------------------------
func (c *PropertyController) ListHandler(w http.ResponseWriter, r *http.Request) {
	f, err := parsePropertyFilter(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil, nil)
		return
	}
	props, err := c.propertyService.List(r.Context(), f)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, props)
}

// ----------------------------------------------------------------
// GET /api/v1/properties/{id}
// ----------------------------------------------------------------
func (c *PropertyController) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	p, err := c.propertyService.Get(r.Context(), optionalActor(r), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}

// ----------------------------------------------------------------
// POST /api/v1/properties
// ----------------------------------------------------------------
func (c *PropertyController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	var req dtos.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := c.validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	p, err := c.propertyService.Create(r.Context(), actor, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, p)
}

// ----------------------------------------------------------------
// PATCH /api/v1/properties/{id}
// ----------------------------------------------------------------
func (c *PropertyController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	var req dtos.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := c.validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	p, err := c.propertyService.Update(r.Context(), actor, id, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}

// ----------------------------------------------------------------
// DELETE /api/v1/properties/{id}
// ----------------------------------------------------------------
func (c *PropertyController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if err := c.propertyService.Delete(r.Context(), actor, id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ----------------------------------------------------------------
// POST /api/v1/properties/{id}/images
// ----------------------------------------------------------------
func (c *PropertyController) ImageUploadHandler(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	var req dtos.ImageUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := c.validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	resp, err := c.mediaService.PresignImageUpload(r.Context(), actor, id, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}

// ----------------------------------------------------------------
// POST /api/v1/properties/{id}/views
// ----------------------------------------------------------------
func (c *PropertyController) LogViewHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if err := c.analyticsService.LogView(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parsePropertyFilter reads listing_type, city, min_price, max_price,
// search (or q) and lat/lng/radius_km.
func parsePropertyFilter(r *http.Request) (repositories.PropertyFilter, error) {
	q := r.URL.Query()
	f := repositories.PropertyFilter{
		ListingType: strings.TrimSpace(q.Get("listing_type")),
		City:        strings.TrimSpace(q.Get("city")),
		Search:      strings.TrimSpace(q.Get("search")),
	}
	if f.Search == "" {
		f.Search = strings.TrimSpace(q.Get("q"))
	}
	if f.ListingType != "" && f.ListingType != "buy" && f.ListingType != "rent" {
		return f, fmt.Errorf("invalid listing_type %q", f.ListingType)
	}

	var err error
	if f.MinPrice, err = optionalFloat(q.Get("min_price"), "min_price"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = optionalFloat(q.Get("max_price"), "max_price"); err != nil {
		return f, err
	}

	latStr, lngStr := q.Get("lat"), q.Get("lng")
	if latStr == "" && lngStr == "" {
		return f, nil
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil || lat < -90 || lat > 90 {
		return f, fmt.Errorf("invalid lat")
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil || lng < -180 || lng > 180 {
		return f, fmt.Errorf("invalid lng")
	}
	radius := defaultRadiusKm
	if s := q.Get("radius_km"); s != "" {
		radius, err = strconv.ParseFloat(s, 64)
		if err != nil || radius <= 0 {
			return f, fmt.Errorf("invalid radius_km")
		}
	}
	f.Near = &repositories.GeoRadius{Lat: lat, Lng: lng, RadiusKm: radius}
	return f, nil
}

func optionalFloat(s, name string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return nil, fmt.Errorf("invalid %s", name)
	}
	return &v, nil
}
