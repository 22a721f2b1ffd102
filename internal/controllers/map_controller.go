package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/AliHaider728/royal-palm-map-clone/internal/dtos"
	"github.com/AliHaider728/royal-palm-map-clone/internal/records"
	"github.com/AliHaider728/royal-palm-map-clone/internal/services"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

type MapController struct {
	mapService *services.MapService
	validate   *validator.Validate
}

func NewMapController(ms *services.MapService) *MapController {
	return &MapController{mapService: ms, validate: validator.New()}
}

// ----------------------------------------------------------------
// GET /api/v1/map?variant=plots|properties&q=&category=
// ----------------------------------------------------------------
func (c *MapController) GetMapHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	variant, err := records.ParseVariant(q.Get("variant"))
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil, nil)
		return
	}

	var category *string
	if v := strings.TrimSpace(q.Get("category")); v != "" {
		category = &v
	}

	resp, err := c.mapService.Snapshot(r.Context(), variant, q.Get("q"), category)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ----------------------------------------------------------------
// GET /api/v1/map/sidebar
// ----------------------------------------------------------------
func (c *MapController) GetSidebarHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, c.mapService.Sidebar())
}

// ----------------------------------------------------------------
// POST /api/v1/map/select
// ----------------------------------------------------------------
func (c *MapController) SelectHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := c.validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}
	variant, err := records.ParseVariant(req.Variant)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, err.Error(), nil, nil)
		return
	}

	resp, err := c.mapService.Select(r.Context(), variant, req.ID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
