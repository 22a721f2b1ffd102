package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/AliHaider728/royal-palm-map-clone/internal/dtos"
	"github.com/AliHaider728/royal-palm-map-clone/internal/services"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

// AdminController is mounted behind RequireRole(superadmin).
type AdminController struct {
	adminService *services.AdminService
	validate     *validator.Validate
}

func NewAdminController(as *services.AdminService) *AdminController {
	return &AdminController{adminService: as, validate: validator.New()}
}

// GET /api/v1/admin/dealers
func (c *AdminController) ListDealersHandler(w http.ResponseWriter, r *http.Request) {
	dealers, err := c.adminService.ListDealers(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dealers)
}

// GET /api/v1/admin/properties
func (c *AdminController) ListPropertiesHandler(w http.ResponseWriter, r *http.Request) {
	props, err := c.adminService.ListAllProperties(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, props)
}

// GET /api/v1/admin/stats
func (c *AdminController) StatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := c.adminService.Stats(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}

// PATCH /api/v1/admin/dealers/{id}/status
func (c *AdminController) SetDealerStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	var req dtos.SetDealerStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := c.validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	prof, err := c.adminService.SetDealerActive(r.Context(), id, *req.IsActive)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, prof)
}
