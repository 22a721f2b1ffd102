package controllers

import (
	"net/http"

	"github.com/AliHaider728/royal-palm-map-clone/internal/services"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

type PackageController struct {
	packageService *services.PackageService
}

func NewPackageController(ps *services.PackageService) *PackageController {
	return &PackageController{packageService: ps}
}

// GET /api/v1/packages
func (c *PackageController) ListHandler(w http.ResponseWriter, r *http.Request) {
	pkgs, err := c.packageService.ListActive(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, pkgs)
}
