package controllers

import (
	"net/http"

	"github.com/AliHaider728/royal-palm-map-clone/internal/services"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

// DealerController serves the dealer dashboard.
type DealerController struct {
	propertyService  *services.PropertyService
	inquiryService   *services.InquiryService
	analyticsService *services.AnalyticsService
}

func NewDealerController(
	ps *services.PropertyService,
	is *services.InquiryService,
	as *services.AnalyticsService,
) *DealerController {
	return &DealerController{propertyService: ps, inquiryService: is, analyticsService: as}
}

// GET /api/v1/dealer/properties
func (c *DealerController) ListPropertiesHandler(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	props, err := c.propertyService.ListByDealer(r.Context(), actor)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, props)
}

// GET /api/v1/dealer/inquiries
func (c *DealerController) ListInquiriesHandler(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	inqs, err := c.inquiryService.ListByDealer(r.Context(), actor)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, inqs)
}

// GET /api/v1/dealer/stats
func (c *DealerController) StatsHandler(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	stats, err := c.analyticsService.DealerStats(r.Context(), actor)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}
