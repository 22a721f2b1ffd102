package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/AliHaider728/royal-palm-map-clone/internal/dtos"
	"github.com/AliHaider728/royal-palm-map-clone/internal/inventory"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController checks DB connectivity.
type HealthController struct {
	db Pinger
}

func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// HealthCheckHandler => GET /health
func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := c.db.Ping(ctx); err != nil {
		utils.Logger.WithError(err).Error("plotmap-service DB unreachable")
		utils.RespondErrorWithCode(w, http.StatusServiceUnavailable, utils.ErrCodeInternal, "Database unreachable", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthCheckResponse{
		Status:    "OK",
		Plots:     len(inventory.Plots()),
		Landmarks: len(inventory.Landmarks()),
	})
}
