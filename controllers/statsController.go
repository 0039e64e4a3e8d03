package controller

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/02priyeshraj/HomePlate_Backend/helper"
	middleware "github.com/02priyeshraj/HomePlate_Backend/middlewares"
	"github.com/02priyeshraj/HomePlate_Backend/services"
)

type StatsController struct {
	Stats services.StatsServiceInterface
}

func (c *StatsController) GetSellerStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r)
	defer cancel()

	stats, err := c.Stats.SellerStats(ctx, middleware.PrincipalFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "Error retrieving stats")
		return
	}
	helper.WriteJSON(w, http.StatusOK, "Stats retrieved successfully", stats)
}

// HealthController reports liveness. Ping, when set, checks the database.
type HealthController struct {
	Ping func(ctx context.Context) error
}

type healthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	status, body := http.StatusOK, healthStatus{Status: "OK", Message: "Server is running"}

	if c.Ping != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := c.Ping(ctx); err != nil {
			slog.Warn("Health check failed", "error", err)
			status, body = http.StatusServiceUnavailable, healthStatus{Status: "UNAVAILABLE", Message: "Database unreachable"}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
