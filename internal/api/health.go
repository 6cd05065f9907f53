package api

import (
	"context"
	"net/http"
	"time"

	"infinite-experiment/routeplanner/internal/common"
	"infinite-experiment/routeplanner/internal/models/dtos"
)

const healthPingTimeout = 2 * time.Second

// HealthCheckHandler handles GET /healthCheck
//
// @Summary Health check
// @Description Pings the databases and the cache and reports index sizes.
// @Tags Misc
// @Success 200 {object} dtos.APIResponse
// @Failure 503 {object} dtos.APIResponse
// @Router /healthCheck [get]
func HealthCheckHandler(deps HealthDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()

		services := map[string]string{
			"database": ping(ctx, deps.Store),
			"cache":    "memory",
		}
		if deps.Cache != nil {
			services["cache"] = ping(ctx, deps.Cache)
		}

		overallStatus := "ok"
		for _, status := range services {
			if status == "down" {
				overallStatus = "down"
				break
			}
		}

		resp := dtos.HealthResponse{
			Status:   overallStatus,
			Uptime:   time.Since(deps.UpSince).Round(time.Second).String(),
			Services: services,
		}
		if deps.Airports != nil {
			resp.Airports = deps.Airports()
		}
		if deps.Fleet != nil {
			resp.FleetSize = deps.Fleet()
		}

		code := http.StatusOK
		if overallStatus != "ok" {
			code = http.StatusServiceUnavailable
		}
		common.RespondSuccess(w, initTime, "Health check", resp, code)
	}
}

func ping(ctx context.Context, p Pinger) string {
	if p == nil {
		return "down"
	}
	if err := p.Ping(ctx); err != nil {
		return "down"
	}
	return "ok"
}
