package routes

import (
	"net/http"

	"infinite-experiment/routeplanner/internal/api"
	"infinite-experiment/routeplanner/internal/logging"
	"infinite-experiment/routeplanner/internal/metrics"
	"infinite-experiment/routeplanner/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// RegisterRoutes builds the HTTP handler. metricsReg and limiter may be nil.
func RegisterRoutes(deps *api.Dependencies, metricsReg *metrics.MetricsRegistry, limiter *middleware.RateLimiter) http.Handler {
	r := chi.NewRouter()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))
	r.Use(middleware.Logging)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	r.Get("/healthCheck", api.HealthCheckHandler(deps.Health))

	RegisterAPIRoutes(r, deps.Services, limiter)

	logging.Info("Router initialized with metrics and logging middleware")
	return r
}
