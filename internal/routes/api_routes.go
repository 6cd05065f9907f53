package routes

import (
	"infinite-experiment/routeplanner/internal/api"
	"infinite-experiment/routeplanner/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
func RegisterAPIRoutes(r chi.Router, svc *api.Services, limiter *middleware.RateLimiter) {
	r.Route("/api/v1", func(v1 chi.Router) {
		if limiter != nil {
			v1.Use(limiter.Middleware)
		}

		v1.Get("/routes", api.GenerateRoutesHandler(svc.Routes))
		v1.Post("/routes/flown", api.MarkRouteFlownHandler(svc.Flights))

		v1.Get("/history", api.ListHistoryHandler(svc.History))
		v1.Post("/history", api.AddHistoryHandler(svc.Flights))
		v1.Get("/statistics", api.StatisticsHandler(svc.Stats))

		v1.Route("/aircraft", func(ac chi.Router) {
			ac.Get("/", api.FleetHandler(svc.Fleet))
			ac.Get("/random", api.RandomAircraftHandler(svc.Fleet))
			ac.Post("/reset-flown", api.ResetFlownHandler(svc.Flights))
			ac.Post("/{id}/toggle-flown", api.ToggleFlownHandler(svc.Flights))
		})

		v1.Get("/airports/{icao}", api.AirportHandler(svc.Airports))
	})
}
