package api

import (
	"net/http"
	"strconv"
	"time"

	"infinite-experiment/routeplanner/internal/common"
	"infinite-experiment/routeplanner/internal/constants"
	"infinite-experiment/routeplanner/internal/services"

	"github.com/go-chi/chi/v5"
)

// FleetHandler handles GET /api/v1/aircraft
func FleetHandler(svc FleetProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		common.RespondSuccess(w, initTime, "Fleet retrieved", svc.Fleet())
	}
}

// RandomAircraftHandler godoc
// @Summary      Pick a random aircraft
// @Tags         Aircraft
// @Produce      json
// @Param        not_flown  query    bool  false  "Only aircraft not flown yet"
// @Success      200        {object} dtos.APIResponse
// @Failure      400,404    {object} dtos.APIResponse
// @Router       /api/v1/aircraft/random [get]
func RandomAircraftHandler(svc FleetProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		notFlown := false
		if v := r.URL.Query().Get("not_flown"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				common.RespondError(w, initTime, nil, "Invalid not_flown parameter", http.StatusBadRequest)
				return
			}
			notFlown = b
		}

		ac, err := svc.RandomAircraft(r.Context(), notFlown)
		if err != nil {
			respondServiceError(w, initTime, err, "No aircraft available")
			return
		}
		common.RespondSuccess(w, initTime, "Aircraft selected", services.NewAircraftResponse(ac))
	}
}

// ToggleFlownHandler handles POST /api/v1/aircraft/{id}/toggle-flown
func ToggleFlownHandler(svc FlightRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := parseInt32(chi.URLParam(r, "id"))
		if err != nil || id <= 0 {
			common.RespondError(w, initTime, nil, "Invalid aircraft id", http.StatusBadRequest)
			return
		}

		ac, err := svc.ToggleAircraftFlown(r.Context(), id)
		if err != nil {
			respondServiceError(w, initTime, err, "Failed to update aircraft")
			return
		}
		common.RespondSuccess(w, initTime, constants.MsgFlownToggled, services.NewAircraftResponse(ac))
	}
}

// ResetFlownHandler handles POST /api/v1/aircraft/reset-flown
func ResetFlownHandler(svc FlightRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := svc.MarkAllNotFlown(r.Context()); err != nil {
			respondServiceError(w, initTime, err, "Failed to reset fleet")
			return
		}
		common.RespondSuccess(w, initTime, constants.MsgFleetReset, nil)
	}
}
