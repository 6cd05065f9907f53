package api

import (
	"encoding/json"
	"net/http"
	"time"

	"infinite-experiment/routeplanner/internal/common"
	"infinite-experiment/routeplanner/internal/constants"
	"infinite-experiment/routeplanner/internal/models/dtos"
)

// ListHistoryHandler godoc
// @Summary      Flight history
// @Tags         History
// @Produce      json
// @Param        q      query    string  false  "Search over ICAO codes, aircraft and date"
// @Param        sort   query    string  false  "departure, arrival, aircraft, date or distance"
// @Param        order  query    string  false  "asc or desc"
// @Success      200    {object} dtos.APIResponse
// @Failure      500    {object} dtos.APIResponse
// @Router       /api/v1/history [get]
func ListHistoryHandler(svc HistoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		items, err := svc.List(r.Context(), listOptions(r))
		if err != nil {
			respondServiceError(w, initTime, err, "Failed to load history")
			return
		}
		common.RespondSuccess(w, initTime, "History retrieved", items)
	}
}

// AddHistoryHandler handles POST /api/v1/history
func AddHistoryHandler(svc FlightRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AddHistoryReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.DepartureICAO == "" || req.ArrivalICAO == "" || req.AircraftID == 0 {
			common.RespondError(w, initTime, errMissingFlightFields, "Invalid request body", http.StatusBadRequest)
			return
		}

		if err := svc.AddHistoryEntry(r.Context(), req.DepartureICAO, req.ArrivalICAO, req.AircraftID); err != nil {
			respondServiceError(w, initTime, err, "Failed to add history entry")
			return
		}
		common.RespondSuccess(w, initTime, constants.MsgHistoryAdded, nil, http.StatusCreated)
	}
}

// StatisticsHandler handles GET /api/v1/statistics
func StatisticsHandler(svc StatisticsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		stats, err := svc.GetStatistics(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err, "Failed to compute statistics")
			return
		}
		common.RespondSuccess(w, initTime, "Statistics retrieved", stats)
	}
}
