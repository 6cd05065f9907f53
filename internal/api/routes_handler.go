package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"infinite-experiment/routeplanner/internal/common"
	"infinite-experiment/routeplanner/internal/constants"
	"infinite-experiment/routeplanner/internal/models/dtos"
	"infinite-experiment/routeplanner/internal/services"
)

// GenerateRoutesHandler godoc
// @Summary      Generate random routes
// @Description  Generates a batch of routes. Routes that could not be built are dropped, so
// @Description  the batch may be shorter than count.
// @Tags         Routes
// @Produce      json
// @Param        mode         query    string  false  "all, not_flown or aircraft"  default(all)
// @Param        aircraft_id  query    int     false  "Aircraft for mode=aircraft"
// @Param        departure    query    string  false  "Pin every route to this ICAO"
// @Param        count        query    int     false  "Routes to attempt"
// @Param        q            query    string  false  "Search"
// @Param        sort         query    string  false  "departure, arrival, aircraft or distance"
// @Param        order        query    string  false  "asc or desc"
// @Success      200          {object} dtos.APIResponse
// @Failure      400,404,500  {object} dtos.APIResponse
// @Router       /api/v1/routes [get]
func GenerateRoutesHandler(svc RouteGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		q := r.URL.Query()

		aircraftID, err := parseInt32(q.Get("aircraft_id"))
		if err != nil {
			common.RespondErrorCode(w, initTime, constants.ErrCodeInvalidRouteQuery, http.StatusBadRequest, "invalid aircraft_id")
			return
		}
		count := 0
		if c := q.Get("count"); c != "" {
			if count, err = strconv.Atoi(c); err != nil || count < 0 {
				common.RespondErrorCode(w, initTime, constants.ErrCodeInvalidRouteQuery, http.StatusBadRequest, "invalid count")
				return
			}
		}

		req := services.RouteRequest{
			Mode:        constants.RouteMode(strings.ToLower(q.Get("mode"))),
			AircraftID:  aircraftID,
			Departure:   strings.TrimSpace(q.Get("departure")),
			Count:       count,
			ListOptions: listOptions(r),
		}

		routes, err := svc.GenerateRoutes(r.Context(), req)
		if err != nil {
			respondServiceError(w, initTime, err, "Failed to generate routes")
			return
		}

		common.RespondSuccess(w, initTime, constants.MsgRoutesGenerated, dtos.RouteListResponse{
			Routes: routes,
			Count:  len(routes),
		})
	}
}

// MarkRouteFlownHandler handles POST /api/v1/routes/flown
func MarkRouteFlownHandler(svc FlightRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.MarkRouteFlownReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.DepartureICAO == "" || req.DestinationICAO == "" || req.AircraftID == 0 {
			common.RespondError(w, initTime, errMissingFlightFields, "Invalid request body", http.StatusBadRequest)
			return
		}

		if err := svc.MarkRouteFlown(r.Context(), req.DepartureICAO, req.DestinationICAO, req.AircraftID); err != nil {
			respondServiceError(w, initTime, err, "Failed to mark route as flown")
			return
		}
		common.RespondSuccess(w, initTime, constants.MsgRouteFlown, nil)
	}
}

var errMissingFlightFields = errors.New("departure, arrival and aircraft_id are required")
