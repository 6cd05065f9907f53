package api

import (
	"net/http"
	"strings"
	"time"

	"infinite-experiment/routeplanner/internal/common"
	"infinite-experiment/routeplanner/internal/constants"
	"infinite-experiment/routeplanner/internal/models/dtos"

	"github.com/go-chi/chi/v5"
)

// AirportHandler handles GET /api/v1/airports/{icao}
// Serves the indexed copy; the database is not queried.
func AirportHandler(finder AirportFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		icao := strings.TrimSpace(chi.URLParam(r, "icao"))
		cached, ok := finder.AirportByICAO(icao)
		if !ok {
			common.RespondErrorCode(w, initTime, constants.ErrCodeAirportNotFound, http.StatusNotFound, strings.ToUpper(icao))
			return
		}

		a := cached.Airport
		common.RespondSuccess(w, initTime, "Airport retrieved", dtos.AirportResponse{
			ID:            a.ID,
			ICAO:          a.ICAO,
			Name:          a.Name,
			Latitude:      a.Latitude,
			Longitude:     a.Longitude,
			Elevation:     a.Elevation,
			LongestRunway: cached.LongestRunway,
			RunwayCount:   len(finder.RunwaysFor(a.ID)),
		})
	}
}
