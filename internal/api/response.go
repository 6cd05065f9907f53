package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"infinite-experiment/routeplanner/internal/common"
	"infinite-experiment/routeplanner/internal/constants"
	"infinite-experiment/routeplanner/internal/services"
	"infinite-experiment/routeplanner/internal/store"
)

// respondServiceError maps a service error to a status: validation
// failures to 400 (404 for unknown airports and aircraft), missing rows to
// 404, everything else to 500 with message.
func respondServiceError(w http.ResponseWriter, initTime time.Time, err error, message string) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		common.RespondErrorCode(w, initTime, ve.Code, validationStatus(ve.Code), ve.Message)
	case store.IsNotFound(err):
		common.RespondError(w, initTime, nil, message, http.StatusNotFound)
	default:
		common.RespondError(w, initTime, err, message, http.StatusInternalServerError)
	}
}

func validationStatus(code string) int {
	switch code {
	case constants.ErrCodeAirportNotFound, constants.ErrCodeAircraftNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// listOptions reads ?q=&sort=&order=asc|desc.
func listOptions(r *http.Request) services.ListOptions {
	q := r.URL.Query()
	return services.ListOptions{
		Search:     strings.TrimSpace(q.Get("q")),
		SortBy:     strings.ToLower(q.Get("sort")),
		Descending: strings.EqualFold(q.Get("order"), "desc"),
	}
}

// parseInt32 parses an optional integer; empty yields 0.
func parseInt32(s string) (int32, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 32)
	return int32(n), err
}
