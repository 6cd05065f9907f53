package services

import (
	"context"
	"strconv"

	"infinite-experiment/routeplanner/internal/constants"
	"infinite-experiment/routeplanner/internal/models/dtos"
	"infinite-experiment/routeplanner/internal/planner"
)

// MaxRouteCount bounds a single request.
const MaxRouteCount = 1000

type RouteRequest struct {
	Mode       constants.RouteMode
	AircraftID int32
	Departure  string
	Count      int
	ListOptions
}

type RouteService struct {
	generator    *planner.Generator
	fleet        *FleetService
	defaultCount int
}

func NewRouteService(generator *planner.Generator, fleet *FleetService, defaultCount int) *RouteService {
	if defaultCount <= 0 {
		defaultCount = constants.GenerateAmount
	}
	return &RouteService{generator: generator, fleet: fleet, defaultCount: defaultCount}
}

// GenerateRoutes runs one batch for the requested mode, then filters and
// sorts it. Sortable columns: departure, arrival, aircraft, distance.
func (s *RouteService) GenerateRoutes(ctx context.Context, req RouteRequest) ([]dtos.Route, error) {
	count := req.Count
	if count <= 0 {
		count = s.defaultCount
	}
	if count > MaxRouteCount {
		return nil, newValidationError(constants.ErrCodeInvalidRouteQuery, "count must be at most %d", MaxRouteCount)
	}

	var (
		routes []dtos.Route
		err    error
	)
	switch req.Mode {
	case constants.RouteModeAll, "":
		routes, err = s.generator.GenerateRandomRoutes(ctx, s.fleet.Aircraft(), req.Departure, count)
	case constants.RouteModeNotFlown:
		routes, err = s.generator.GenerateNotFlownRoutes(ctx, s.fleet.Aircraft(), req.Departure, count)
	case constants.RouteModeAircraft:
		ac, ok := s.fleet.AircraftByID(req.AircraftID)
		if !ok {
			return nil, newValidationError(constants.ErrCodeAircraftNotFound, "aircraft %d not found", req.AircraftID)
		}
		routes, err = s.generator.GenerateRoutesForAircraft(ctx, ac, req.Departure, count)
	default:
		return nil, newValidationError(constants.ErrCodeInvalidRouteQuery, "unknown mode %q", req.Mode)
	}
	if err != nil {
		return nil, err
	}

	return FilterAndSortRoutes(routes, req.ListOptions), nil
}

// FilterAndSortRoutes keeps routes whose ICAO codes, aircraft name or
// distance contain opts.Search and orders them by opts.SortBy.
func FilterAndSortRoutes(routes []dtos.Route, opts ListOptions) []dtos.Route {
	out := routes[:0]
	for _, r := range routes {
		if matchesAny(opts.Search, r.Departure.ICAO, r.Destination.ICAO, r.AircraftName, strconv.Itoa(r.Distance)) {
			out = append(out, r)
		}
	}

	switch opts.SortBy {
	case "departure":
		sortBy(out, func(r dtos.Route) string { return r.Departure.ICAO }, opts.Descending)
	case "arrival":
		sortBy(out, func(r dtos.Route) string { return r.Destination.ICAO }, opts.Descending)
	case "aircraft":
		sortBy(out, func(r dtos.Route) string { return r.AircraftName }, opts.Descending)
	case "distance":
		sortBy(out, func(r dtos.Route) int { return r.Distance }, opts.Descending)
	}
	return out
}
