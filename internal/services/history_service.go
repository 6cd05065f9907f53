package services

import (
	"context"
	"fmt"

	"infinite-experiment/routeplanner/internal/index"
	"infinite-experiment/routeplanner/internal/models/dtos"
	"infinite-experiment/routeplanner/internal/store"
)

type HistoryService struct {
	history store.HistoryOperations
	index   *index.Index
	fleet   *FleetService
}

func NewHistoryService(history store.HistoryOperations, ix *index.Index, fleet *FleetService) *HistoryService {
	return &HistoryService{history: history, index: ix, fleet: fleet}
}

// List returns the history most recent first, with names resolved, then
// filtered and sorted per opts. Sortable columns: departure, arrival,
// aircraft, date, distance.
func (s *HistoryService) List(ctx context.Context, opts ListOptions) ([]dtos.HistoryItem, error) {
	rows, err := s.history.GetHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	items := make([]dtos.HistoryItem, 0, len(rows))
	for _, h := range rows {
		item := dtos.HistoryItem{
			ID:            h.ID,
			DepartureICAO: h.DepartureICAO,
			DepartureInfo: dtos.AirportDisplayName(s.airportName(h.DepartureICAO), h.DepartureICAO),
			ArrivalICAO:   h.ArrivalICAO,
			ArrivalInfo:   dtos.AirportDisplayName(s.airportName(h.ArrivalICAO), h.ArrivalICAO),
			AircraftID:    h.AircraftID,
			AircraftName:  s.fleet.AircraftName(h.AircraftID),
			Date:          h.Date,
		}
		if h.Distance != nil {
			item.Distance = int(*h.Distance)
		}
		if matchesAny(opts.Search, item.DepartureICAO, item.ArrivalICAO, item.AircraftName, item.Date) {
			items = append(items, item)
		}
	}

	switch opts.SortBy {
	case "departure":
		sortBy(items, func(h dtos.HistoryItem) string { return h.DepartureICAO }, opts.Descending)
	case "arrival":
		sortBy(items, func(h dtos.HistoryItem) string { return h.ArrivalICAO }, opts.Descending)
	case "aircraft":
		sortBy(items, func(h dtos.HistoryItem) string { return h.AircraftName }, opts.Descending)
	case "date":
		sortBy(items, func(h dtos.HistoryItem) string { return h.Date }, opts.Descending)
	case "distance":
		sortBy(items, func(h dtos.HistoryItem) int { return h.Distance }, opts.Descending)
	}
	return items, nil
}

func (s *HistoryService) airportName(icao string) string {
	if a, ok := s.index.AirportByICAO(icao); ok {
		return a.Airport.Name
	}
	return "Unknown Airport"
}
