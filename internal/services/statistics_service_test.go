package services

import (
	"context"
	"testing"

	gormModels "infinite-experiment/routeplanner/internal/models/gorm"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func fleetLookup(fleet ...*gormModels.Aircraft) func(int32) (*gormModels.Aircraft, bool) {
	byID := make(map[int32]*gormModels.Aircraft, len(fleet))
	for _, ac := range fleet {
		byID[ac.ID] = ac
	}
	return func(id int32) (*gormModels.Aircraft, bool) {
		ac, ok := byID[id]
		return ac, ok
	}
}

func historyRow(dep, arr string, aircraftID int32, distance *int32) gormModels.History {
	return gormModels.History{DepartureICAO: dep, ArrivalICAO: arr, AircraftID: aircraftID, Date: "2024-05-01", Distance: distance}
}

func TestCalculateStatistics_Empty(t *testing.T) {
	stats := CalculateStatistics(nil, fleetLookup())
	if stats.TotalFlights != 0 || stats.TotalDistance != 0 || stats.AverageFlightDistance != 0 {
		t.Errorf("Expected zero totals, got %+v", stats)
	}
	if stats.LongestFlight != "" || stats.MostFlownAircraft != "" || stats.MostVisitedAirport != "" {
		t.Errorf("Expected empty names, got %+v", stats)
	}
}

func TestCalculateStatistics_TiesGoToSmallerKey(t *testing.T) {
	fleet := []*gormModels.Aircraft{
		{ID: 1, Manufacturer: "Boeing", Variant: "737-800"},
		{ID: 2, Manufacturer: "Airbus", Variant: "A320"},
	}
	history := []gormModels.History{
		historyRow("EHAM", "EHRD", 2, int32Ptr(24)),
		historyRow("EHAM", "EHRD", 1, int32Ptr(24)),
	}

	stats := CalculateStatistics(history, fleetLookup(fleet...))

	if stats.TotalFlights != 2 {
		t.Errorf("Expected 2 flights, got %d", stats.TotalFlights)
	}
	if stats.TotalDistance != 48 {
		t.Errorf("Expected total distance 48, got %d", stats.TotalDistance)
	}
	if stats.AverageFlightDistance != 24 {
		t.Errorf("Expected average 24, got %f", stats.AverageFlightDistance)
	}
	if stats.MostFlownAircraft != "Boeing 737-800" {
		t.Errorf("Expected most flown 'Boeing 737-800', got %q", stats.MostFlownAircraft)
	}
	// EHAM and EHRD are both visited twice.
	if stats.MostVisitedAirport != "EHAM" {
		t.Errorf("Expected most visited EHAM, got %q", stats.MostVisitedAirport)
	}
	if stats.FavoriteDepartureAirport != "EHAM" || stats.FavoriteArrivalAirport != "EHRD" {
		t.Errorf("Expected favourites EHAM/EHRD, got %s/%s", stats.FavoriteDepartureAirport, stats.FavoriteArrivalAirport)
	}
}

func TestCalculateStatistics_LongestAndShortest(t *testing.T) {
	history := []gormModels.History{
		historyRow("EHAM", "EGLL", 1, int32Ptr(200)),
		historyRow("EHAM", "EHRD", 1, int32Ptr(24)),
		historyRow("EDDF", "LFPG", 1, int32Ptr(200)),
		historyRow("EHRD", "EHAM", 1, int32Ptr(24)),
		historyRow("LEPA", "EHAM", 1, nil),
	}

	stats := CalculateStatistics(history, fleetLookup())

	if stats.LongestFlight != "EDDF to LFPG" {
		t.Errorf("Expected longest flight 'EDDF to LFPG', got %q", stats.LongestFlight)
	}
	// A missing distance counts as zero.
	if stats.ShortestFlight != "LEPA to EHAM" {
		t.Errorf("Expected shortest flight 'LEPA to EHAM', got %q", stats.ShortestFlight)
	}
	if stats.TotalDistance != 448 {
		t.Errorf("Expected total distance 448, got %d", stats.TotalDistance)
	}
	if stats.MostVisitedAirport != "EHAM" {
		t.Errorf("Expected most visited EHAM, got %q", stats.MostVisitedAirport)
	}
	if stats.MostFlownAircraft != "" {
		t.Errorf("Expected no aircraft name for an unknown id, got %q", stats.MostFlownAircraft)
	}
}

func TestCalculateStatistics_ShortestKeepsFirst(t *testing.T) {
	history := []gormModels.History{
		historyRow("EHAM", "EHRD", 1, int32Ptr(24)),
		historyRow("EHRD", "EHAM", 1, int32Ptr(24)),
	}
	stats := CalculateStatistics(history, fleetLookup())
	if stats.ShortestFlight != "EHAM to EHRD" {
		t.Errorf("Expected shortest flight 'EHAM to EHRD', got %q", stats.ShortestFlight)
	}
	if stats.LongestFlight != "EHRD to EHAM" {
		t.Errorf("Expected longest flight 'EHRD to EHAM', got %q", stats.LongestFlight)
	}
}

func TestStatisticsService_Cache(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	if err := env.flights.AddHistoryEntry(ctx, "EHAM", "EHRD", 1); err != nil {
		t.Fatalf("Failed to add history: %v", err)
	}

	stats, err := env.stats.GetStatistics(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if stats.TotalFlights != 1 {
		t.Errorf("Expected 1 flight, got %d", stats.TotalFlights)
	}
	if _, err := env.stats.GetStatistics(ctx); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	misses := testutil.ToFloat64(env.metrics.CacheMissesTotal.WithLabelValues("STATS_"))
	hits := testutil.ToFloat64(env.metrics.CacheHitsTotal.WithLabelValues("STATS_"))
	if misses != 1 || hits != 1 {
		t.Errorf("Expected 1 miss and 1 hit, got %v misses and %v hits", misses, hits)
	}

	// Writes through FlightService invalidate the cached copy.
	if err := env.flights.AddHistoryEntry(ctx, "EHRD", "EHAM", 2); err != nil {
		t.Fatalf("Failed to add history: %v", err)
	}
	stats, err = env.stats.GetStatistics(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if stats.TotalFlights != 2 {
		t.Errorf("Expected 2 flights after invalidation, got %d", stats.TotalFlights)
	}
	if stats.TotalDistance != 48 {
		t.Errorf("Expected total distance 48, got %d", stats.TotalDistance)
	}
}

func TestStatisticsService_Refresh(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	if _, err := env.stats.GetStatistics(ctx); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	// Written behind the service's back, so only Refresh picks it up.
	if err := env.store.AddToHistory(ctx, env.index.Airports()[0].Airport, env.index.Airports()[1].Airport,
		env.fleet.Aircraft()[0], 24); err != nil {
		t.Fatalf("Failed to add history: %v", err)
	}

	stats, _ := env.stats.GetStatistics(ctx)
	if stats.TotalFlights != 0 {
		t.Errorf("Expected cached 0 flights, got %d", stats.TotalFlights)
	}

	if err := env.stats.Refresh(ctx); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	stats, _ = env.stats.GetStatistics(ctx)
	if stats.TotalFlights != 1 {
		t.Errorf("Expected 1 flight after refresh, got %d", stats.TotalFlights)
	}
}
