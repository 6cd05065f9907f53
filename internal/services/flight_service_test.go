package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"infinite-experiment/routeplanner/internal/constants"
	"infinite-experiment/routeplanner/internal/db/dbtest"
)

func TestFlightService_MarkRouteFlown(t *testing.T) {
	env := newTestEnv(t, nil)
	env.flights.now = func() time.Time { return time.Date(2024, 5, 1, 23, 30, 0, 0, time.FixedZone("UTC-2", -2*3600)) }
	ctx := context.Background()

	if err := env.flights.MarkRouteFlown(ctx, "eham", "EHRD", 1); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	ac, err := env.store.GetAircraftByID(ctx, 1)
	if err != nil {
		t.Fatalf("Failed to load aircraft: %v", err)
	}
	if !ac.IsFlown() {
		t.Error("Expected aircraft 1 to be flown")
	}
	if ac.DateFlown == nil || *ac.DateFlown != "2024-05-02" {
		t.Errorf("Expected date flown 2024-05-02 (UTC), got %v", ac.DateFlown)
	}

	history, err := env.store.GetHistory(ctx)
	if err != nil {
		t.Fatalf("Failed to load history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("Expected 1 history entry, got %d", len(history))
	}
	h := history[0]
	if h.DepartureICAO != "EHAM" || h.ArrivalICAO != "EHRD" || h.AircraftID != 1 {
		t.Errorf("Expected EHAM to EHRD with aircraft 1, got %+v", h)
	}
	if h.Distance == nil || *h.Distance != 24 {
		t.Errorf("Expected distance 24, got %v", h.Distance)
	}

	// The in-memory fleet follows the write.
	if env.fleet.NotFlownCount() != 1 {
		t.Errorf("Expected 1 aircraft not flown, got %d", env.fleet.NotFlownCount())
	}
	cached, _ := env.fleet.AircraftByID(1)
	if !cached.IsFlown() {
		t.Error("Expected fleet snapshot to show aircraft 1 flown")
	}
}

func TestFlightService_Validation(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	cases := []struct {
		name     string
		dep, dst string
		aircraft int32
		code     string
	}{
		{"unknown departure", "ZZZZ", "EHRD", 1, constants.ErrCodeAirportNotFound},
		{"unknown destination", "EHAM", "ZZZZ", 1, constants.ErrCodeAirportNotFound},
		{"same airport", "EHAM", "eham", 1, constants.ErrCodeInvalidAirport},
		{"unknown aircraft", "EHAM", "EHRD", 99, constants.ErrCodeAircraftNotFound},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := env.flights.MarkRouteFlown(ctx, c.dep, c.dst, c.aircraft)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
			if ve.Code != c.code {
				t.Errorf("Expected code %s, got %s", c.code, ve.Code)
			}
		})
	}

	history, _ := env.store.GetHistory(ctx)
	if len(history) != 0 {
		t.Errorf("Expected no history after failed requests, got %d entries", len(history))
	}
}

func TestFlightService_ToggleAircraftFlown(t *testing.T) {
	env := newTestEnv(t, nil)
	env.flights.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	ac, err := env.flights.ToggleAircraftFlown(ctx, 2)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !ac.IsFlown() || ac.DateFlown == nil || *ac.DateFlown != "2024-05-01" {
		t.Errorf("Expected aircraft flown on 2024-05-01, got flown=%d date=%v", ac.Flown, ac.DateFlown)
	}

	ac, err = env.flights.ToggleAircraftFlown(ctx, 2)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ac.IsFlown() || ac.DateFlown != nil {
		t.Errorf("Expected aircraft not flown with no date, got flown=%d date=%v", ac.Flown, ac.DateFlown)
	}

	if _, err := env.flights.ToggleAircraftFlown(ctx, 42); !IsValidationError(err) {
		t.Errorf("Expected ValidationError for unknown aircraft, got %v", err)
	}
}

func TestFlightService_MarkAllNotFlown(t *testing.T) {
	fleet := dbtest.Fleet()
	date := "2024-04-01"
	for _, ac := range fleet {
		ac.Flown = 1
		ac.DateFlown = &date
	}
	env := newTestEnv(t, fleet)
	ctx := context.Background()

	if env.fleet.NotFlownCount() != 0 {
		t.Fatalf("Expected a fully flown fleet, got %d not flown", env.fleet.NotFlownCount())
	}
	if err := env.flights.MarkAllNotFlown(ctx); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if env.fleet.NotFlownCount() != 2 {
		t.Errorf("Expected 2 aircraft not flown, got %d", env.fleet.NotFlownCount())
	}
	for _, ac := range env.fleet.Aircraft() {
		if ac.DateFlown != nil {
			t.Errorf("Expected date flown cleared for aircraft %d, got %s", ac.ID, *ac.DateFlown)
		}
	}
}

func TestFlightService_AddHistoryEntryKeepsFlag(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	if err := env.flights.AddHistoryEntry(ctx, "EHAM", "EGLL", 2); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	ac, _ := env.store.GetAircraftByID(ctx, 2)
	if ac.IsFlown() {
		t.Error("Expected history entry not to mark the aircraft flown")
	}
	history, _ := env.store.GetHistory(ctx)
	if len(history) != 1 || history[0].Distance == nil || *history[0].Distance != 200 {
		t.Errorf("Expected one 200 NM entry, got %+v", history)
	}
}
