package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"infinite-experiment/routeplanner/internal/db/dbtest"
	"infinite-experiment/routeplanner/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"gorm.io/gorm"
)

func setupPool(t *testing.T) (*DatabasePool, *metrics.MetricsRegistry) {
	t.Helper()
	gdb := dbtest.AircraftDB(t)
	dbtest.SeedFleet(t, gdb, dbtest.Fleet())
	airports, runways := dbtest.Netherlands()
	m := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	return NewDatabasePool(gdb, dbtest.AirportDB(t, airports, runways), m), m
}

func TestErrorKinds(t *testing.T) {
	nf := wrap("op", gorm.ErrRecordNotFound)
	if !IsNotFound(nf) || IsStoreError(nf) {
		t.Errorf("Expected not-found, got %v", nf)
	}
	if !errors.Is(nf, gorm.ErrRecordNotFound) {
		t.Error("Expected driver cause to stay reachable")
	}

	se := wrap("op", errors.New("database is locked"))
	if IsNotFound(se) || !IsStoreError(se) {
		t.Errorf("Expected store error, got %v", se)
	}
	if wrap("op", nil) != nil {
		t.Error("Expected nil for nil")
	}
	if IsNotFound(errors.New("plain")) {
		t.Error("Expected plain errors not to classify")
	}
}

func TestDatabasePool_ReadOperations(t *testing.T) {
	pool, m := setupPool(t)
	ctx := context.Background()

	aircraft, err := pool.GetAllAircraft(ctx)
	if err != nil || len(aircraft) != 2 {
		t.Fatalf("Expected 2 aircraft, got %d (%v)", len(aircraft), err)
	}
	airports, err := pool.GetAllAirports(ctx)
	if err != nil || len(airports) != 2 {
		t.Fatalf("Expected 2 airports, got %d (%v)", len(airports), err)
	}
	runways, err := pool.GetAllRunways(ctx)
	if err != nil || len(runways) != 3 {
		t.Fatalf("Expected 3 runways, got %d (%v)", len(runways), err)
	}

	_, err = pool.GetAirportByICAO(ctx, "KJFK")
	if !IsNotFound(err) {
		t.Errorf("Expected not-found, got %v", err)
	}
	_, err = pool.GetAircraftByID(ctx, 77)
	if !IsNotFound(err) {
		t.Errorf("Expected not-found, got %v", err)
	}

	if v := testutil.ToFloat64(m.DBErrorsTotal.WithLabelValues("get_airport_by_icao", "not_found")); v != 1 {
		t.Errorf("Expected one failed lookup recorded, got %v", v)
	}
	if err := pool.Ping(ctx); err != nil {
		t.Errorf("Expected ping to succeed, got %v", err)
	}
}

func TestDatabasePool_MarkFlownRoundTrip(t *testing.T) {
	pool, _ := setupPool(t)
	ctx := context.Background()
	pool.now = func() time.Time { return time.Date(2026, 4, 2, 23, 0, 0, 0, time.UTC) }

	ac, err := pool.GetAircraftByID(ctx, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	date := "2026-04-02"
	ac.Flown = 1
	ac.DateFlown = &date
	if err := pool.UpdateAircraft(ctx, ac); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	reloaded, _ := pool.GetAircraftByID(ctx, 1)
	if reloaded.Flown != 1 || reloaded.DateFlown == nil || *reloaded.DateFlown != date {
		t.Errorf("Expected flown=1 on %s, got %+v", date, reloaded)
	}
	count, _ := pool.GetNotFlownCount(ctx)
	if count != 1 {
		t.Errorf("Expected 1 not flown, got %d", count)
	}

	for i := 0; i < 5; i++ {
		nf, err := pool.RandomNotFlownAircraft(ctx)
		if err != nil || nf.ID != 2 {
			t.Fatalf("Expected aircraft 2, got %+v (%v)", nf, err)
		}
	}

	if err := pool.MarkAllAircraftNotFlown(ctx); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	count, _ = pool.GetNotFlownCount(ctx)
	if count != 2 {
		t.Errorf("Expected 2 not flown after reset, got %d", count)
	}
}

func TestDatabasePool_History(t *testing.T) {
	pool, _ := setupPool(t)
	ctx := context.Background()
	pool.now = func() time.Time { return time.Date(2026, 4, 2, 23, 0, 0, 0, time.FixedZone("X", -3*3600)) }

	eham, _ := pool.GetAirportByICAO(ctx, "EHAM")
	ehrd, _ := pool.GetAirportByICAO(ctx, "EHRD")
	ac, _ := pool.GetAircraftByID(ctx, 1)

	if err := pool.AddToHistory(ctx, eham, ehrd, ac, 24); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	history, err := pool.GetHistory(ctx)
	if err != nil || len(history) != 1 {
		t.Fatalf("Expected 1 entry, got %d (%v)", len(history), err)
	}
	h := history[0]
	if h.DepartureICAO != "EHAM" || h.ArrivalICAO != "EHRD" || h.AircraftID != 1 {
		t.Errorf("Unexpected entry %+v", h)
	}
	// 23:00 at UTC-3 is 02:00 the next day in UTC.
	if h.Date != "2026-04-03" {
		t.Errorf("Expected UTC date 2026-04-03, got %s", h.Date)
	}
	if h.Distance == nil || *h.Distance != 24 {
		t.Errorf("Expected distance 24, got %v", h.Distance)
	}
}

func TestDatabasePool_ConcurrentWrites(t *testing.T) {
	pool, _ := setupPool(t)
	ctx := context.Background()

	eham, _ := pool.GetAirportByICAO(ctx, "EHAM")
	ehrd, _ := pool.GetAirportByICAO(ctx, "EHRD")
	ac, _ := pool.GetAircraftByID(ctx, 2)

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- pool.AddToHistory(ctx, eham, ehrd, ac, 24)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	history, _ := pool.GetHistory(ctx)
	if len(history) != 20 {
		t.Errorf("Expected 20 entries, got %d", len(history))
	}
}
