package services

import (
	"context"
	"testing"
	"time"

	"infinite-experiment/routeplanner/internal/common"
	"infinite-experiment/routeplanner/internal/db/dbtest"
	"infinite-experiment/routeplanner/internal/index"
	"infinite-experiment/routeplanner/internal/metrics"
	gormModels "infinite-experiment/routeplanner/internal/models/gorm"
	"infinite-experiment/routeplanner/internal/store"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type testEnv struct {
	db      *gorm.DB
	store   *store.DatabasePool
	index   *index.Index
	metrics *metrics.MetricsRegistry
	cache   *common.CacheService
	fleet   *FleetService
	stats   *StatisticsService
	flights *FlightService
	history *HistoryService
}

// newTestEnv wires the services over SQLite databases seeded with the
// Europe navdata and the given fleet (dbtest.Fleet when nil).
func newTestEnv(t *testing.T, fleet []*gormModels.Aircraft) *testEnv {
	t.Helper()
	if fleet == nil {
		fleet = dbtest.Fleet()
	}

	gdb := dbtest.AircraftDB(t)
	dbtest.SeedFleet(t, gdb, fleet)
	airports, runways := dbtest.Europe()
	xdb := dbtest.AirportDB(t, airports, runways)

	m := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	pool := store.NewDatabasePool(gdb, xdb, m)

	ctx := context.Background()
	ix, err := index.Load(ctx, pool)
	if err != nil {
		t.Fatalf("Failed to load index: %v", err)
	}

	env := &testEnv{
		db:      gdb,
		store:   pool,
		index:   ix,
		metrics: m,
		cache:   common.NewCacheService(time.Minute, time.Minute),
	}
	env.fleet = NewFleetService(pool, m)
	if err := env.fleet.Reload(ctx); err != nil {
		t.Fatalf("Failed to load fleet: %v", err)
	}
	env.stats = NewStatisticsService(pool, env.fleet, env.cache, time.Minute, m)
	env.flights = NewFlightService(pool, ix, env.fleet, env.stats)
	env.history = NewHistoryService(pool, ix, env.fleet)
	return env
}

func int32Ptr(v int32) *int32 { return &v }
