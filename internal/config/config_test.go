package config

import (
	"strings"
	"testing"
	"time"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(envFrom(nil))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.AppEnv != "development" {
		t.Errorf("Expected development env, got %s", cfg.AppEnv)
	}
	if cfg.RouteCount != DefaultRouteCount {
		t.Errorf("Expected route count %d, got %d", DefaultRouteCount, cfg.RouteCount)
	}
	if cfg.AircraftDBDriver != DriverSQLite || cfg.AirportDBDriver != DriverSQLite3 {
		t.Errorf("Unexpected drivers %s / %s", cfg.AircraftDBDriver, cfg.AirportDBDriver)
	}
	if cfg.StatsCacheTTL != 10*time.Minute {
		t.Errorf("Expected 10m stats TTL, got %s", cfg.StatsCacheTTL)
	}
	if cfg.FleetReloadInterval != time.Minute {
		t.Errorf("Expected 1m fleet reload interval, got %s", cfg.FleetReloadInterval)
	}
	if cfg.RouteWorkers <= 0 {
		t.Errorf("Expected positive worker count, got %d", cfg.RouteWorkers)
	}
	if cfg.RedisAddr() != "localhost:6379" {
		t.Errorf("Expected localhost:6379, got %s", cfg.RedisAddr())
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(envFrom(map[string]string{
		"APP_ENV":            "production",
		"AIRCRAFT_DB_DRIVER": "postgres",
		"AIRCRAFT_DB_DSN":    "postgres://u:p@db/planner",
		"CACHE_BACKEND":      "redis",
		"ROUTE_COUNT":        "10",
		"AUTO_MIGRATE":       "true",
		"STATS_CACHE_TTL":    "30s",
	}))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.AppEnv != "production" || cfg.AircraftDBDriver != DriverPostgres || cfg.CacheBackend != CacheBackendRedis {
		t.Errorf("Overrides not applied: %+v", cfg)
	}
	if cfg.RouteCount != 10 {
		t.Errorf("Expected route count 10, got %d", cfg.RouteCount)
	}
	if !cfg.AutoMigrate {
		t.Error("Expected AutoMigrate true")
	}
	if cfg.StatsCacheTTL != 30*time.Second {
		t.Errorf("Expected 30s, got %s", cfg.StatsCacheTTL)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"ROUTE_COUNT":        {"ROUTE_COUNT": "0"},
		"AIRCRAFT_DB_DRIVER": {"AIRCRAFT_DB_DRIVER": "mysql"},
		"AIRPORT_DB_DRIVER":  {"AIRPORT_DB_DRIVER": "oracle"},
		"CACHE_BACKEND":      {"CACHE_BACKEND": "memcached"},
		"STATS_CACHE_TTL":    {"STATS_CACHE_TTL": "soon"},
		"AUTO_MIGRATE":       {"AUTO_MIGRATE": "maybe"},
		"RATE_LIMIT_RPS":     {"RATE_LIMIT_RPS": "-1"},
	}

	for name, env := range cases {
		_, err := load(envFrom(env))
		if err == nil {
			t.Errorf("%s: expected error", name)
			continue
		}
		if !strings.Contains(err.Error(), name) {
			t.Errorf("%s: error should name the variable, got %v", name, err)
		}
	}
}
