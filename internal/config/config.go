package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"
)

// Config holds everything the server needs at startup. Values come from the
// environment; see Load for the variable names and defaults.
type Config struct {
	AppEnv   string
	HTTPAddr string
	LogFile  string

	AircraftDBDriver string
	AircraftDBDSN    string
	AirportDBDriver  string
	AirportDBDSN     string
	AutoMigrate      bool

	CacheBackend  string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	StatsCacheTTL time.Duration

	RouteCount   int
	RouteWorkers int

	RateLimitRPS   float64
	RateLimitBurst int

	StatsWarmInterval   time.Duration
	FleetReloadInterval time.Duration
}

const (
	DriverSQLite   = "sqlite"
	DriverSQLite3  = "sqlite3"
	DriverPostgres = "postgres"

	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"

	DefaultRouteCount = 50
)

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	env := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		AppEnv:           env("APP_ENV", "development"),
		HTTPAddr:         env("HTTP_ADDR", ":8080"),
		LogFile:          getenv("LOG_FILE"),
		AircraftDBDriver: env("AIRCRAFT_DB_DRIVER", DriverSQLite),
		AircraftDBDSN:    env("AIRCRAFT_DB_DSN", "data.db"),
		AirportDBDriver:  env("AIRPORT_DB_DRIVER", DriverSQLite3),
		AirportDBDSN:     env("AIRPORT_DB_DSN", "airports.db3"),
		CacheBackend:     env("CACHE_BACKEND", CacheBackendMemory),
		RedisHost:        env("REDIS_HOST", "localhost"),
		RedisPort:        env("REDIS_PORT", "6379"),
		RedisPassword:    getenv("REDIS_PASSWORD"),
	}

	var err error
	if cfg.AutoMigrate, err = parseBool(env("AUTO_MIGRATE", "false"), "AUTO_MIGRATE"); err != nil {
		return nil, err
	}
	if cfg.StatsCacheTTL, err = parseDuration(env("STATS_CACHE_TTL", "10m"), "STATS_CACHE_TTL"); err != nil {
		return nil, err
	}
	if cfg.StatsWarmInterval, err = parseDuration(env("STATS_WARM_INTERVAL", "5m"), "STATS_WARM_INTERVAL"); err != nil {
		return nil, err
	}
	if cfg.FleetReloadInterval, err = parseDuration(env("FLEET_RELOAD_INTERVAL", "1m"), "FLEET_RELOAD_INTERVAL"); err != nil {
		return nil, err
	}
	if cfg.RouteCount, err = parsePositiveInt(env("ROUTE_COUNT", strconv.Itoa(DefaultRouteCount)), "ROUTE_COUNT"); err != nil {
		return nil, err
	}
	if cfg.RouteWorkers, err = parsePositiveInt(env("ROUTE_WORKERS", strconv.Itoa(runtime.GOMAXPROCS(0))), "ROUTE_WORKERS"); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = parsePositiveInt(env("RATE_LIMIT_BURST", "20"), "RATE_LIMIT_BURST"); err != nil {
		return nil, err
	}
	rps, err := strconv.ParseFloat(env("RATE_LIMIT_RPS", "5"), 64)
	if err != nil || rps <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS must be a positive number, got %q", getenv("RATE_LIMIT_RPS"))
	}
	cfg.RateLimitRPS = rps

	switch cfg.AircraftDBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("AIRCRAFT_DB_DRIVER must be %q or %q, got %q", DriverSQLite, DriverPostgres, cfg.AircraftDBDriver)
	}
	switch cfg.AirportDBDriver {
	case DriverSQLite3, DriverPostgres:
	default:
		return nil, fmt.Errorf("AIRPORT_DB_DRIVER must be %q or %q, got %q", DriverSQLite3, DriverPostgres, cfg.AirportDBDriver)
	}
	switch cfg.CacheBackend {
	case CacheBackendMemory, CacheBackendRedis:
	default:
		return nil, fmt.Errorf("CACHE_BACKEND must be %q or %q, got %q", CacheBackendMemory, CacheBackendRedis, cfg.CacheBackend)
	}

	return cfg, nil
}

// RedisAddr returns host:port for the redis cache.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

func parseBool(v, name string) (bool, error) {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", name, v)
	}
	return b, nil
}

func parseDuration(v, name string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%s must be a non-negative duration, got %q", name, v)
	}
	return d, nil
}

func parsePositiveInt(v, name string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, v)
	}
	return n, nil
}
