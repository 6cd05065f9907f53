package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"infinite-experiment/routeplanner/internal/api"
	"infinite-experiment/routeplanner/internal/common"
	"infinite-experiment/routeplanner/internal/config"
	"infinite-experiment/routeplanner/internal/db"
	"infinite-experiment/routeplanner/internal/index"
	"infinite-experiment/routeplanner/internal/logging"
	"infinite-experiment/routeplanner/internal/metrics"
	"infinite-experiment/routeplanner/internal/middleware"
	"infinite-experiment/routeplanner/internal/planner"
	"infinite-experiment/routeplanner/internal/routes"
	"infinite-experiment/routeplanner/internal/services"
	"infinite-experiment/routeplanner/internal/store"
	"infinite-experiment/routeplanner/internal/workers"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 15 * time.Second

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	if err := logging.Init(cfg.AppEnv, logging.FileOptions{Path: cfg.LogFile}); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Route planner starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	if err := run(cfg); err != nil {
		logging.Error("Route planner stopped with error", "error", err)
		_ = logging.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	aircraftDB, err := db.OpenAircraftDB(cfg.AircraftDBDriver, cfg.AircraftDBDSN, cfg.AutoMigrate)
	if err != nil {
		return err
	}
	if sqlDB, err := aircraftDB.DB(); err == nil {
		defer sqlDB.Close()
	}
	logging.Info("Connected to aircraft database", "driver", cfg.AircraftDBDriver)

	airportDB, err := db.OpenAirportDB(cfg.AirportDBDriver, cfg.AirportDBDSN, cfg.AutoMigrate)
	if err != nil {
		return err
	}
	defer airportDB.Close()
	logging.Info("Connected to airport database", "driver", cfg.AirportDBDriver)

	metricsReg := metrics.NewMetricsRegistry(prometheus.DefaultRegisterer)
	pool := store.NewDatabasePool(aircraftDB, airportDB, metricsReg)

	ix, err := index.Load(ctx, pool)
	if err != nil {
		return err
	}

	fleet := services.NewFleetService(pool, metricsReg)
	if err := fleet.Reload(ctx); err != nil {
		return err
	}

	cache, cachePinger, err := newCache(cfg)
	if err != nil {
		return err
	}
	defer cache.Close()

	stats := services.NewStatisticsService(pool, fleet, cache, cfg.StatsCacheTTL, metricsReg)
	generator := planner.NewGenerator(ix, cfg.RouteWorkers, metricsReg)

	deps := &api.Dependencies{
		Services: &api.Services{
			Routes:   services.NewRouteService(generator, fleet, cfg.RouteCount),
			Flights:  services.NewFlightService(pool, ix, fleet, stats),
			History:  services.NewHistoryService(pool, ix, fleet),
			Stats:    stats,
			Fleet:    fleet,
			Airports: ix,
		},
		Health: api.HealthDeps{
			Store:    pool,
			Cache:    cachePinger,
			Airports: ix.Len,
			Fleet:    func() int { return len(fleet.Aircraft()) },
			UpSince:  time.Now(),
		},
	}

	bg := workers.InitWorkers(ctx, stats, fleet, cfg.StatsWarmInterval, cfg.FleetReloadInterval)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, "127.0.0.1", "::1")
	router := routes.RegisterRoutes(deps, metricsReg, limiter)

	// Setup metrics endpoint outside of Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logging.Info("Server starting", "addr", cfg.HTTPAddr, "environment", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		stop()
		bg.Wait()
		return err
	case <-ctx.Done():
	}

	logging.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	bg.Wait()
	return nil
}

// newCache returns the statistics cache and, for redis, a pinger for the
// health check.
func newCache(cfg *config.Config) (common.CacheInterface, api.Pinger, error) {
	if cfg.CacheBackend != config.CacheBackendRedis {
		return common.NewCacheService(cfg.StatsCacheTTL, 2*cfg.StatsCacheTTL), nil, nil
	}
	redisCache, err := common.NewRedisCacheService(cfg.RedisAddr(), cfg.RedisPassword)
	if err != nil {
		return nil, nil, err
	}
	return redisCache, redisCache, nil
}
