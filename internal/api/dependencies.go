package api

import (
	"context"
	"time"

	"infinite-experiment/routeplanner/internal/index"
	"infinite-experiment/routeplanner/internal/models/dtos"
	"infinite-experiment/routeplanner/internal/models/entities"
	gormModels "infinite-experiment/routeplanner/internal/models/gorm"
	"infinite-experiment/routeplanner/internal/services"
)

type RouteGenerator interface {
	GenerateRoutes(ctx context.Context, req services.RouteRequest) ([]dtos.Route, error)
}

type FlightRecorder interface {
	MarkRouteFlown(ctx context.Context, departureICAO, destinationICAO string, aircraftID int32) error
	AddHistoryEntry(ctx context.Context, departureICAO, arrivalICAO string, aircraftID int32) error
	ToggleAircraftFlown(ctx context.Context, aircraftID int32) (*gormModels.Aircraft, error)
	MarkAllNotFlown(ctx context.Context) error
}

type HistoryLister interface {
	List(ctx context.Context, opts services.ListOptions) ([]dtos.HistoryItem, error)
}

type StatisticsProvider interface {
	GetStatistics(ctx context.Context) (*dtos.FlightStatistics, error)
}

type FleetProvider interface {
	Fleet() dtos.FleetResponse
	RandomAircraft(ctx context.Context, notFlown bool) (*gormModels.Aircraft, error)
}

type AirportFinder interface {
	AirportByICAO(icao string) (*index.CachedAirport, bool)
	RunwaysFor(airportID int32) []entities.Runway
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// Services bundles what the handlers call into.
type Services struct {
	Routes   RouteGenerator
	Flights  FlightRecorder
	History  HistoryLister
	Stats    StatisticsProvider
	Fleet    FleetProvider
	Airports AirportFinder
}

// HealthDeps feeds the health check. Cache is nil for the in-memory cache.
type HealthDeps struct {
	Store    Pinger
	Cache    Pinger
	Airports func() int
	Fleet    func() int
	UpSince  time.Time
}

type Dependencies struct {
	Services *Services
	Health   HealthDeps
}
