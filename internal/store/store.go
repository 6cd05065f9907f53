// Package store is the persistence adapter the route planner reads its
// fleet, navdata and flight history through.
package store

import (
	"context"
	"sync"
	"time"

	"infinite-experiment/routeplanner/internal/common"
	"infinite-experiment/routeplanner/internal/db/repositories"
	"infinite-experiment/routeplanner/internal/metrics"
	"infinite-experiment/routeplanner/internal/models/entities"
	gormModels "infinite-experiment/routeplanner/internal/models/gorm"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

type AircraftOperations interface {
	GetAllAircraft(ctx context.Context) ([]gormModels.Aircraft, error)
	GetAircraftByID(ctx context.Context, id int32) (*gormModels.Aircraft, error)
	RandomAircraft(ctx context.Context) (*gormModels.Aircraft, error)
	RandomNotFlownAircraft(ctx context.Context) (*gormModels.Aircraft, error)
	// UpdateAircraft writes the flown flag and date flown back.
	UpdateAircraft(ctx context.Context, aircraft *gormModels.Aircraft) error
	MarkAllAircraftNotFlown(ctx context.Context) error
	GetNotFlownCount(ctx context.Context) (int32, error)
}

type AirportOperations interface {
	GetAllAirports(ctx context.Context) ([]entities.Airport, error)
	GetAllRunways(ctx context.Context) ([]entities.Runway, error)
	GetAirportByICAO(ctx context.Context, icao string) (*entities.Airport, error)
}

type HistoryOperations interface {
	// AddToHistory stamps the current UTC date.
	AddToHistory(ctx context.Context, departure, arrival *entities.Airport, aircraft *gormModels.Aircraft, distanceNM int) error
	// GetHistory returns entries most recent first.
	GetHistory(ctx context.Context) ([]gormModels.History, error)
}

type DatabaseOperations interface {
	AircraftOperations
	AirportOperations
	HistoryOperations
	Ping(ctx context.Context) error
}

// DatabasePool implements DatabaseOperations over the aircraft database
// (GORM) and the airport database (sqlx). Writes are serialized.
type DatabasePool struct {
	aircraftDB *gorm.DB
	aircraft   *repositories.AircraftRepository
	history    *repositories.HistoryRepository
	airports   *repositories.AirportRepository
	metrics    *metrics.MetricsRegistry

	writeMu sync.Mutex
	now     func() time.Time
}

var _ DatabaseOperations = (*DatabasePool)(nil)

// NewDatabasePool wires the repositories. metricsReg may be nil.
func NewDatabasePool(aircraftDB *gorm.DB, airportDB *sqlx.DB, metricsReg *metrics.MetricsRegistry) *DatabasePool {
	return &DatabasePool{
		aircraftDB: aircraftDB,
		aircraft:   repositories.NewAircraftRepository(aircraftDB),
		history:    repositories.NewHistoryRepository(aircraftDB),
		airports:   repositories.NewAirportRepository(airportDB),
		metrics:    metricsReg,
		now:        time.Now,
	}
}

// observe finishes an operation: it records metrics and classifies err.
func (p *DatabasePool) observe(op string, start time.Time, err error) error {
	p.metrics.ObserveQuery(op, start)
	err = wrap(op, err)
	if se, ok := err.(*Error); ok {
		p.metrics.QueryFailed(op, se.Kind.String())
	}
	return err
}

func (p *DatabasePool) GetAllAircraft(ctx context.Context) ([]gormModels.Aircraft, error) {
	start := time.Now()
	aircraft, err := p.aircraft.GetAll(ctx)
	return aircraft, p.observe("get_all_aircraft", start, err)
}

func (p *DatabasePool) GetAircraftByID(ctx context.Context, id int32) (*gormModels.Aircraft, error) {
	start := time.Now()
	aircraft, err := p.aircraft.GetByID(ctx, id)
	return aircraft, p.observe("get_aircraft_by_id", start, err)
}

func (p *DatabasePool) RandomAircraft(ctx context.Context) (*gormModels.Aircraft, error) {
	start := time.Now()
	aircraft, err := p.aircraft.GetRandom(ctx)
	return aircraft, p.observe("random_aircraft", start, err)
}

func (p *DatabasePool) RandomNotFlownAircraft(ctx context.Context) (*gormModels.Aircraft, error) {
	start := time.Now()
	aircraft, err := p.aircraft.GetRandomNotFlown(ctx)
	return aircraft, p.observe("random_not_flown_aircraft", start, err)
}

func (p *DatabasePool) UpdateAircraft(ctx context.Context, aircraft *gormModels.Aircraft) error {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	start := time.Now()
	return p.observe("update_aircraft", start, p.aircraft.UpdateFlown(ctx, aircraft))
}

func (p *DatabasePool) MarkAllAircraftNotFlown(ctx context.Context) error {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	start := time.Now()
	return p.observe("mark_all_aircraft_not_flown", start, p.aircraft.MarkAllNotFlown(ctx))
}

func (p *DatabasePool) GetNotFlownCount(ctx context.Context) (int32, error) {
	start := time.Now()
	count, err := p.aircraft.CountNotFlown(ctx)
	return int32(count), p.observe("get_not_flown_count", start, err)
}

func (p *DatabasePool) GetAllAirports(ctx context.Context) ([]entities.Airport, error) {
	start := time.Now()
	airports, err := p.airports.GetAll(ctx)
	return airports, p.observe("get_all_airports", start, err)
}

func (p *DatabasePool) GetAllRunways(ctx context.Context) ([]entities.Runway, error) {
	start := time.Now()
	runways, err := p.airports.GetAllRunways(ctx)
	return runways, p.observe("get_all_runways", start, err)
}

func (p *DatabasePool) GetAirportByICAO(ctx context.Context, icao string) (*entities.Airport, error) {
	start := time.Now()
	airport, err := p.airports.FindByICAO(ctx, icao)
	return airport, p.observe("get_airport_by_icao", start, err)
}

func (p *DatabasePool) AddToHistory(ctx context.Context, departure, arrival *entities.Airport, aircraft *gormModels.Aircraft, distanceNM int) error {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	distance := int32(distanceNM)
	entry := &gormModels.History{
		DepartureICAO: departure.ICAO,
		ArrivalICAO:   arrival.ICAO,
		AircraftID:    aircraft.ID,
		Date:          common.FormatDateUTC(p.now()),
		Distance:      &distance,
	}

	start := time.Now()
	return p.observe("add_to_history", start, p.history.Insert(ctx, entry))
}

func (p *DatabasePool) GetHistory(ctx context.Context) ([]gormModels.History, error) {
	start := time.Now()
	history, err := p.history.GetAll(ctx)
	return history, p.observe("get_history", start, err)
}

// Ping checks both databases.
func (p *DatabasePool) Ping(ctx context.Context) error {
	sqlDB, err := p.aircraftDB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		return wrap("ping_aircraft_db", err)
	}
	return wrap("ping_airport_db", p.airports.Ping(ctx))
}
