package repositories

import (
	"context"
	"fmt"

	"infinite-experiment/routeplanner/internal/constants"
	"infinite-experiment/routeplanner/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// AirportRepository reads the navdata Airports and Runways tables
type AirportRepository struct {
	db *sqlx.DB
}

func NewAirportRepository(db *sqlx.DB) *AirportRepository {
	return &AirportRepository{db}
}

func (r *AirportRepository) GetAll(ctx context.Context) ([]entities.Airport, error) {
	var airports []entities.Airport

	if err := r.db.SelectContext(ctx, &airports, constants.SelectAllAirports); err != nil {
		return nil, fmt.Errorf("failed to fetch airports: %w", err)
	}

	return airports, nil
}

// FindByICAO looks up an airport case-insensitively. A missing airport
// yields sql.ErrNoRows.
func (r *AirportRepository) FindByICAO(ctx context.Context, icao string) (*entities.Airport, error) {
	var airport entities.Airport

	query := r.db.Rebind(constants.SelectAirportByICAO)
	if err := r.db.QueryRowxContext(ctx, query, icao).StructScan(&airport); err != nil {
		return nil, fmt.Errorf("failed to fetch airport %s: %w", icao, err)
	}

	return &airport, nil
}

func (r *AirportRepository) GetAllRunways(ctx context.Context) ([]entities.Runway, error) {
	var runways []entities.Runway

	if err := r.db.SelectContext(ctx, &runways, constants.SelectAllRunways); err != nil {
		return nil, fmt.Errorf("failed to fetch runways: %w", err)
	}

	return runways, nil
}

func (r *AirportRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, constants.CountAirports); err != nil {
		return 0, fmt.Errorf("failed to count airports: %w", err)
	}
	return count, nil
}

// Ping checks the connection, used by the health endpoint
func (r *AirportRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
