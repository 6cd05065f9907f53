package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"infinite-experiment/routeplanner/internal/common"
	"infinite-experiment/routeplanner/internal/constants"
	"infinite-experiment/routeplanner/internal/geo"
	"infinite-experiment/routeplanner/internal/index"
	"infinite-experiment/routeplanner/internal/logging"
	"infinite-experiment/routeplanner/internal/models/entities"
	gormModels "infinite-experiment/routeplanner/internal/models/gorm"
	"infinite-experiment/routeplanner/internal/store"
)

// FlightOperations is the part of the store FlightService writes through.
type FlightOperations interface {
	store.AircraftOperations
	store.HistoryOperations
}

// ValidationError is a bad request from the caller. Code is one of the
// constants.ErrCode values.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(code, format string, args ...any) *ValidationError {
	return &ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// FlightService records completed flights and maintains the flown flags.
type FlightService struct {
	store FlightOperations
	index *index.Index
	fleet *FleetService
	stats *StatisticsService
	now   func() time.Time
}

func NewFlightService(ops FlightOperations, ix *index.Index, fleet *FleetService, stats *StatisticsService) *FlightService {
	return &FlightService{
		store: ops,
		index: ix,
		fleet: fleet,
		stats: stats,
		now:   time.Now,
	}
}

// MarkRouteFlown logs the flight in the history and marks the aircraft
// flown today (UTC).
func (s *FlightService) MarkRouteFlown(ctx context.Context, departureICAO, destinationICAO string, aircraftID int32) error {
	dep, dst, err := s.resolvePair(departureICAO, destinationICAO)
	if err != nil {
		return err
	}
	ac, err := s.aircraft(ctx, aircraftID)
	if err != nil {
		return err
	}

	distance := distanceBetween(dep, dst)
	if err := s.store.AddToHistory(ctx, dep, dst, ac, distance); err != nil {
		return fmt.Errorf("failed to add history entry: %w", err)
	}

	today := common.FormatDateUTC(s.now())
	ac.Flown = 1
	ac.DateFlown = &today
	if err := s.store.UpdateAircraft(ctx, ac); err != nil {
		return fmt.Errorf("failed to mark aircraft %d flown: %w", ac.ID, err)
	}

	logging.Info("Route marked as flown",
		"departure", dep.ICAO,
		"destination", dst.ICAO,
		"aircraft_id", ac.ID,
		"distance_nm", distance,
	)
	return s.afterWrite(ctx)
}

// ToggleAircraftFlown flips the flown flag. Marking flown stamps today's
// UTC date; marking not flown clears it.
func (s *FlightService) ToggleAircraftFlown(ctx context.Context, aircraftID int32) (*gormModels.Aircraft, error) {
	ac, err := s.aircraft(ctx, aircraftID)
	if err != nil {
		return nil, err
	}

	if ac.IsFlown() {
		ac.Flown = 0
		ac.DateFlown = nil
	} else {
		today := common.FormatDateUTC(s.now())
		ac.Flown = 1
		ac.DateFlown = &today
	}

	if err := s.store.UpdateAircraft(ctx, ac); err != nil {
		return nil, fmt.Errorf("failed to update aircraft %d: %w", ac.ID, err)
	}
	return ac, s.afterWrite(ctx)
}

// MarkAllNotFlown resets the whole fleet in one statement.
func (s *FlightService) MarkAllNotFlown(ctx context.Context) error {
	if err := s.store.MarkAllAircraftNotFlown(ctx); err != nil {
		return fmt.Errorf("failed to reset fleet: %w", err)
	}
	logging.Info("All aircraft marked as not flown")
	return s.afterWrite(ctx)
}

// AddHistoryEntry logs a flight without touching the aircraft's flown flag.
func (s *FlightService) AddHistoryEntry(ctx context.Context, departureICAO, arrivalICAO string, aircraftID int32) error {
	dep, arr, err := s.resolvePair(departureICAO, arrivalICAO)
	if err != nil {
		return err
	}
	ac, err := s.aircraft(ctx, aircraftID)
	if err != nil {
		return err
	}

	if err := s.store.AddToHistory(ctx, dep, arr, ac, distanceBetween(dep, arr)); err != nil {
		return fmt.Errorf("failed to add history entry: %w", err)
	}
	s.stats.Invalidate()
	return nil
}

func (s *FlightService) resolvePair(departureICAO, arrivalICAO string) (*entities.Airport, *entities.Airport, error) {
	dep, ok := s.index.AirportByICAO(departureICAO)
	if !ok {
		return nil, nil, newValidationError(constants.ErrCodeAirportNotFound, "unknown airport %q", departureICAO)
	}
	arr, ok := s.index.AirportByICAO(arrivalICAO)
	if !ok {
		return nil, nil, newValidationError(constants.ErrCodeAirportNotFound, "unknown airport %q", arrivalICAO)
	}
	if dep.Airport.ID == arr.Airport.ID {
		return nil, nil, newValidationError(constants.ErrCodeInvalidAirport, "departure and arrival are both %s",
			strings.ToUpper(departureICAO))
	}
	return dep.Airport, arr.Airport, nil
}

// aircraft loads a fresh copy so the shared fleet snapshot is never
// modified.
func (s *FlightService) aircraft(ctx context.Context, id int32) (*gormModels.Aircraft, error) {
	ac, err := s.store.GetAircraftByID(ctx, id)
	if store.IsNotFound(err) {
		return nil, newValidationError(constants.ErrCodeAircraftNotFound, "aircraft %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load aircraft %d: %w", id, err)
	}
	return ac, nil
}

func (s *FlightService) afterWrite(ctx context.Context) error {
	s.stats.Invalidate()
	return s.fleet.Reload(ctx)
}

func distanceBetween(a, b *entities.Airport) int {
	return geo.DistanceNM(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}
