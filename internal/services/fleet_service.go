package services

import (
	"context"
	"fmt"
	"sync/atomic"

	"infinite-experiment/routeplanner/internal/common"
	"infinite-experiment/routeplanner/internal/logging"
	"infinite-experiment/routeplanner/internal/metrics"
	"infinite-experiment/routeplanner/internal/models/dtos"
	gormModels "infinite-experiment/routeplanner/internal/models/gorm"
	"infinite-experiment/routeplanner/internal/store"
)

// fleetSnapshot is never modified once published; Reload swaps in a new one.
type fleetSnapshot struct {
	aircraft []*gormModels.Aircraft
	byID     map[int32]*gormModels.Aircraft
	notFlown int
}

// FleetService keeps an in-memory copy of the fleet that route generation
// reads without touching the database.
type FleetService struct {
	store    store.AircraftOperations
	metrics  *metrics.MetricsRegistry
	snapshot atomic.Pointer[fleetSnapshot]
}

func NewFleetService(ops store.AircraftOperations, metricsReg *metrics.MetricsRegistry) *FleetService {
	s := &FleetService{store: ops, metrics: metricsReg}
	s.snapshot.Store(&fleetSnapshot{byID: map[int32]*gormModels.Aircraft{}})
	return s
}

// Reload replaces the snapshot with the current database contents.
func (s *FleetService) Reload(ctx context.Context) error {
	rows, err := s.store.GetAllAircraft(ctx)
	if err != nil {
		return fmt.Errorf("failed to load fleet: %w", err)
	}

	snap := &fleetSnapshot{
		aircraft: make([]*gormModels.Aircraft, len(rows)),
		byID:     make(map[int32]*gormModels.Aircraft, len(rows)),
	}
	for i := range rows {
		ac := &rows[i]
		snap.aircraft[i] = ac
		snap.byID[ac.ID] = ac
		if !ac.IsFlown() {
			snap.notFlown++
		}
	}
	s.snapshot.Store(snap)
	s.metrics.SetNotFlown(snap.notFlown)

	logging.Debug("Fleet reloaded", "aircraft", len(rows), "not_flown", snap.notFlown)
	return nil
}

// Aircraft returns the fleet ordered by id. The slice must not be modified.
func (s *FleetService) Aircraft() []*gormModels.Aircraft {
	return s.snapshot.Load().aircraft
}

func (s *FleetService) AircraftByID(id int32) (*gormModels.Aircraft, bool) {
	ac, ok := s.snapshot.Load().byID[id]
	return ac, ok
}

func (s *FleetService) NotFlownCount() int {
	return s.snapshot.Load().notFlown
}

// RandomAircraft picks a random aircraft in the database, optionally only
// among those not flown.
func (s *FleetService) RandomAircraft(ctx context.Context, notFlown bool) (*gormModels.Aircraft, error) {
	if notFlown {
		return s.store.RandomNotFlownAircraft(ctx)
	}
	return s.store.RandomAircraft(ctx)
}

// AircraftName is "Manufacturer Variant", or a placeholder for ids not in
// the fleet.
func (s *FleetService) AircraftName(id int32) string {
	if ac, ok := s.AircraftByID(id); ok {
		return ac.DisplayName()
	}
	return fmt.Sprintf("Unknown Aircraft (ID: %d)", id)
}

// Fleet renders the snapshot for the API.
func (s *FleetService) Fleet() dtos.FleetResponse {
	snap := s.snapshot.Load()
	resp := dtos.FleetResponse{
		Aircraft:      make([]dtos.AircraftResponse, 0, len(snap.aircraft)),
		NotFlownCount: snap.notFlown,
	}
	for _, ac := range snap.aircraft {
		resp.Aircraft = append(resp.Aircraft, NewAircraftResponse(ac))
	}
	return resp
}

func NewAircraftResponse(ac *gormModels.Aircraft) dtos.AircraftResponse {
	return dtos.AircraftResponse{
		ID:              ac.ID,
		Name:            ac.DisplayName(),
		IcaoCode:        ac.IcaoCode,
		Flown:           ac.IsFlown(),
		Range:           ac.AircraftRange,
		Category:        ac.Category,
		CruiseSpeed:     ac.CruiseSpeed,
		DateFlown:       common.FormatOptionalDate(ac.DateFlown),
		TakeoffDistance: ac.TakeoffDistance,
		Description:     FormatAircraft(ac),
	}
}

// FormatAircraft describes an aircraft on one line, e.g.
// "id: 1, Boeing 737-800 (B738), range: 3000, category: A, cruise speed: 450
// knots, takeoff distance: 2000 m".
func FormatAircraft(ac *gormModels.Aircraft) string {
	icao := ""
	if ac.IcaoCode != "" {
		icao = " (" + ac.IcaoCode + ")"
	}
	takeoff := "unknown"
	if ac.TakeoffDistance != nil {
		takeoff = fmt.Sprintf("%d m", *ac.TakeoffDistance)
	}
	return fmt.Sprintf("id: %d, %s %s%s, range: %d, category: %s, cruise speed: %d knots, takeoff distance: %s",
		ac.ID, ac.Manufacturer, ac.Variant, icao, ac.AircraftRange, ac.Category, ac.CruiseSpeed, takeoff)
}
