// Package index holds the immutable in-memory airport indexes the route
// generator queries: a spatial R-tree, a runway-length ordering and lookup
// maps. An Index is built once and shared by pointer across goroutines.
package index

import (
	"context"
	"fmt"
	"strings"

	"infinite-experiment/routeplanner/internal/logging"
	"infinite-experiment/routeplanner/internal/models/entities"
	"infinite-experiment/routeplanner/internal/rand"
	"infinite-experiment/routeplanner/internal/store"

	"golang.org/x/sync/errgroup"
)

type Index struct {
	airports []*CachedAirport
	byICAO   map[string]*CachedAirport
	byID     map[int32]*CachedAirport
	runways  map[int32][]entities.Runway

	Spatial *SpatialIndex
	Runways *RunwayIndex
}

// Build indexes airports and runways. Runways referencing unknown airports
// are skipped, as are airports repeating an ICAO code already seen.
func Build(airports []entities.Airport, runways []entities.Runway) (*Index, error) {
	owned := make([]entities.Airport, len(airports))
	copy(owned, airports)

	ix := &Index{
		airports: make([]*CachedAirport, 0, len(owned)),
		byICAO:   make(map[string]*CachedAirport, len(owned)),
		byID:     make(map[int32]*CachedAirport, len(owned)),
		runways:  make(map[int32][]entities.Runway),
	}

	known := make(map[int32]bool, len(owned))
	for i := range owned {
		known[owned[i].ID] = true
	}

	longest := make(map[int32]int)
	orphans := 0
	for _, rw := range runways {
		if !known[rw.AirportID] {
			orphans++
			continue
		}
		ix.runways[rw.AirportID] = append(ix.runways[rw.AirportID], rw)
		if l := int(rw.Length); l > longest[rw.AirportID] {
			longest[rw.AirportID] = l
		}
	}

	duplicates := 0
	for i := range owned {
		a := &owned[i]
		a.ICAO = strings.ToUpper(strings.TrimSpace(a.ICAO))
		if _, dup := ix.byICAO[a.ICAO]; dup {
			duplicates++
			continue
		}
		c := NewCachedAirport(a, longest[a.ID])
		ix.airports = append(ix.airports, c)
		ix.byICAO[a.ICAO] = c
		ix.byID[a.ID] = c
	}

	if orphans > 0 || duplicates > 0 {
		logging.Warn("Skipped inconsistent navdata rows",
			"orphan_runways", orphans,
			"duplicate_icao", duplicates,
		)
	}

	var eg errgroup.Group
	eg.Go(func() error {
		ix.Spatial = NewSpatialIndex(ix.airports)
		return nil
	})
	eg.Go(func() error {
		ix.Runways = NewRunwayIndex(ix.airports)
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build airport indexes: %w", err)
	}

	return ix, nil
}

// Load reads navdata through the store and builds an Index.
func Load(ctx context.Context, ops store.AirportOperations) (*Index, error) {
	var (
		airports []entities.Airport
		runways  []entities.Runway
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		airports, err = ops.GetAllAirports(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		runways, err = ops.GetAllRunways(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load navdata: %w", err)
	}

	ix, err := Build(airports, runways)
	if err != nil {
		return nil, err
	}

	logging.Info("Airport indexes built",
		"airports", ix.Len(),
		"runways", len(runways),
	)
	return ix, nil
}

func (ix *Index) Len() int {
	return len(ix.airports)
}

// Airports returns every indexed airport. The slice must not be modified.
func (ix *Index) Airports() []*CachedAirport {
	return ix.airports
}

// AirportByICAO looks up an airport case-insensitively.
func (ix *Index) AirportByICAO(icao string) (*CachedAirport, bool) {
	c, ok := ix.byICAO[strings.ToUpper(strings.TrimSpace(icao))]
	return c, ok
}

func (ix *Index) AirportByID(id int32) (*CachedAirport, bool) {
	c, ok := ix.byID[id]
	return c, ok
}

// RunwaysFor returns an airport's runways. The slice must not be modified.
func (ix *Index) RunwaysFor(airportID int32) []entities.Runway {
	return ix.runways[airportID]
}

// RandomAirports returns n distinct airports, or n draws with replacement
// when n exceeds the number of airports.
func (ix *Index) RandomAirports(r *rand.Rand, n int) []*entities.Airport {
	picked := rand.SampleDistinct(r, ix.airports, n)
	out := make([]*entities.Airport, len(picked))
	for i, c := range picked {
		out[i] = c.Airport
	}
	return out
}
