// Package planner generates random flight routes from the in-memory airport
// indexes: a departure with a long enough runway, a destination within the
// aircraft's range, and the distance between them.
package planner

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"infinite-experiment/routeplanner/internal/constants"
	"infinite-experiment/routeplanner/internal/index"
	"infinite-experiment/routeplanner/internal/logging"
	"infinite-experiment/routeplanner/internal/metrics"
	"infinite-experiment/routeplanner/internal/models/dtos"
	"infinite-experiment/routeplanner/internal/models/gorm"
	"infinite-experiment/routeplanner/internal/rand"

	"golang.org/x/sync/errgroup"
)

type Generator struct {
	ix       *index.Index
	selector *Selector
	workers  int
	metrics  *metrics.MetricsRegistry
	newSeed  func() uint64
}

// NewGenerator returns a generator running up to workers attempts at once;
// workers <= 0 means GOMAXPROCS. metricsReg may be nil.
func NewGenerator(ix *index.Index, workers int, metricsReg *metrics.MetricsRegistry) *Generator {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Generator{
		ix:       ix,
		selector: NewSelector(ix),
		workers:  workers,
		metrics:  metricsReg,
		newSeed:  rand.NewSeed,
	}
}

func (g *Generator) Index() *index.Index {
	return g.ix
}

// Generate makes n independent attempts and returns the routes that
// succeeded, so the batch may be short or empty. Each attempt picks a random
// aircraft from the pool. A non-empty departure pins every route to that
// airport. The only error is cancellation of ctx.
func (g *Generator) Generate(ctx context.Context, mode constants.RouteMode, aircraft []*gorm.Aircraft, departure string, n int) ([]dtos.Route, error) {
	start := time.Now()
	if n <= 0 {
		return []dtos.Route{}, nil
	}

	workers := min(g.workers, n)
	seed := g.newSeed()

	var claimed atomic.Int64
	results := make([][]dtos.Route, workers)
	failures := make([]map[string]int, workers)

	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		eg.Go(func() error {
			r := rand.New(seed, uint64(w))
			failed := make(map[string]int)
			failures[w] = failed

			for claimed.Add(1) <= int64(n) {
				if err := ctx.Err(); err != nil {
					return err
				}
				route, err := g.attempt(r, aircraft, departure)
				if err != nil {
					failed[failureReason(err)]++
					continue
				}
				results[w] = append(results[w], route)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	routes := make([]dtos.Route, 0, n)
	merged := make(map[string]int)
	for w := 0; w < workers; w++ {
		routes = append(routes, results[w]...)
		for reason, count := range failures[w] {
			merged[reason] += count
		}
	}

	g.metrics.RouteBatch(string(mode), start, len(routes), merged)
	logging.Info("Generated routes",
		"mode", mode,
		"requested", n,
		"produced", len(routes),
		"duration_ms", time.Since(start).Milliseconds(),
		"aircraft_pool", len(aircraft),
		"departure", departure,
	)
	return routes, nil
}

// attempt is one independent try at producing a route.
func (g *Generator) attempt(r *rand.Rand, aircraft []*gorm.Aircraft, departure string) (dtos.Route, error) {
	if len(aircraft) == 0 {
		return dtos.Route{}, ErrNoAircraft
	}
	ac := rand.Sample(r, aircraft)

	dep, err := g.selector.SelectDeparture(r, ac, departure)
	if err != nil {
		return dtos.Route{}, err
	}
	depRunway, ok := g.ix.Runways.LongestRunway(dep.Airport.ID)
	if !ok {
		return dtos.Route{}, ErrNoSuitableRunway.withDetails("no runway data for %s", dep.Airport.ICAO)
	}

	candidates, err := g.selector.Destinations(ac, dep)
	if err != nil {
		return dtos.Route{}, err
	}
	dst := rand.Sample(r, candidates)

	distance := dep.DistanceTo(dst.CachedAirport)
	if distance > int(ac.AircraftRange) {
		return dtos.Route{}, ErrDistanceExceeded.withDetails("%s to %s is %d NM, range %d NM",
			dep.Airport.ICAO, dst.Airport.ICAO, distance, ac.AircraftRange)
	}

	return dtos.NewRoute(dep.Airport, dst.Airport, ac, depRunway, dst.LongestRunway, distance), nil
}

// GenerateRandomRoutes draws aircraft from the whole fleet.
func (g *Generator) GenerateRandomRoutes(ctx context.Context, fleet []*gorm.Aircraft, departure string, n int) ([]dtos.Route, error) {
	return g.Generate(ctx, constants.RouteModeAll, fleet, departure, n)
}

// GenerateNotFlownRoutes draws aircraft only from those not yet flown.
func (g *Generator) GenerateNotFlownRoutes(ctx context.Context, fleet []*gorm.Aircraft, departure string, n int) ([]dtos.Route, error) {
	notFlown := make([]*gorm.Aircraft, 0, len(fleet))
	for _, ac := range fleet {
		if !ac.IsFlown() {
			notFlown = append(notFlown, ac)
		}
	}
	return g.Generate(ctx, constants.RouteModeNotFlown, notFlown, departure, n)
}

// GenerateRoutesForAircraft uses a single aircraft for every route.
func (g *Generator) GenerateRoutesForAircraft(ctx context.Context, ac *gorm.Aircraft, departure string, n int) ([]dtos.Route, error) {
	var pool []*gorm.Aircraft
	if ac != nil {
		pool = []*gorm.Aircraft{ac}
	}
	return g.Generate(ctx, constants.RouteModeAircraft, pool, departure, n)
}
