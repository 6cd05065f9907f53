package services

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"time"

	"infinite-experiment/routeplanner/internal/common"
	"infinite-experiment/routeplanner/internal/constants"
	"infinite-experiment/routeplanner/internal/logging"
	"infinite-experiment/routeplanner/internal/metrics"
	"infinite-experiment/routeplanner/internal/models/dtos"
	gormModels "infinite-experiment/routeplanner/internal/models/gorm"
	"infinite-experiment/routeplanner/internal/store"
)

var statisticsCacheKey = string(constants.CachePrefixStatistics) + "summary"

type StatisticsService struct {
	history store.HistoryOperations
	fleet   *FleetService
	cache   common.CacheInterface
	ttl     time.Duration
	metrics *metrics.MetricsRegistry
}

func NewStatisticsService(
	history store.HistoryOperations,
	fleet *FleetService,
	cache common.CacheInterface,
	ttl time.Duration,
	metricsReg *metrics.MetricsRegistry,
) *StatisticsService {
	return &StatisticsService{
		history: history,
		fleet:   fleet,
		cache:   cache,
		ttl:     ttl,
		metrics: metricsReg,
	}
}

// GetStatistics returns the cached statistics, computing them on a miss.
func (s *StatisticsService) GetStatistics(ctx context.Context) (*dtos.FlightStatistics, error) {
	stats, hit, err := common.GetOrSet(s.cache, statisticsCacheKey, s.ttl, func() (dtos.FlightStatistics, error) {
		return s.compute(ctx)
	})
	s.metrics.CacheLookup(string(constants.CachePrefixStatistics), hit)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Refresh recomputes the statistics and overwrites the cached copy.
func (s *StatisticsService) Refresh(ctx context.Context) error {
	stats, err := s.compute(ctx)
	if err != nil {
		return err
	}
	s.cache.Set(statisticsCacheKey, stats, s.ttl)
	return nil
}

// Invalidate drops the cached statistics after a history or fleet write.
func (s *StatisticsService) Invalidate() {
	s.cache.Delete(statisticsCacheKey)
}

func (s *StatisticsService) compute(ctx context.Context) (dtos.FlightStatistics, error) {
	history, err := s.history.GetHistory(ctx)
	if err != nil {
		return dtos.FlightStatistics{}, fmt.Errorf("failed to load history: %w", err)
	}
	stats := CalculateStatistics(history, s.fleet.AircraftByID)
	logging.Debug("Statistics computed", "flights", stats.TotalFlights)
	return stats, nil
}

// CalculateStatistics summarises history in one pass. Counting ties go to
// the smaller key (aircraft id or ICAO code). On equal distances the longest
// flight is the last such record and the shortest the first.
func CalculateStatistics(history []gormModels.History, lookup func(int32) (*gormModels.Aircraft, bool)) dtos.FlightStatistics {
	if len(history) == 0 {
		return dtos.FlightStatistics{}
	}

	total := 0
	minDist, maxDist := math.MaxInt, math.MinInt
	var shortest, longest *gormModels.History

	aircraftCounts := map[int32]int{}
	departureCounts := map[string]int{}
	arrivalCounts := map[string]int{}
	visitCounts := map[string]int{}

	for i := range history {
		h := &history[i]
		dist := 0
		if h.Distance != nil {
			dist = int(*h.Distance)
		}
		total += dist

		if dist < minDist {
			minDist = dist
			shortest = h
		}
		if dist >= maxDist {
			maxDist = dist
			longest = h
		}

		aircraftCounts[h.AircraftID]++
		departureCounts[h.DepartureICAO]++
		arrivalCounts[h.ArrivalICAO]++
		visitCounts[h.DepartureICAO]++
		visitCounts[h.ArrivalICAO]++
	}

	stats := dtos.FlightStatistics{
		TotalFlights:             len(history),
		TotalDistance:            total,
		AverageFlightDistance:    float64(total) / float64(len(history)),
		LongestFlight:            longest.DepartureICAO + " to " + longest.ArrivalICAO,
		ShortestFlight:           shortest.DepartureICAO + " to " + shortest.ArrivalICAO,
		FavoriteDepartureAirport: mostFrequent(departureCounts),
		FavoriteArrivalAirport:   mostFrequent(arrivalCounts),
		MostVisitedAirport:       mostFrequent(visitCounts),
	}

	if len(aircraftCounts) > 0 {
		if ac, ok := lookup(mostFrequent(aircraftCounts)); ok {
			stats.MostFlownAircraft = ac.DisplayName()
		}
	}
	return stats
}

// mostFrequent returns the key with the highest count, the smallest key
// among equals. counts must not be empty.
func mostFrequent[K cmp.Ordered](counts map[K]int) K {
	var (
		best      K
		bestCount = -1
	)
	for k, n := range counts {
		if n > bestCount || (n == bestCount && k < best) {
			best, bestCount = k, n
		}
	}
	return best
}
