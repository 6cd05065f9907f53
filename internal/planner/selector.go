package planner

import (
	"math"

	"infinite-experiment/routeplanner/internal/constants"
	"infinite-experiment/routeplanner/internal/geo"
	"infinite-experiment/routeplanner/internal/index"
	"infinite-experiment/routeplanner/internal/models/gorm"
	"infinite-experiment/routeplanner/internal/rand"
)

// RequiredRunwayFeet converts the aircraft's takeoff distance to the runway
// length it needs. Aircraft without a takeoff distance fit any runway.
func RequiredRunwayFeet(ac *gorm.Aircraft) int {
	if ac.TakeoffDistance == nil || *ac.TakeoffDistance <= 0 {
		return 0
	}
	return int(math.Ceil(float64(*ac.TakeoffDistance) * constants.MetersToFeet))
}

// Selector picks departures and enumerates destinations from the indexes.
// It holds no mutable state and is safe for concurrent use.
type Selector struct {
	ix *index.Index
}

func NewSelector(ix *index.Index) *Selector {
	return &Selector{ix: ix}
}

// SelectDeparture returns the pinned airport when departure is non-empty,
// otherwise a uniformly random airport with a long enough runway.
func (s *Selector) SelectDeparture(r *rand.Rand, ac *gorm.Aircraft, departure string) (*index.CachedAirport, error) {
	required := RequiredRunwayFeet(ac)

	if departure != "" {
		dep, ok := s.ix.AirportByICAO(departure)
		if !ok {
			return nil, ErrAirportNotFound.withDetails("departure %s", departure)
		}
		if dep.LongestRunway < required {
			return nil, ErrNoSuitableRunway.withDetails("%s has %d ft, %s needs %d ft",
				dep.Airport.ICAO, dep.LongestRunway, ac.IcaoCode, required)
		}
		return dep, nil
	}

	qualifying := s.ix.Runways.Qualifying(required)
	if len(qualifying) == 0 {
		return nil, ErrNoSuitableRunway.withDetails("no departure with %d ft for %s", required, ac.IcaoCode)
	}
	return rand.Sample(r, qualifying), nil
}

// Destinations returns every airport other than dep within the aircraft's
// range that has a long enough runway. When none qualify the error tells
// apart an empty neighbourhood (ErrNoDestination) from one where only the
// runways are too short (ErrNoSuitableRunway).
func (s *Selector) Destinations(ac *gorm.Aircraft, dep *index.CachedAirport) ([]*index.SpatialEntry, error) {
	required := RequiredRunwayFeet(ac)
	rangeNM := int(ac.AircraftRange)
	tau := geo.ThresholdForNM(rangeNM)

	shortInRange := false
	candidates := s.ix.Spatial.LocateWithinRange(dep.Airport.Latitude, dep.Airport.Longitude, rangeNM,
		func(e *index.SpatialEntry) bool {
			if e.Airport.ID == dep.Airport.ID {
				return false
			}
			if e.LongestRunway < required {
				if !shortInRange && dep.Within(e.CachedAirport, tau) {
					shortInRange = true
				}
				return false
			}
			return dep.Within(e.CachedAirport, tau)
		},
	)

	if len(candidates) == 0 {
		if shortInRange {
			return nil, ErrNoSuitableRunway.withDetails("no destination within %d NM of %s with %d ft",
				rangeNM, dep.Airport.ICAO, required)
		}
		return nil, ErrNoDestination.withDetails("nothing within %d NM of %s", rangeNM, dep.Airport.ICAO)
	}
	return candidates, nil
}
