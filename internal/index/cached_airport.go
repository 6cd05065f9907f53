package index

import (
	"infinite-experiment/routeplanner/internal/geo"
	"infinite-experiment/routeplanner/internal/models/entities"

	"github.com/dhconnelly/rtreego"
)

// pointTolerance is the half-width in degrees of an airport's R-tree box.
const pointTolerance = 1e-7

// CachedAirport is an airport with its trig values and longest runway
// precomputed. It is never modified after construction.
type CachedAirport struct {
	Airport       *entities.Airport
	Trig          geo.Trig
	LongestRunway int
}

func NewCachedAirport(airport *entities.Airport, longestRunway int) *CachedAirport {
	return &CachedAirport{
		Airport:       airport,
		Trig:          geo.NewTrig(airport.Latitude, airport.Longitude),
		LongestRunway: longestRunway,
	}
}

// DistanceTo is the cached-form distance in whole nautical miles.
func (c *CachedAirport) DistanceTo(other *CachedAirport) int {
	return geo.CachedDistanceNM(c.Trig, other.Trig)
}

// Within reports whether other lies within the distance tau was built for.
func (c *CachedAirport) Within(other *CachedAirport, tau geo.Threshold) bool {
	return geo.WithinThreshold(c.Trig, other.Trig, tau)
}

// SpatialEntry is a CachedAirport stored in the R-tree, keyed by a point
// envelope in (latitude, longitude) degrees.
type SpatialEntry struct {
	*CachedAirport
	bounds rtreego.Rect
}

var _ rtreego.Spatial = (*SpatialEntry)(nil)

func NewSpatialEntry(c *CachedAirport) *SpatialEntry {
	p := rtreego.Point{c.Airport.Latitude, c.Airport.Longitude}
	return &SpatialEntry{CachedAirport: c, bounds: p.ToRect(pointTolerance)}
}

func (e *SpatialEntry) Bounds() rtreego.Rect {
	return e.bounds
}
