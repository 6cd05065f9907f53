package geo

import gomath "math"

// Envelope is an axis-aligned box in latitude/longitude degrees.
type Envelope struct {
	MinLat, MinLon float64
	MaxLat, MaxLon float64
}

// World covers every valid coordinate.
var World = Envelope{MinLat: -90, MinLon: -180, MaxLat: 90, MaxLon: 180}

// Contains reports whether the point lies inside e, edges included.
func (e Envelope) Contains(lat, lon float64) bool {
	return lat >= e.MinLat && lat <= e.MaxLat && lon >= e.MinLon && lon <= e.MaxLon
}

// RangeEnvelopes returns boxes that together contain every point within
// rangeNM of (lat, lon). The latitude half-width is rangeNM/60 degrees. The
// longitude half-width starts from the same value and is stretched by the
// cosine of the box's most poleward latitude, since a degree of longitude
// shrinks away from the equator. A box that crosses the antimeridian is split
// in two; a box that reaches a pole, or whose longitude span would exceed the
// globe, spans all longitudes.
func RangeEnvelopes(lat, lon float64, rangeNM int) []Envelope {
	if rangeNM < 0 {
		return nil
	}
	delta := float64(rangeNM) / NMPerDegree
	if delta >= 180 {
		return []Envelope{World}
	}

	minLat, maxLat := lat-delta, lat+delta
	if minLat <= -90 || maxLat >= 90 {
		return []Envelope{{
			MinLat: Clamp(minLat, -90, 90),
			MinLon: -180,
			MaxLat: Clamp(maxLat, -90, 90),
			MaxLon: 180,
		}}
	}

	lonDelta := delta / gomath.Cos(gomath.Max(gomath.Abs(minLat), gomath.Abs(maxLat))*gomath.Pi/180)
	if lonDelta >= 180 {
		return []Envelope{{MinLat: minLat, MinLon: -180, MaxLat: maxLat, MaxLon: 180}}
	}

	minLon, maxLon := lon-lonDelta, lon+lonDelta
	switch {
	case minLon < -180:
		return []Envelope{
			{MinLat: minLat, MinLon: -180, MaxLat: maxLat, MaxLon: maxLon},
			{MinLat: minLat, MinLon: minLon + 360, MaxLat: maxLat, MaxLon: 180},
		}
	case maxLon > 180:
		return []Envelope{
			{MinLat: minLat, MinLon: minLon, MaxLat: maxLat, MaxLon: 180},
			{MinLat: minLat, MinLon: -180, MaxLat: maxLat, MaxLon: maxLon - 360},
		}
	}
	return []Envelope{{MinLat: minLat, MinLon: minLon, MaxLat: maxLat, MaxLon: maxLon}}
}
