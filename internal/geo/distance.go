// Package geo implements great-circle distance on a spherical earth measured
// in nautical miles, plus the cached and threshold forms used for bulk
// containment tests.
package geo

import (
	gomath "math"
)

const (
	// EarthRadiusNM is the sphere radius used for every distance.
	EarthRadiusNM float32 = 3440

	// NMPerDegree is the length of one degree of latitude.
	NMPerDegree = 60

	// HalfCircumferenceNM is the largest possible great-circle distance.
	HalfCircumferenceNM = 10807
)

// HaversineA returns sin²(Δφ/2) + cos φ₁·cos φ₂·sin²(Δλ/2) for two points
// given in decimal degrees.
func HaversineA(lat1, lon1, lat2, lon2 float32) float32 {
	phi1, phi2 := Radians(lat1), Radians(lat2)
	dPhi := Radians(lat2 - lat1)
	dLambda := Radians(lon2 - lon1)
	return Sqr(Sin(dPhi/2)) + Cos(phi1)*Cos(phi2)*Sqr(Sin(dLambda/2))
}

// DistanceNM returns the great-circle distance between two points in
// decimal degrees, rounded to whole nautical miles.
func DistanceNM(lat1, lon1, lat2, lon2 float64) int {
	return aToNM(HaversineA(float32(lat1), float32(lon1), float32(lat2), float32(lon2)))
}

func aToNM(a float32) int {
	a = Clamp(a, 0, 1)
	c := 2 * Atan2(Sqrt(a), Sqrt(1-a))
	return int(gomath.Round(float64(EarthRadiusNM * c)))
}

// Threshold is the haversine a-value equivalent of a maximum distance; see
// ThresholdForNM.
type Threshold float32

// ThresholdForNM precomputes τ = sin²((D+0.5)/R / 2) so that "distance ≤ D"
// can be tested as a ≤ τ. The half mile absorbs the rounding of DistanceNM.
// Distances beyond half the circumference saturate to 1, which accepts
// every pair.
func ThresholdForNM(maxNM int) Threshold {
	if maxNM < 0 {
		return -1
	}
	half := (float32(maxNM) + 0.5) / EarthRadiusNM / 2
	if half >= gomath.Pi/2 {
		return 1
	}
	return Threshold(Sqr(Sin(half)))
}

// Trig holds precomputed sines and cosines of a point's latitude and
// longitude in radians.
type Trig struct {
	SinLat, CosLat float32
	SinLon, CosLon float32
}

// NewTrig computes the trig values for a point in decimal degrees.
func NewTrig(lat, lon float64) Trig {
	phi, lambda := Radians(float32(lat)), Radians(float32(lon))
	return Trig{
		SinLat: Sin(phi),
		CosLat: Cos(phi),
		SinLon: Sin(lambda),
		CosLon: Cos(lambda),
	}
}

// CachedA computes the haversine a-value from precomputed trig values via
// a = (1 - cos c)/2 with cos c from the spherical law of cosines. The
// result is clamped to [0,1] since accumulated rounding can push it just
// outside.
func CachedA(p, q Trig) float32 {
	cosDLambda := gomath.FMA(float64(p.SinLon), float64(q.SinLon), float64(p.CosLon)*float64(q.CosLon))
	inner := gomath.FMA(float64(p.SinLat), float64(q.SinLat), float64(p.CosLat)*float64(q.CosLat)*cosDLambda)
	return Clamp(float32(0.5*(1-inner)), 0, 1)
}

// CachedDistanceNM is DistanceNM over precomputed trig values.
func CachedDistanceNM(p, q Trig) int {
	return aToNM(CachedA(p, q))
}

// WithinThreshold reports whether the distance between p and q is within
// the distance tau was computed for.
func WithinThreshold(p, q Trig, tau Threshold) bool {
	return CachedA(p, q) <= float32(tau)
}
