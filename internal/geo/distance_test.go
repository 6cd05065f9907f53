package geo

import (
	"testing"
)

type point struct {
	icao     string
	lat, lon float64
}

var testPoints = []point{
	{"EHAM", 52.3086, 4.7639},
	{"EHRD", 51.9561, 4.4397},
	{"EGLL", 51.4706, -0.4619},
	{"KJFK", 40.6398, -73.7789},
	{"YSSY", -33.9461, 151.1772},
	{"NZAA", -37.0081, 174.7917},
	{"PHNL", 21.3187, -157.9225},
	{"ENSB", 78.2461, 15.4656},
	{"SCCI", -53.0026, -70.8546},
}

func TestDistanceNM_KnownPairs(t *testing.T) {
	cases := []struct {
		a, b point
		want int
	}{
		{testPoints[0], testPoints[1], 24},
		{testPoints[0], testPoints[2], 200},
		{testPoints[0], testPoints[3], 3157},
	}

	for _, c := range cases {
		got := DistanceNM(c.a.lat, c.a.lon, c.b.lat, c.b.lon)
		if got < c.want-1 || got > c.want+1 {
			t.Errorf("%s-%s: expected ~%d NM, got %d", c.a.icao, c.b.icao, c.want, got)
		}
	}
}

func TestDistanceNM_SelfIsZero(t *testing.T) {
	for _, p := range testPoints {
		if d := DistanceNM(p.lat, p.lon, p.lat, p.lon); d != 0 {
			t.Errorf("%s: expected 0, got %d", p.icao, d)
		}
	}
}

func TestDistanceNM_Symmetric(t *testing.T) {
	for _, a := range testPoints {
		for _, b := range testPoints {
			ab := DistanceNM(a.lat, a.lon, b.lat, b.lon)
			ba := DistanceNM(b.lat, b.lon, a.lat, a.lon)
			if diff := ab - ba; diff < -1 || diff > 1 {
				t.Errorf("%s/%s: %d vs %d", a.icao, b.icao, ab, ba)
			}
		}
	}
}

func TestDistanceNM_Antipodal(t *testing.T) {
	d := DistanceNM(0, 0, 0, 180)
	if d < HalfCircumferenceNM-1 || d > HalfCircumferenceNM+1 {
		t.Errorf("Expected about %d NM, got %d", HalfCircumferenceNM, d)
	}
}

func TestTrig_PythagoreanIdentity(t *testing.T) {
	for _, p := range testPoints {
		tr := NewTrig(p.lat, p.lon)
		lat := tr.SinLat*tr.SinLat + tr.CosLat*tr.CosLat
		lon := tr.SinLon*tr.SinLon + tr.CosLon*tr.CosLon
		if lat < 0.99999 || lat > 1.00001 || lon < 0.99999 || lon > 1.00001 {
			t.Errorf("%s: sin²+cos² = %f / %f", p.icao, lat, lon)
		}
	}
}

func TestCachedDistanceNM_MatchesCanonical(t *testing.T) {
	for _, a := range testPoints {
		for _, b := range testPoints {
			if a.icao == b.icao {
				continue
			}
			canonical := DistanceNM(a.lat, a.lon, b.lat, b.lon)
			cached := CachedDistanceNM(NewTrig(a.lat, a.lon), NewTrig(b.lat, b.lon))
			if diff := canonical - cached; diff < -2 || diff > 2 {
				t.Errorf("%s-%s: canonical %d, cached %d", a.icao, b.icao, canonical, cached)
			}
		}
	}
}

func TestCachedA_SymmetricAndClamped(t *testing.T) {
	for _, a := range testPoints {
		for _, b := range testPoints {
			ta, tb := NewTrig(a.lat, a.lon), NewTrig(b.lat, b.lon)
			ab, ba := CachedA(ta, tb), CachedA(tb, ta)
			if ab != ba {
				t.Errorf("%s/%s: %g vs %g", a.icao, b.icao, ab, ba)
			}
			if ab < 0 || ab > 1 {
				t.Errorf("%s/%s: a out of range: %g", a.icao, b.icao, ab)
			}
		}
	}
}

func TestWithinThreshold_AgreesWithDistance(t *testing.T) {
	eham, ehrd, egll := testPoints[0], testPoints[1], testPoints[2]
	cases := []struct {
		a, b  point
		maxNM int
		want  bool
	}{
		{eham, ehrd, 20, false},
		{eham, ehrd, 23, false},
		{eham, ehrd, 24, true},
		{eham, ehrd, 3000, true},
		{eham, egll, 199, false},
		{eham, egll, 200, true},
		{eham, egll, 201, true},
	}

	for _, c := range cases {
		got := WithinThreshold(NewTrig(c.a.lat, c.a.lon), NewTrig(c.b.lat, c.b.lon), ThresholdForNM(c.maxNM))
		if got != c.want {
			t.Errorf("%s-%s within %d: expected %v, got %v", c.a.icao, c.b.icao, c.maxNM, c.want, got)
		}
		canonical := DistanceNM(c.a.lat, c.a.lon, c.b.lat, c.b.lon) <= c.maxNM
		if got != canonical {
			t.Errorf("%s-%s within %d: threshold %v disagrees with distance %v", c.a.icao, c.b.icao, c.maxNM, got, canonical)
		}
	}
}

func TestThresholdForNM_Saturates(t *testing.T) {
	if tau := ThresholdForNM(HalfCircumferenceNM); tau != 1 {
		t.Errorf("Expected saturation at half circumference, got %g", tau)
	}
	if tau := ThresholdForNM(20000); tau != 1 {
		t.Errorf("Expected saturation, got %g", tau)
	}
	if tau := ThresholdForNM(5000); tau <= 0 || tau >= 1 {
		t.Errorf("Expected 0 < τ < 1, got %g", tau)
	}

	// Antipodes are accepted by a saturated threshold.
	if !WithinThreshold(NewTrig(0, 0), NewTrig(0, 180), ThresholdForNM(20000)) {
		t.Error("Expected saturated threshold to accept antipodal points")
	}
	if WithinThreshold(NewTrig(0, 0), NewTrig(0, 1), ThresholdForNM(-1)) {
		t.Error("Expected negative range to reject everything")
	}
}
