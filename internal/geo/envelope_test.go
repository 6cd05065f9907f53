package geo

import "testing"

func TestRangeEnvelopes_Simple(t *testing.T) {
	envs := RangeEnvelopes(52.3086, 4.7639, 600)
	if len(envs) != 1 {
		t.Fatalf("Expected 1 envelope, got %d", len(envs))
	}
	e := envs[0]
	if e.MinLat != 52.3086-10 || e.MaxLat != 52.3086+10 {
		t.Errorf("Unexpected latitude span %+v", e)
	}
	// Stretched by 1/cos(62.3086°) ≈ 2.15.
	if half := (e.MaxLon - e.MinLon) / 2; half < 21.4 || half > 21.6 {
		t.Errorf("Expected a longitude half-width near 21.5°, got %f", half)
	}
	if !e.Contains(51.9561, 4.4397) {
		t.Error("Expected EHRD inside EHAM envelope")
	}
}

func TestRangeEnvelopes_Antimeridian(t *testing.T) {
	// Auckland with 1200 NM reaches past 180°E.
	envs := RangeEnvelopes(-37.0081, 174.7917, 1200)
	if len(envs) != 2 {
		t.Fatalf("Expected split envelope, got %d", len(envs))
	}

	// Fiji (Nadi) sits on the far side of the antimeridian.
	found := false
	for _, e := range envs {
		if e.Contains(-17.7554, 177.4434) || e.Contains(-17.7554, -177.0) {
			found = true
		}
	}
	if !found {
		t.Error("Expected a point west of 180° to be covered")
	}

	covered := false
	for _, e := range envs {
		if e.Contains(-30, -175) {
			covered = true
		}
	}
	if !covered {
		t.Error("Expected the wrapped half to cover -175° longitude")
	}
}

func TestRangeEnvelopes_HighLatitude(t *testing.T) {
	// Keflavik to Kangerlussuaq: 28° of longitude apart but under 800 NM.
	d := DistanceNM(63.985, -22.6056, 67.0122, -50.7116)
	if d > 800 {
		t.Fatalf("Expected BIKF-BGSF under 800 NM, got %d", d)
	}
	covered := false
	for _, e := range RangeEnvelopes(63.985, -22.6056, 800) {
		if e.Contains(67.0122, -50.7116) {
			covered = true
		}
	}
	if !covered {
		t.Error("Expected the envelope to cover BGSF")
	}
}

func TestRangeEnvelopes_Pole(t *testing.T) {
	envs := RangeEnvelopes(78.2461, 15.4656, 900)
	if len(envs) != 1 {
		t.Fatalf("Expected 1 envelope, got %d", len(envs))
	}
	if envs[0].MinLon != -180 || envs[0].MaxLon != 180 || envs[0].MaxLat != 90 {
		t.Errorf("Expected all longitudes up to the pole, got %+v", envs[0])
	}
}

func TestRangeEnvelopes_World(t *testing.T) {
	envs := RangeEnvelopes(0, 0, 11000)
	if len(envs) != 1 || envs[0] != World {
		t.Errorf("Expected world envelope, got %+v", envs)
	}
	if RangeEnvelopes(0, 0, -5) != nil {
		t.Error("Expected no envelope for a negative range")
	}
}
