package common

import (
	"testing"
	"time"
)

func TestFormatDateUTC(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	loc := time.FixedZone("EST", -5*60*60)
	ts := time.Date(2026, 3, 14, 23, 30, 0, 0, loc)
	if got := FormatDateUTC(ts); got != "2026-03-15" {
		t.Errorf("Expected 2026-03-15, got %s", got)
	}

	today := CurrentDateUTC()
	if _, err := time.Parse("2006-01-02", today); err != nil {
		t.Errorf("Expected YYYY-MM-DD, got %s", today)
	}
}

func TestFormatDateForDisplay(t *testing.T) {
	cases := map[string]string{
		"":           "Never",
		"2026-01-05": "2026-01-05",
		"yesterday":  "yesterday",
	}
	for in, want := range cases {
		if got := FormatDateForDisplay(in); got != want {
			t.Errorf("FormatDateForDisplay(%q) = %q, want %q", in, got, want)
		}
	}

	if got := FormatOptionalDate(nil); got != "Never" {
		t.Errorf("Expected Never, got %s", got)
	}
	d := "2025-12-31"
	if got := FormatOptionalDate(&d); got != d {
		t.Errorf("Expected %s, got %s", d, got)
	}
}
