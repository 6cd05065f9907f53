package common

import (
	"time"

	"infinite-experiment/routeplanner/internal/constants"
)

// CurrentDateUTC returns today's date in UTC as YYYY-MM-DD.
func CurrentDateUTC() string {
	return FormatDateUTC(time.Now())
}

// FormatDateUTC formats t in UTC as YYYY-MM-DD.
func FormatDateUTC(t time.Time) string {
	return t.UTC().Format(constants.DateLayout)
}

// FormatDateForDisplay renders a stored date for humans. Empty dates read
// "Never"; anything that does not parse is returned unchanged.
func FormatDateForDisplay(date string) string {
	if date == "" {
		return "Never"
	}
	t, err := time.Parse(constants.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(constants.DateLayout)
}

// FormatOptionalDate is FormatDateForDisplay for a nullable column.
func FormatOptionalDate(date *string) string {
	if date == nil {
		return FormatDateForDisplay("")
	}
	return FormatDateForDisplay(*date)
}
