package planner

import (
	"fmt"

	"infinite-experiment/routeplanner/internal/constants"
)

// SearchError is a domain failure of a single route attempt. Two errors are
// equal under errors.Is when their codes match, so callers compare against
// the sentinels below.
type SearchError struct {
	Code    string
	Message string
	Details string
}

func (e *SearchError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

func (e *SearchError) Is(target error) bool {
	t, ok := target.(*SearchError)
	return ok && t.Code == e.Code
}

func newSearchError(code string) *SearchError {
	return &SearchError{Code: code, Message: constants.GetErrorMessage(code)}
}

// withDetails returns a copy of e carrying context for logs.
func (e *SearchError) withDetails(format string, args ...any) *SearchError {
	return &SearchError{Code: e.Code, Message: e.Message, Details: fmt.Sprintf(format, args...)}
}

var (
	ErrAirportNotFound  = newSearchError(constants.ErrCodeAirportNotFound)
	ErrNoSuitableRunway = newSearchError(constants.ErrCodeNoSuitableRunway)
	ErrDistanceExceeded = newSearchError(constants.ErrCodeDistanceExceeded)
	ErrNoAircraft       = newSearchError(constants.ErrCodeNoAircraft)
	ErrNoDestination    = newSearchError(constants.ErrCodeNoDestination)
)

// failureReason is the metrics label for a failed attempt.
func failureReason(err error) string {
	if se, ok := err.(*SearchError); ok {
		return se.Code
	}
	return "unknown"
}
