package constants

type (
	APIStatus   string
	CachePrefix string
	RouteMode   string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixStatistics CachePrefix = "STATS_"
	CachePrefixAirport    CachePrefix = "AIRPORT_"

	RouteModeAll      RouteMode = "all"
	RouteModeNotFlown RouteMode = "not_flown"
	RouteModeAircraft RouteMode = "aircraft"
)

// GenerateAmount is the default number of routes per batch.
const GenerateAmount = 50

// MetersToFeet converts takeoff distances to runway units.
const MetersToFeet = 3.28084

// DateLayout is the persisted date format, always UTC.
const DateLayout = "2006-01-02"
