package constants

// Route search error codes
const (
	ErrCodeAirportNotFound   = "AIRPORT_NOT_FOUND"
	ErrCodeNoSuitableRunway  = "NO_SUITABLE_RUNWAY"
	ErrCodeDistanceExceeded  = "DISTANCE_EXCEEDED"
	ErrCodeNoAircraft        = "NO_AIRCRAFT"
	ErrCodeNoDestination     = "NO_DESTINATION"
	ErrCodeInvalidAirport    = "INVALID_AIRPORT"
	ErrCodeAircraftNotFound  = "AIRCRAFT_NOT_FOUND"
	ErrCodeInvalidRouteQuery = "INVALID_ROUTE_QUERY"
)

var ErrorMessages = map[string]string{
	ErrCodeAirportNotFound:   "No airport matches the requested ICAO code",
	ErrCodeNoSuitableRunway:  "No airport has a runway long enough for this aircraft",
	ErrCodeDistanceExceeded:  "Destination is beyond the aircraft's range",
	ErrCodeNoAircraft:        "No aircraft available for route generation",
	ErrCodeNoDestination:     "No destination within range",
	ErrCodeInvalidAirport:    "Departure and arrival must be different airports",
	ErrCodeAircraftNotFound:  "Aircraft not found",
	ErrCodeInvalidRouteQuery: "Invalid route request",
}

// GetErrorMessage returns the human-readable message for an error code
func GetErrorMessage(code string) string {
	if msg, ok := ErrorMessages[code]; ok {
		return msg
	}
	return "An unknown error occurred"
}

const (
	MsgRoutesGenerated = "Routes generated"
	MsgRouteFlown      = "Route marked as flown"
	MsgHistoryAdded    = "History entry added"
	MsgFlownToggled    = "Aircraft flown status updated"
	MsgFleetReset      = "All aircraft marked as not flown"
)
