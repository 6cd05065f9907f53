package dtos

import (
	"strconv"

	"infinite-experiment/routeplanner/internal/models/entities"
	"infinite-experiment/routeplanner/internal/models/gorm"
)

// Route is a generated departure/destination pair for one aircraft. The
// airport and aircraft pointers are shared with the in-memory indexes and
// must not be modified.
type Route struct {
	Departure               *entities.Airport `json:"departure"`
	Destination             *entities.Airport `json:"destination"`
	Aircraft                *gorm.Aircraft    `json:"aircraft"`
	DepartureRunwayLength   int               `json:"departure_runway_length"`
	DestinationRunwayLength int               `json:"destination_runway_length"`
	Distance                int               `json:"distance"`

	// Display fields
	AircraftName       string `json:"aircraft_name"`
	DepartureDisplay   string `json:"departure_display"`
	DestinationDisplay string `json:"destination_display"`
	DistanceDisplay    string `json:"distance_display"`
}

// NewRoute fills in the display fields.
func NewRoute(dep, dst *entities.Airport, ac *gorm.Aircraft, depRunway, dstRunway, distance int) Route {
	return Route{
		Departure:               dep,
		Destination:             dst,
		Aircraft:                ac,
		DepartureRunwayLength:   depRunway,
		DestinationRunwayLength: dstRunway,
		Distance:                distance,
		AircraftName:            ac.DisplayName(),
		DepartureDisplay:        AirportDisplayName(dep.Name, dep.ICAO),
		DestinationDisplay:      AirportDisplayName(dst.Name, dst.ICAO),
		DistanceDisplay:         strconv.Itoa(distance) + " NM",
	}
}

// AirportDisplayName formats "Name (ICAO)".
func AirportDisplayName(name, icao string) string {
	return name + " (" + icao + ")"
}

type RouteListResponse struct {
	Routes []Route `json:"routes"`
	Count  int     `json:"count"`
}
