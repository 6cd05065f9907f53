package entities

// Airport is a row of the Airports table. The misspelled Longtitude column
// name is part of the published navdata schema.
type Airport struct {
	ID                 int32   `db:"ID" json:"id"`
	Name               string  `db:"Name" json:"name"`
	ICAO               string  `db:"ICAO" json:"icao"`
	PrimaryID          *int32  `db:"PrimaryID" json:"primary_id,omitempty"`
	Latitude           float64 `db:"Latitude" json:"latitude"`
	Longitude          float64 `db:"Longtitude" json:"longitude"`
	Elevation          int32   `db:"Elevation" json:"elevation"`
	TransitionAltitude *int32  `db:"TransitionAltitude" json:"transition_altitude,omitempty"`
	TransitionLevel    *int32  `db:"TransitionLevel" json:"transition_level,omitempty"`
	SpeedLimit         *int32  `db:"SpeedLimit" json:"speed_limit,omitempty"`
	SpeedLimitAltitude *int32  `db:"SpeedLimitAltitude" json:"speed_limit_altitude,omitempty"`
}
