package entities

type Runway struct {
	ID          int32   `db:"ID" json:"id"`
	AirportID   int32   `db:"AirportID" json:"airport_id"`
	Ident       string  `db:"Ident" json:"ident"`
	TrueHeading float64 `db:"TrueHeading" json:"true_heading"`
	Length      int32   `db:"Length" json:"length"`
	Width       int32   `db:"Width" json:"width"`
	Surface     string  `db:"Surface" json:"surface"`
	Latitude    float64 `db:"Latitude" json:"latitude"`
	Longitude   float64 `db:"Longtitude" json:"longitude"`
	Elevation   int32   `db:"Elevation" json:"elevation"`
}
