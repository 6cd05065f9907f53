package gorm

// History is one completed flight.
type History struct {
	ID            int32  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	DepartureICAO string `gorm:"column:departure_icao;type:text;not null" json:"departure_icao"`
	ArrivalICAO   string `gorm:"column:arrival_icao;type:text;not null" json:"arrival_icao"`
	AircraftID    int32  `gorm:"column:aircraft;not null;index" json:"aircraft_id"`
	// Date is YYYY-MM-DD in UTC.
	Date     string `gorm:"column:date;type:text;not null" json:"date"`
	Distance *int32 `gorm:"column:distance" json:"distance,omitempty"`
}

// TableName specifies the table name for GORM
func (History) TableName() string {
	return "history"
}
