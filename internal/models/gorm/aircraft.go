package gorm

import "fmt"

// Aircraft is a fleet row. Flown is stored as 0/1 to match existing databases.
type Aircraft struct {
	ID              int32   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Manufacturer    string  `gorm:"column:manufacturer;type:text;not null" json:"manufacturer"`
	Variant         string  `gorm:"column:variant;type:text;not null" json:"variant"`
	IcaoCode        string  `gorm:"column:icao_code;type:text;not null" json:"icao_code"`
	Flown           int32   `gorm:"column:flown;not null;default:0;index" json:"flown"`
	AircraftRange   int32   `gorm:"column:aircraft_range;not null" json:"aircraft_range"`
	Category        string  `gorm:"column:category;type:text;not null" json:"category"`
	CruiseSpeed     int32   `gorm:"column:cruise_speed;not null" json:"cruise_speed"`
	DateFlown       *string `gorm:"column:date_flown;type:text" json:"date_flown,omitempty"`
	TakeoffDistance *int32  `gorm:"column:takeoff_distance" json:"takeoff_distance,omitempty"`
}

// TableName specifies the table name for GORM
func (Aircraft) TableName() string {
	return "aircraft"
}

// IsFlown reports whether the flown flag is set.
func (a *Aircraft) IsFlown() bool {
	return a.Flown != 0
}

// DisplayName is "Manufacturer Variant", e.g. "Boeing 737-800".
func (a *Aircraft) DisplayName() string {
	return fmt.Sprintf("%s %s", a.Manufacturer, a.Variant)
}
