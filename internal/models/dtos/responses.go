package dtos

// --- Controller endpoints ----

type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ErrorCode    string `json:"error_code,omitempty"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Uptime    string            `json:"uptime"`
	Services  map[string]string `json:"services"`
	Airports  int               `json:"airports"`
	FleetSize int               `json:"fleet_size"`
}

// AirportResponse is an airport plus the runway data the index derived.
type AirportResponse struct {
	ID            int32   `json:"id"`
	ICAO          string  `json:"icao"`
	Name          string  `json:"name"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Elevation     int32   `json:"elevation"`
	LongestRunway int     `json:"longest_runway_ft"`
	RunwayCount   int     `json:"runway_count"`
}

type AircraftResponse struct {
	ID              int32  `json:"id"`
	Name            string `json:"name"`
	IcaoCode        string `json:"icao_code"`
	Flown           bool   `json:"flown"`
	Range           int32  `json:"range_nm"`
	Category        string `json:"category"`
	CruiseSpeed     int32  `json:"cruise_speed"`
	DateFlown       string `json:"date_flown"`
	TakeoffDistance *int32 `json:"takeoff_distance_m,omitempty"`
	Description     string `json:"description"`
}

type FleetResponse struct {
	Aircraft      []AircraftResponse `json:"aircraft"`
	NotFlownCount int                `json:"not_flown_count"`
}
