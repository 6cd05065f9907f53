package dtos

type MarkRouteFlownReq struct {
	DepartureICAO   string `json:"departure_icao"`
	DestinationICAO string `json:"destination_icao"`
	AircraftID      int32  `json:"aircraft_id"`
}

type AddHistoryReq struct {
	DepartureICAO string `json:"departure_icao"`
	ArrivalICAO   string `json:"arrival_icao"`
	AircraftID    int32  `json:"aircraft_id"`
}
