package dtos

// HistoryItem is a history row with airport and aircraft names resolved.
type HistoryItem struct {
	ID            int32  `json:"id"`
	DepartureICAO string `json:"departure_icao"`
	DepartureInfo string `json:"departure_info"`
	ArrivalICAO   string `json:"arrival_icao"`
	ArrivalInfo   string `json:"arrival_info"`
	AircraftID    int32  `json:"aircraft_id"`
	AircraftName  string `json:"aircraft_name"`
	Date          string `json:"date"`
	Distance      int    `json:"distance"`
}

// FlightStatistics summarises the flight history. The string fields are
// empty when there is no history.
type FlightStatistics struct {
	TotalFlights             int     `json:"total_flights"`
	TotalDistance            int     `json:"total_distance"`
	AverageFlightDistance    float64 `json:"average_flight_distance"`
	MostFlownAircraft        string  `json:"most_flown_aircraft,omitempty"`
	MostVisitedAirport       string  `json:"most_visited_airport,omitempty"`
	LongestFlight            string  `json:"longest_flight,omitempty"`
	ShortestFlight           string  `json:"shortest_flight,omitempty"`
	FavoriteDepartureAirport string  `json:"favorite_departure_airport,omitempty"`
	FavoriteArrivalAirport   string  `json:"favorite_arrival_airport,omitempty"`
}
