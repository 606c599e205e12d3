package domain

import "time"

type Flight struct {
	ID               int64     `json:"flight_id"`
	FlightNumber     string    `json:"flight_number"`
	DepartureAirport string    `json:"departure_airport"`
	ArrivalAirport   string    `json:"arrival_airport"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	Status           string    `json:"status"`
	Airline          string    `json:"airline"`
}

// FlightUpdate lists the columns a partial flight update may write.
type FlightUpdate struct {
	FlightNumber     Field[string]    `json:"flight_number"`
	DepartureAirport Field[string]    `json:"departure_airport"`
	ArrivalAirport   Field[string]    `json:"arrival_airport"`
	DepartureTime    Field[Timestamp] `json:"departure_time"`
	ArrivalTime      Field[Timestamp] `json:"arrival_time"`
	Status           Field[string]    `json:"status"`
}

func (u FlightUpdate) IsEmpty() bool {
	return !u.FlightNumber.Set && !u.DepartureAirport.Set && !u.ArrivalAirport.Set &&
		!u.DepartureTime.Set && !u.ArrivalTime.Set && !u.Status.Set
}
