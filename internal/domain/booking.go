package domain

import "time"

type BookingStatus string

// BookingStatusConfirmed is the status every booking is created with. Later
// updates may set any string.
const BookingStatusConfirmed BookingStatus = "CONFIRMED"

// Booking references its passenger and flight by id. Either reference becomes
// nil once the referenced row is deleted.
type Booking struct {
	ID          int64         `json:"booking_id"`
	PassengerID *int64        `json:"passenger_id"`
	FlightID    *int64        `json:"flight_id"`
	BookingDate time.Time     `json:"booking_date"`
	SeatNumber  *string       `json:"seat_number"`
	FareClass   *string       `json:"fare_class"`
	Status      BookingStatus `json:"status"`
}

// BookingView is a booking enriched with joined passenger and/or flight
// columns. Columns that were not part of the join are left nil and omitted.
type BookingView struct {
	Booking

	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`

	FlightNumber     *string    `json:"flight_number,omitempty"`
	DepartureAirport *string    `json:"departure_airport,omitempty"`
	ArrivalAirport   *string    `json:"arrival_airport,omitempty"`
	DepartureTime    *time.Time `json:"departure_time,omitempty"`
	ArrivalTime      *time.Time `json:"arrival_time,omitempty"`
}

type BookingUpdate struct {
	SeatNumber Field[string] `json:"seat_number"`
	FareClass  Field[string] `json:"fare_class"`
	Status     Field[string] `json:"status"`
}

func (u BookingUpdate) IsEmpty() bool {
	return !u.SeatNumber.Set && !u.FareClass.Set && !u.Status.Set
}
