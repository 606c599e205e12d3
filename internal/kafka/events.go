package kafka

import (
	"time"

	"github.com/Domenick1991/airline-tracking/internal/domain"
	"github.com/google/uuid"
)

const (
	EventBookingCreated = "booking_created"
	EventBookingUpdated = "booking_updated"
	EventBookingDeleted = "booking_deleted"

	EventFlightUpdated       = "flight_updated"
	EventFlightStatusChanged = "flight_status_changed"
	EventFlightDeleted       = "flight_deleted"
)

type BookingEvent struct {
	ID          string    `json:"event_id"`
	Type        string    `json:"type"`
	BookingID   int64     `json:"booking_id"`
	PassengerID *int64    `json:"passenger_id,omitempty"`
	FlightID    *int64    `json:"flight_id,omitempty"`
	SeatNumber  *string   `json:"seat_number,omitempty"`
	FareClass   *string   `json:"fare_class,omitempty"`
	Status      string    `json:"status,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// NewBookingEvent describes a booking change. b may be nil for deletes,
// where only the id is known.
func NewBookingEvent(eventType string, id int64, b *domain.Booking) BookingEvent {
	event := BookingEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		BookingID:  id,
		OccurredAt: time.Now().UTC(),
	}
	if b != nil {
		event.PassengerID = b.PassengerID
		event.FlightID = b.FlightID
		event.SeatNumber = b.SeatNumber
		event.FareClass = b.FareClass
		event.Status = string(b.Status)
	}
	return event
}

type FlightEvent struct {
	ID               string     `json:"event_id"`
	Type             string     `json:"type"`
	FlightID         int64      `json:"flight_id"`
	FlightNumber     string     `json:"flight_number,omitempty"`
	DepartureAirport string     `json:"departure_airport,omitempty"`
	ArrivalAirport   string     `json:"arrival_airport,omitempty"`
	DepartureTime    *time.Time `json:"departure_time,omitempty"`
	Status           string     `json:"status,omitempty"`
	OccurredAt       time.Time  `json:"occurred_at"`
}

// NewFlightEvent describes a flight change. f may be nil for deletes.
func NewFlightEvent(eventType string, id int64, f *domain.Flight) FlightEvent {
	event := FlightEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		FlightID:   id,
		OccurredAt: time.Now().UTC(),
	}
	if f != nil {
		dep := f.DepartureTime
		event.FlightNumber = f.FlightNumber
		event.DepartureAirport = f.DepartureAirport
		event.ArrivalAirport = f.ArrivalAirport
		event.DepartureTime = &dep
		event.Status = f.Status
	}
	return event
}
