package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/airline-tracking/internal/domain"
)

type BookingRepository interface {
	List(ctx context.Context) ([]domain.BookingView, error)
	ListByFlight(ctx context.Context, flightID int64) ([]domain.BookingView, error)
	ListByPassenger(ctx context.Context, passengerID int64) ([]domain.BookingView, error)
	Create(ctx context.Context, booking *domain.Booking) error
	Update(ctx context.Context, id int64, update domain.BookingUpdate) error
	Delete(ctx context.Context, id int64) error
}

type PGBookingRepository struct {
	db DB
}

func NewBookingRepository(db DB) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `b.booking_id, b.passenger_id, b.flight_id, b.booking_date, b.seat_number, b.fare_class, b.status`

// Inner joins: bookings whose passenger or flight is gone are not listed.
const (
	listBookingsQuery = `SELECT ` + bookingColumns + `, p.first_name, p.last_name, p.email, f.flight_number
		FROM bookings b
		JOIN passengers p ON b.passenger_id = p.passenger_id
		JOIN flights f ON b.flight_id = f.flight_id
		ORDER BY b.booking_id`

	listBookingsByFlightQuery = `SELECT ` + bookingColumns + `, p.first_name, p.last_name, p.email
		FROM bookings b
		JOIN passengers p ON b.passenger_id = p.passenger_id
		WHERE b.flight_id = $1
		ORDER BY b.booking_id`

	listBookingsByPassengerQuery = `SELECT ` + bookingColumns + `, f.flight_number, f.departure_airport, f.arrival_airport, f.departure_time, f.arrival_time
		FROM bookings b
		JOIN flights f ON b.flight_id = f.flight_id
		WHERE b.passenger_id = $1
		ORDER BY b.booking_id`
)

func (r *PGBookingRepository) List(ctx context.Context) ([]domain.BookingView, error) {
	return r.list(ctx, listBookingsQuery, func(v *domain.BookingView) []any {
		return []any{&v.FirstName, &v.LastName, &v.Email, &v.FlightNumber}
	})
}

func (r *PGBookingRepository) ListByFlight(ctx context.Context, flightID int64) ([]domain.BookingView, error) {
	return r.list(ctx, listBookingsByFlightQuery, func(v *domain.BookingView) []any {
		return []any{&v.FirstName, &v.LastName, &v.Email}
	}, flightID)
}

func (r *PGBookingRepository) ListByPassenger(ctx context.Context, passengerID int64) ([]domain.BookingView, error) {
	return r.list(ctx, listBookingsByPassengerQuery, func(v *domain.BookingView) []any {
		return []any{&v.FlightNumber, &v.DepartureAirport, &v.ArrivalAirport, &v.DepartureTime, &v.ArrivalTime}
	}, passengerID)
}

// list scans the booking columns followed by the projection's joined columns.
func (r *PGBookingRepository) list(ctx context.Context, query string, joined func(*domain.BookingView) []any, args ...any) ([]domain.BookingView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	views := make([]domain.BookingView, 0)
	for rows.Next() {
		var v domain.BookingView
		dest := append(bookingDest(&v.Booking), joined(&v)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		v.BookingDate = v.BookingDate.UTC()
		v.DepartureTime = utcPtr(v.DepartureTime)
		v.ArrivalTime = utcPtr(v.ArrivalTime)
		views = append(views, v)
	}
	return views, rows.Err()
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func bookingDest(b *domain.Booking) []any {
	return []any{&b.ID, &b.PassengerID, &b.FlightID, &b.BookingDate, &b.SeatNumber, &b.FareClass, &b.Status}
}

// Create stores a new booking stamped with the database clock and the
// CONFIRMED status, whatever status the caller set.
func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	booking.Status = domain.BookingStatusConfirmed
	err := r.db.QueryRow(ctx, `INSERT INTO bookings (passenger_id, flight_id, booking_date, seat_number, fare_class, status)
		VALUES ($1, $2, now(), $3, $4, $5)
		RETURNING booking_id, booking_date`,
		booking.PassengerID, booking.FlightID, booking.SeatNumber, booking.FareClass, booking.Status).
		Scan(&booking.ID, &booking.BookingDate)
	if err != nil {
		return fmt.Errorf("create booking: %w", err)
	}
	booking.BookingDate = booking.BookingDate.UTC()
	return nil
}

func (r *PGBookingRepository) Update(ctx context.Context, id int64, update domain.BookingUpdate) error {
	var set setClause
	if update.SeatNumber.Set {
		set.add("seat_number", update.SeatNumber.Value)
	}
	if update.FareClass.Set {
		set.add("fare_class", update.FareClass.Value)
	}
	if update.Status.Set {
		set.add("status", update.Status.Value)
	}
	if set.empty() {
		return domain.ErrNothingToUpdate
	}

	query, args := set.build("bookings", "booking_id", id)
	cmd, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking %d: %w", id, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGBookingRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE booking_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking %d: %w", id, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
