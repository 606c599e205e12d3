package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/airline-tracking/internal/domain"
	"github.com/jackc/pgx/v5"
)

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	ListByArrival(ctx context.Context, airportCode string) ([]domain.Flight, error)
	ListByDeparture(ctx context.Context, airportCode string) ([]domain.Flight, error)
	ListByRoute(ctx context.Context, arrivalCode, departureCode string) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, id int64, update domain.FlightUpdate) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) error
}

type PGFlightRepository struct {
	db DB
}

func NewFlightRepository(db DB) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `flight_id, flight_number, departure_airport, arrival_airport, departure_time, arrival_time, status`

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	return r.list(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY flight_id`)
}

func (r *PGFlightRepository) ListByArrival(ctx context.Context, airportCode string) ([]domain.Flight, error) {
	return r.list(ctx, `SELECT `+flightColumns+` FROM flights WHERE arrival_airport = $1 ORDER BY flight_id`, airportCode)
}

func (r *PGFlightRepository) ListByDeparture(ctx context.Context, airportCode string) ([]domain.Flight, error) {
	return r.list(ctx, `SELECT `+flightColumns+` FROM flights WHERE departure_airport = $1 ORDER BY flight_id`, airportCode)
}

func (r *PGFlightRepository) ListByRoute(ctx context.Context, arrivalCode, departureCode string) ([]domain.Flight, error) {
	return r.list(ctx, `SELECT `+flightColumns+` FROM flights WHERE arrival_airport = $1 AND departure_airport = $2 ORDER BY flight_id`,
		arrivalCode, departureCode)
}

func (r *PGFlightRepository) list(ctx context.Context, query string, args ...any) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list flights: %w", err)
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE flight_id = $1`, id)
	f, err := scanFlight(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return f, err
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	err := r.db.QueryRow(ctx, `INSERT INTO flights (flight_number, departure_airport, arrival_airport, departure_time, arrival_time, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING flight_id`,
		flight.FlightNumber, flight.DepartureAirport, flight.ArrivalAirport, flight.DepartureTime.UTC(), flight.ArrivalTime.UTC(), flight.Status).
		Scan(&flight.ID)
	if err != nil {
		return fmt.Errorf("create flight: %w", err)
	}
	flight.Airline = domain.AirlineFromFlightNumber(flight.FlightNumber)
	return nil
}

// Update writes only the fields present in update and returns the stored row.
func (r *PGFlightRepository) Update(ctx context.Context, id int64, update domain.FlightUpdate) (*domain.Flight, error) {
	var set setClause
	if update.FlightNumber.Set {
		set.add("flight_number", update.FlightNumber.Value)
	}
	if update.DepartureAirport.Set {
		set.add("departure_airport", update.DepartureAirport.Value)
	}
	if update.ArrivalAirport.Set {
		set.add("arrival_airport", update.ArrivalAirport.Value)
	}
	if update.DepartureTime.Set {
		set.add("departure_time", update.DepartureTime.Value.Time())
	}
	if update.ArrivalTime.Set {
		set.add("arrival_time", update.ArrivalTime.Value.Time())
	}
	if update.Status.Set {
		set.add("status", update.Status.Value)
	}
	if set.empty() {
		return nil, domain.ErrNothingToUpdate
	}

	query, args := set.build("flights", "flight_id", id)
	f, err := scanFlight(r.db.QueryRow(ctx, query+` RETURNING `+flightColumns, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update flight %d: %w", id, err)
	}
	return f, nil
}

func (r *PGFlightRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM flights WHERE flight_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete flight %d: %w", id, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.FlightNumber, &f.DepartureAirport, &f.ArrivalAirport, &f.DepartureTime, &f.ArrivalTime, &f.Status); err != nil {
		return nil, err
	}
	f.DepartureTime = f.DepartureTime.UTC()
	f.ArrivalTime = f.ArrivalTime.UTC()
	f.Airline = domain.AirlineFromFlightNumber(f.FlightNumber)
	return &f, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
