package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airline-tracking/internal/logging"
)

// Migrate creates the tables when they do not exist yet. Bookings reference
// passengers and flights with ON DELETE SET NULL: deleting either side keeps
// the booking row and detaches it. Time columns are TIMESTAMPTZ so zoned
// input keeps its instant.
func Migrate(ctx context.Context, db DB) error {
	logging.Info("Running database migrations", "steps", len(migrations))

	for i, migration := range migrations {
		if _, err := db.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	logging.Info("Database migrations completed")
	return nil
}

var migrations = []string{
	createAirportsTable,
	createFlightsTable,
	createPassengersTable,
	createBookingsTable,
	`CREATE INDEX IF NOT EXISTS idx_flights_departure_airport ON flights(departure_airport);`,
	`CREATE INDEX IF NOT EXISTS idx_flights_arrival_airport ON flights(arrival_airport);`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_flight_id ON bookings(flight_id);`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_passenger_id ON bookings(passenger_id);`,
}

const createAirportsTable = `
CREATE TABLE IF NOT EXISTS airports (
    airport_code VARCHAR(10) PRIMARY KEY,
    airport_name VARCHAR(255) NOT NULL,
    city VARCHAR(100) NOT NULL,
    country VARCHAR(100) NOT NULL
);`

const createFlightsTable = `
CREATE TABLE IF NOT EXISTS flights (
    flight_id BIGSERIAL PRIMARY KEY,
    flight_number VARCHAR(20) NOT NULL,
    departure_airport VARCHAR(10) NOT NULL,
    arrival_airport VARCHAR(10) NOT NULL,
    departure_time TIMESTAMPTZ NOT NULL,
    arrival_time TIMESTAMPTZ NOT NULL,
    status VARCHAR(50) NOT NULL
);`

const createPassengersTable = `
CREATE TABLE IF NOT EXISTS passengers (
    passenger_id BIGSERIAL PRIMARY KEY,
    first_name VARCHAR(100) NOT NULL,
    last_name VARCHAR(100) NOT NULL,
    email VARCHAR(255),
    phone VARCHAR(50)
);`

const createBookingsTable = `
CREATE TABLE IF NOT EXISTS bookings (
    booking_id BIGSERIAL PRIMARY KEY,
    passenger_id BIGINT REFERENCES passengers(passenger_id) ON DELETE SET NULL,
    flight_id BIGINT REFERENCES flights(flight_id) ON DELETE SET NULL,
    booking_date TIMESTAMPTZ NOT NULL DEFAULT now(),
    seat_number VARCHAR(10),
    fare_class VARCHAR(20),
    status VARCHAR(20) NOT NULL
);`
