package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airline-tracking/internal/domain"
)

type AirportRepository interface {
	List(ctx context.Context) ([]domain.Airport, error)
	Create(ctx context.Context, airport domain.Airport) error
}

type PGAirportRepository struct {
	db DB
}

func NewAirportRepository(db DB) AirportRepository {
	return &PGAirportRepository{db: db}
}

func (r *PGAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, `SELECT airport_code, airport_name, city, country FROM airports`)
	if err != nil {
		return nil, fmt.Errorf("list airports: %w", err)
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.Code, &a.Name, &a.City, &a.Country); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

// Create inserts the airport as given. A duplicate code is rejected by the
// primary key and surfaces as a plain error.
func (r *PGAirportRepository) Create(ctx context.Context, airport domain.Airport) error {
	_, err := r.db.Exec(ctx, `INSERT INTO airports (airport_code, airport_name, city, country) VALUES ($1, $2, $3, $4)`,
		airport.Code, airport.Name, airport.City, airport.Country)
	if err != nil {
		return fmt.Errorf("create airport %s: %w", airport.Code, err)
	}
	return nil
}

var _ AirportRepository = (*PGAirportRepository)(nil)
