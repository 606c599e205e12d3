package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airline-tracking/internal/domain"
)

type PassengerRepository interface {
	List(ctx context.Context) ([]domain.Passenger, error)
	Create(ctx context.Context, passenger *domain.Passenger) error
	Update(ctx context.Context, id int64, update domain.PassengerUpdate) error
	Delete(ctx context.Context, id int64) error
}

type PGPassengerRepository struct {
	db DB
}

func NewPassengerRepository(db DB) PassengerRepository {
	return &PGPassengerRepository{db: db}
}

func (r *PGPassengerRepository) List(ctx context.Context) ([]domain.Passenger, error) {
	rows, err := r.db.Query(ctx, `SELECT passenger_id, first_name, last_name, email, phone FROM passengers ORDER BY passenger_id`)
	if err != nil {
		return nil, fmt.Errorf("list passengers: %w", err)
	}
	defer rows.Close()

	passengers := make([]domain.Passenger, 0)
	for rows.Next() {
		var p domain.Passenger
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Phone); err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}
	return passengers, rows.Err()
}

func (r *PGPassengerRepository) Create(ctx context.Context, passenger *domain.Passenger) error {
	err := r.db.QueryRow(ctx, `INSERT INTO passengers (first_name, last_name, email, phone) VALUES ($1, $2, $3, $4) RETURNING passenger_id`,
		passenger.FirstName, passenger.LastName, passenger.Email, passenger.Phone).
		Scan(&passenger.ID)
	if err != nil {
		return fmt.Errorf("create passenger: %w", err)
	}
	return nil
}

func (r *PGPassengerRepository) Update(ctx context.Context, id int64, update domain.PassengerUpdate) error {
	var set setClause
	if update.FirstName.Set {
		set.add("first_name", update.FirstName.Value)
	}
	if update.LastName.Set {
		set.add("last_name", update.LastName.Value)
	}
	if update.Email.Set {
		set.add("email", update.Email.Value)
	}
	if update.Phone.Set {
		set.add("phone", update.Phone.Value)
	}
	if set.empty() {
		return domain.ErrNothingToUpdate
	}

	query, args := set.build("passengers", "passenger_id", id)
	cmd, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update passenger %d: %w", id, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the passenger. Bookings keep their rows with a NULL
// passenger_id and drop out of the joined booking views.
func (r *PGPassengerRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM passengers WHERE passenger_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete passenger %d: %w", id, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ PassengerRepository = (*PGPassengerRepository)(nil)
