package passengers

import (
	"context"

	"github.com/Domenick1991/airline-tracking/internal/domain"
	"github.com/Domenick1991/airline-tracking/internal/logging"
	"github.com/Domenick1991/airline-tracking/internal/repository"
)

type PassengerUseCase interface {
	List(ctx context.Context) ([]domain.Passenger, error)
	Create(ctx context.Context, passenger *domain.Passenger) error
	Update(ctx context.Context, id int64, update domain.PassengerUpdate) error
	Delete(ctx context.Context, id int64) error
}

type PassengerService struct {
	repo repository.PassengerRepository
}

func NewPassengerService(repo repository.PassengerRepository) *PassengerService {
	return &PassengerService{repo: repo}
}

func (s *PassengerService) List(ctx context.Context) ([]domain.Passenger, error) {
	return s.repo.List(ctx)
}

func (s *PassengerService) Create(ctx context.Context, passenger *domain.Passenger) error {
	return s.repo.Create(ctx, passenger)
}

func (s *PassengerService) Update(ctx context.Context, id int64, update domain.PassengerUpdate) error {
	return s.repo.Update(ctx, id, update)
}

// Delete removes the passenger; their bookings stay and lose the reference.
func (s *PassengerService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logging.Info("Passenger deleted", "passenger_id", id)
	return nil
}

var _ PassengerUseCase = (*PassengerService)(nil)
