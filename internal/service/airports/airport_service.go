package airports

import (
	"context"

	"github.com/Domenick1991/airline-tracking/internal/domain"
	"github.com/Domenick1991/airline-tracking/internal/repository"
)

type AirportUseCase interface {
	List(ctx context.Context) ([]domain.Airport, error)
	Create(ctx context.Context, airport domain.Airport) error
}

type AirportService struct {
	repo repository.AirportRepository
}

func NewAirportService(repo repository.AirportRepository) *AirportService {
	return &AirportService{repo: repo}
}

func (s *AirportService) List(ctx context.Context) ([]domain.Airport, error) {
	return s.repo.List(ctx)
}

func (s *AirportService) Create(ctx context.Context, airport domain.Airport) error {
	return s.repo.Create(ctx, airport)
}

var _ AirportUseCase = (*AirportService)(nil)
