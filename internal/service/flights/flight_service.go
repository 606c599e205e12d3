package flights

import (
	"context"
	"strconv"

	"github.com/Domenick1991/airline-tracking/internal/domain"
	"github.com/Domenick1991/airline-tracking/internal/kafka"
	"github.com/Domenick1991/airline-tracking/internal/logging"
	"github.com/Domenick1991/airline-tracking/internal/repository"
)

// ListFilter narrows the flight list. Empty fields do not filter.
type ListFilter struct {
	ArrivalAirport   string
	DepartureAirport string
	Airline          string
}

type FlightUseCase interface {
	List(ctx context.Context, filter ListFilter) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, id int64, update domain.FlightUpdate) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) error
}

type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	PublishWithRetry(ctx context.Context, topic, key string, value any, maxRetries int) error
}

type CacheObserver interface {
	Hit()
	Miss()
}

type FlightService struct {
	repo     repository.FlightRepository
	cache    FlightCache
	observer CacheObserver
	producer Producer
	topic    string
	retries  int
}

type FlightServiceOption func(*FlightService)

// WithProducer publishes flight events to topic.
func WithProducer(producer Producer, topic string) FlightServiceOption {
	return func(s *FlightService) {
		s.producer = producer
		s.topic = topic
	}
}

func WithCacheObserver(observer CacheObserver) FlightServiceOption {
	return func(s *FlightService) {
		s.observer = observer
	}
}

// WithPublishRetries bounds the publish attempts per event. Values below one
// mean a single attempt.
func WithPublishRetries(n int) FlightServiceOption {
	return func(s *FlightService) {
		s.retries = n
	}
}

func NewFlightService(repo repository.FlightRepository, cache FlightCache, opts ...FlightServiceOption) *FlightService {
	s := &FlightService{repo: repo, cache: cache, retries: 1}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FlightService) List(ctx context.Context, filter ListFilter) ([]domain.Flight, error) {
	var (
		flights []domain.Flight
		err     error
	)
	switch {
	case filter.ArrivalAirport != "" && filter.DepartureAirport != "":
		flights, err = s.repo.ListByRoute(ctx, filter.ArrivalAirport, filter.DepartureAirport)
	case filter.ArrivalAirport != "":
		flights, err = s.repo.ListByArrival(ctx, filter.ArrivalAirport)
	case filter.DepartureAirport != "":
		flights, err = s.repo.ListByDeparture(ctx, filter.DepartureAirport)
	default:
		flights, err = s.listAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	if filter.Airline == "" {
		return flights, nil
	}
	matched := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if f.MatchesAirline(filter.Airline) {
			matched = append(matched, f)
		}
	}
	return matched, nil
}

// listAll reads the unfiltered list through the cache.
func (s *FlightService) listAll(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		cached, err := s.cache.GetFlights(ctx)
		if err != nil {
			logging.Warn("Flight cache read failed", "error", err)
		}
		if err == nil && cached != nil {
			s.hit()
			return cached, nil
		}
	}
	s.miss()

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, flights); err != nil {
			logging.Warn("Flight cache write failed", "error", err)
		}
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Create(ctx context.Context, flight *domain.Flight) error {
	if err := s.repo.Create(ctx, flight); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *FlightService) Update(ctx context.Context, id int64, update domain.FlightUpdate) (*domain.Flight, error) {
	flight, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	s.publish(ctx, kafka.NewFlightEvent(kafka.EventFlightUpdated, id, flight))
	if update.Status.Set {
		s.publish(ctx, kafka.NewFlightEvent(kafka.EventFlightStatusChanged, id, flight))
	}
	return flight, nil
}

func (s *FlightService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	s.publish(ctx, kafka.NewFlightEvent(kafka.EventFlightDeleted, id, nil))
	return nil
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		logging.Warn("Flight cache invalidation failed", "error", err)
	}
}

// publish is best effort: the write already happened.
func (s *FlightService) publish(ctx context.Context, event kafka.FlightEvent) {
	if s.producer == nil || s.topic == "" {
		return
	}
	if err := s.producer.PublishWithRetry(ctx, s.topic, strconv.FormatInt(event.FlightID, 10), event, max(s.retries, 1)); err != nil {
		logging.Warn("Failed to publish flight event", "type", event.Type, "flight_id", event.FlightID, "error", err)
	}
}

func (s *FlightService) hit() {
	if s.observer != nil {
		s.observer.Hit()
	}
}

func (s *FlightService) miss() {
	if s.observer != nil {
		s.observer.Miss()
	}
}

var _ FlightUseCase = (*FlightService)(nil)
