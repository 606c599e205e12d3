package booking

import (
	"context"
	"strconv"

	"github.com/Domenick1991/airline-tracking/internal/domain"
	"github.com/Domenick1991/airline-tracking/internal/kafka"
	"github.com/Domenick1991/airline-tracking/internal/logging"
	"github.com/Domenick1991/airline-tracking/internal/repository"
)

// ListFilter selects a booking view. FlightID takes precedence when both
// are set.
type ListFilter struct {
	FlightID    *int64
	PassengerID *int64
}

type BookingUseCase interface {
	List(ctx context.Context, filter ListFilter) ([]domain.BookingView, error)
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	Update(ctx context.Context, id int64, update domain.BookingUpdate) error
	Delete(ctx context.Context, id int64) error
}

type Producer interface {
	PublishWithRetry(ctx context.Context, topic, key string, value any, maxRetries int) error
}

type CreateBookingInput struct {
	PassengerID int64
	FlightID    int64
	SeatNumber  *string
	FareClass   *string
}

type BookingService struct {
	bookings           repository.BookingRepository
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	retries            int
}

type BookingServiceOption func(*BookingService)

// WithProducer publishes booking events to topic.
func WithProducer(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.bookingTopic = topic
	}
}

// WithNotificationsTopic mirrors every booking event to a second topic, the
// one the worker reads when configured.
func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

// WithPublishRetries bounds the publish attempts per event. Values below one
// mean a single attempt.
func WithPublishRetries(n int) BookingServiceOption {
	return func(s *BookingService) {
		s.retries = n
	}
}

func NewBookingService(bookings repository.BookingRepository, opts ...BookingServiceOption) *BookingService {
	s := &BookingService{bookings: bookings, retries: 1}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *BookingService) List(ctx context.Context, filter ListFilter) ([]domain.BookingView, error) {
	switch {
	case filter.FlightID != nil:
		return s.bookings.ListByFlight(ctx, *filter.FlightID)
	case filter.PassengerID != nil:
		return s.bookings.ListByPassenger(ctx, *filter.PassengerID)
	default:
		return s.bookings.List(ctx)
	}
}

// Create stores a CONFIRMED booking. Passenger and flight existence is left
// to the foreign keys.
func (s *BookingService) Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	passengerID, flightID := input.PassengerID, input.FlightID
	booking := &domain.Booking{
		PassengerID: &passengerID,
		FlightID:    &flightID,
		SeatNumber:  input.SeatNumber,
		FareClass:   input.FareClass,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, kafka.NewBookingEvent(kafka.EventBookingCreated, booking.ID, booking))
	return booking, nil
}

func (s *BookingService) Update(ctx context.Context, id int64, update domain.BookingUpdate) error {
	if err := s.bookings.Update(ctx, id, update); err != nil {
		return err
	}

	event := kafka.NewBookingEvent(kafka.EventBookingUpdated, id, nil)
	if update.SeatNumber.Set {
		event.SeatNumber = &update.SeatNumber.Value
	}
	if update.FareClass.Set {
		event.FareClass = &update.FareClass.Value
	}
	if update.Status.Set {
		event.Status = update.Status.Value
	}
	s.publish(ctx, event)
	return nil
}

func (s *BookingService) Delete(ctx context.Context, id int64) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, kafka.NewBookingEvent(kafka.EventBookingDeleted, id, nil))
	return nil
}

func (s *BookingService) publish(ctx context.Context, event kafka.BookingEvent) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	key := strconv.FormatInt(event.BookingID, 10)
	if err := s.producer.PublishWithRetry(ctx, s.bookingTopic, key, event, max(s.retries, 1)); err != nil {
		logging.Warn("Failed to publish booking event", "type", event.Type, "booking_id", event.BookingID, "error", err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.PublishWithRetry(ctx, s.notificationsTopic, key, event, max(s.retries, 1)); err != nil {
			logging.Warn("Failed to publish booking notification", "type", event.Type, "booking_id", event.BookingID, "error", err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
