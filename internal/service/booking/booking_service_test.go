package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/airline-tracking/internal/domain"
	"github.com/Domenick1991/airline-tracking/internal/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) List(ctx context.Context) ([]domain.BookingView, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.BookingView), args.Error(1)
}

func (m *MockBookingRepository) ListByFlight(ctx context.Context, flightID int64) ([]domain.BookingView, error) {
	args := m.Called(ctx, flightID)
	return args.Get(0).([]domain.BookingView), args.Error(1)
}

func (m *MockBookingRepository) ListByPassenger(ctx context.Context, passengerID int64) ([]domain.BookingView, error) {
	args := m.Called(ctx, passengerID)
	return args.Get(0).([]domain.BookingView), args.Error(1)
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) Update(ctx context.Context, id int64, update domain.BookingUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProducer struct {
	mock.Mock
	retries []int
}

func (m *MockProducer) PublishWithRetry(ctx context.Context, topic, key string, value any, maxRetries int) error {
	m.retries = append(m.retries, maxRetries)
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func int64Ptr(v int64) *int64 { return &v }

func TestBookingService_List_PicksView(t *testing.T) {
	ctx := context.Background()
	views := []domain.BookingView{{Booking: domain.Booking{ID: 1}}}

	testCases := []struct {
		name   string
		filter ListFilter
		method string
		args   []any
	}{
		{name: "all", filter: ListFilter{}, method: "List", args: []any{ctx}},
		{name: "by flight", filter: ListFilter{FlightID: int64Ptr(3)}, method: "ListByFlight", args: []any{ctx, int64(3)}},
		{name: "by passenger", filter: ListFilter{PassengerID: int64Ptr(2)}, method: "ListByPassenger", args: []any{ctx, int64(2)}},
		{name: "flight wins", filter: ListFilter{FlightID: int64Ptr(3), PassengerID: int64Ptr(2)}, method: "ListByFlight", args: []any{ctx, int64(3)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &MockBookingRepository{}
			mockRepo.On(tc.method, tc.args...).Return(views, nil).Once()

			result, err := NewBookingService(mockRepo).List(ctx, tc.filter)

			require.NoError(t, err)
			assert.Equal(t, views, result)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockProducer := &MockProducer{}
	service := NewBookingService(mockRepo, WithProducer(mockProducer, "bookings"))

	ctx := context.Background()
	seat := "12A"

	mockRepo.On("Create", ctx, mock.MatchedBy(func(b *domain.Booking) bool {
		return *b.PassengerID == 2 && *b.FlightID == 3 && *b.SeatNumber == "12A" && b.FareClass == nil
	})).Run(func(args mock.Arguments) {
		b := args.Get(1).(*domain.Booking)
		b.ID = 10
		b.Status = domain.BookingStatusConfirmed
	}).Return(nil).Once()

	mockProducer.On("PublishWithRetry", ctx, "bookings", "10", mock.MatchedBy(func(e kafka.BookingEvent) bool {
		return e.Type == kafka.EventBookingCreated && e.Status == "CONFIRMED" && *e.FlightID == 3
	})).Return(nil).Once()

	booking, err := service.Create(ctx, CreateBookingInput{PassengerID: 2, FlightID: 3, SeatNumber: &seat})

	require.NoError(t, err)
	assert.Equal(t, int64(10), booking.ID)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	mockRepo.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestBookingService_Create_RepositoryError(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockProducer := &MockProducer{}
	service := NewBookingService(mockRepo, WithProducer(mockProducer, "bookings"))

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.Anything).Return(errors.New("violates foreign key constraint")).Once()

	booking, err := service.Create(ctx, CreateBookingInput{PassengerID: 99, FlightID: 3})

	assert.Nil(t, booking)
	assert.Error(t, err)
	mockProducer.AssertNotCalled(t, "PublishWithRetry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_Create_PublishFailureIsNotFatal(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockProducer := &MockProducer{}
	service := NewBookingService(mockRepo, WithProducer(mockProducer, "bookings"), WithNotificationsTopic("notifications"))

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
	mockProducer.On("PublishWithRetry", ctx, "bookings", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	_, err := service.Create(ctx, CreateBookingInput{PassengerID: 1, FlightID: 1})

	assert.NoError(t, err)
	mockProducer.AssertNotCalled(t, "PublishWithRetry", ctx, "notifications", mock.Anything, mock.Anything)
}

func TestBookingService_Publish_WithNotifications(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockProducer := &MockProducer{}
	service := NewBookingService(mockRepo, WithProducer(mockProducer, "bookings"), WithNotificationsTopic("notifications"))

	ctx := context.Background()
	mockRepo.On("Delete", ctx, int64(5)).Return(nil).Once()
	mockProducer.On("PublishWithRetry", ctx, "bookings", "5", mock.Anything).Return(nil).Once()
	mockProducer.On("PublishWithRetry", ctx, "notifications", "5", mock.Anything).Return(nil).Once()

	require.NoError(t, service.Delete(ctx, 5))
	mockProducer.AssertExpectations(t)
}

func TestBookingService_Publish_UsesConfiguredRetries(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockProducer := &MockProducer{}
	service := NewBookingService(mockRepo,
		WithProducer(mockProducer, "bookings"),
		WithNotificationsTopic("notifications"),
		WithPublishRetries(3),
	)

	ctx := context.Background()
	mockRepo.On("Delete", ctx, int64(6)).Return(nil).Once()
	mockProducer.On("PublishWithRetry", ctx, "bookings", "6", mock.Anything).Return(nil).Once()
	mockProducer.On("PublishWithRetry", ctx, "notifications", "6", mock.Anything).Return(nil).Once()

	require.NoError(t, service.Delete(ctx, 6))
	mockProducer.AssertExpectations(t)
	assert.Equal(t, []int{3, 3}, mockProducer.retries)
}

func TestBookingService_Publish_DefaultsToSingleAttempt(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockProducer := &MockProducer{}
	service := NewBookingService(mockRepo, WithProducer(mockProducer, "bookings"), WithPublishRetries(0))

	ctx := context.Background()
	mockRepo.On("Delete", ctx, int64(7)).Return(nil).Once()
	mockProducer.On("PublishWithRetry", ctx, "bookings", "7", mock.Anything).Return(nil).Once()

	require.NoError(t, service.Delete(ctx, 7))
	assert.Equal(t, []int{1}, mockProducer.retries)
}

func TestBookingService_Publish_NoProducer(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := NewBookingService(mockRepo)

	ctx := context.Background()
	mockRepo.On("Delete", ctx, int64(5)).Return(nil).Once()

	assert.NoError(t, service.Delete(ctx, 5))
}

func TestBookingService_Update(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockProducer := &MockProducer{}
	service := NewBookingService(mockRepo, WithProducer(mockProducer, "bookings"))

	ctx := context.Background()
	update := domain.BookingUpdate{Status: domain.Some("CANCELLED")}
	mockRepo.On("Update", ctx, int64(4), update).Return(nil).Once()
	mockProducer.On("PublishWithRetry", ctx, "bookings", "4", mock.MatchedBy(func(e kafka.BookingEvent) bool {
		return e.Type == kafka.EventBookingUpdated && e.Status == "CANCELLED" && e.SeatNumber == nil
	})).Return(nil).Once()

	require.NoError(t, service.Update(ctx, 4, update))
	mockProducer.AssertExpectations(t)
}

func TestBookingService_Update_Errors(t *testing.T) {
	ctx := context.Background()

	for _, want := range []error{domain.ErrNotFound, domain.ErrNothingToUpdate} {
		mockRepo := &MockBookingRepository{}
		mockProducer := &MockProducer{}
		mockRepo.On("Update", ctx, int64(4), domain.BookingUpdate{}).Return(want).Once()

		err := NewBookingService(mockRepo, WithProducer(mockProducer, "bookings")).Update(ctx, 4, domain.BookingUpdate{})

		assert.ErrorIs(t, err, want)
		mockProducer.AssertNotCalled(t, "PublishWithRetry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestBookingService_Delete_NotFound(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	ctx := context.Background()
	mockRepo.On("Delete", ctx, int64(5)).Return(domain.ErrNotFound).Once()

	assert.ErrorIs(t, NewBookingService(mockRepo).Delete(ctx, 5), domain.ErrNotFound)
}
