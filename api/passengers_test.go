package api

import (
	"net/http"
	"testing"

	"github.com/Domenick1991/airline-tracking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPassengerHandler_List(t *testing.T) {
	mockService := &MockPassengerUseCase{}
	r := newRouter("/passengers", NewPassengerHandler(mockService))

	mockService.On("List", mock.Anything).Return([]domain.Passenger{{ID: 1, FirstName: "Ada", LastName: "Lovelace"}}, nil).Once()

	w := performRequest(r, http.MethodGet, "/passengers/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"passenger_id":1,"first_name":"Ada","last_name":"Lovelace","email":null,"phone":null}]`, w.Body.String())
}

func TestPassengerHandler_Create(t *testing.T) {
	mockService := &MockPassengerUseCase{}
	r := newRouter("/passengers", NewPassengerHandler(mockService))

	mockService.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Passenger) bool {
		return p.FirstName == "Grace" && p.Email != nil && *p.Email == "grace@example.com" && p.Phone == nil
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Passenger).ID = 5
	}).Return(nil).Once()

	w := performRequest(r, http.MethodPost, "/passengers/", `{"first_name":"Grace","last_name":"Hopper","email":"grace@example.com"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"Passenger created","passenger_id":5}`, w.Body.String())
}

func TestPassengerHandler_CreateValidation(t *testing.T) {
	for _, body := range []string{
		`{"first_name":"Grace","last_name":"Hopper","email":"not-an-email"}`,
		`{"first_name":"Grace"}`,
		`not json`,
	} {
		mockService := &MockPassengerUseCase{}
		r := newRouter("/passengers", NewPassengerHandler(mockService))

		w := performRequest(r, http.MethodPost, "/passengers/", body)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	}
}

func TestPassengerHandler_UpdatePhoneOnly(t *testing.T) {
	mockService := &MockPassengerUseCase{}
	r := newRouter("/passengers", NewPassengerHandler(mockService))

	mockService.On("Update", mock.Anything, int64(4), domain.PassengerUpdate{Phone: domain.Some("555-0100")}).Return(nil).Once()

	w := performRequest(r, http.MethodPut, "/passengers/4", `{"phone":"555-0100"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Passenger updated"}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestPassengerHandler_UpdateInvalidEmail(t *testing.T) {
	mockService := &MockPassengerUseCase{}
	r := newRouter("/passengers", NewPassengerHandler(mockService))

	w := performRequest(r, http.MethodPut, "/passengers/4", `{"email":"nope"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestPassengerHandler_UpdateNotFoundOrEmpty(t *testing.T) {
	for _, err := range []error{domain.ErrNotFound, domain.ErrNothingToUpdate} {
		mockService := &MockPassengerUseCase{}
		r := newRouter("/passengers", NewPassengerHandler(mockService))
		mockService.On("Update", mock.Anything, int64(4), mock.Anything).Return(err).Once()

		w := performRequest(r, http.MethodPut, "/passengers/4", `{}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Passenger not found or nothing to update"}`, w.Body.String())
	}
}

func TestPassengerHandler_DeleteTwice(t *testing.T) {
	mockService := &MockPassengerUseCase{}
	r := newRouter("/passengers", NewPassengerHandler(mockService))
	mockService.On("Delete", mock.Anything, int64(4)).Return(nil).Once()
	mockService.On("Delete", mock.Anything, int64(4)).Return(domain.ErrNotFound).Once()

	assert.Equal(t, http.StatusOK, performRequest(r, http.MethodDelete, "/passengers/4", "").Code)

	w := performRequest(r, http.MethodDelete, "/passengers/4", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Passenger not found"}`, w.Body.String())
}
