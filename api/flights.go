package api

import (
	"net/http"

	"github.com/Domenick1991/airline-tracking/internal/domain"
	"github.com/Domenick1991/airline-tracking/internal/service/booking"
	"github.com/Domenick1991/airline-tracking/internal/service/flights"
	"github.com/gin-gonic/gin"
)

const flightNotFound = "Flight not found"

type FlightHandler struct {
	service  flights.FlightUseCase
	bookings booking.BookingUseCase
}

type createFlightRequest struct {
	FlightNumber     string            `json:"flight_number" binding:"required"`
	DepartureAirport string            `json:"departure_airport" binding:"required"`
	ArrivalAirport   string            `json:"arrival_airport" binding:"required"`
	DepartureTime    *domain.Timestamp `json:"departure_time" binding:"required"`
	ArrivalTime      *domain.Timestamp `json:"arrival_time" binding:"required"`
	Status           string            `json:"status" binding:"required"`
}

type listFlightsQuery struct {
	ArrivalAirport   string `form:"arrival_airport"`
	DepartureAirport string `form:"departure_airport"`
	Airline          string `form:"airline"`
}

func NewFlightHandler(service flights.FlightUseCase, bookings booking.BookingUseCase) *FlightHandler {
	return &FlightHandler{service: service, bookings: bookings}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.create)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
	router.GET("/:id/bookings", h.listBookings)
}

func (h *FlightHandler) list(c *gin.Context) {
	var q listFlightsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.service.List(c.Request.Context(), flights.ListFilter{
		ArrivalAirport:   q.ArrivalAirport,
		DepartureAirport: q.DepartureAirport,
		Airline:          q.Airline,
	})
	if err != nil {
		respondError(c, err, flightNotFound)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, flightNotFound)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) create(c *gin.Context) {
	var req createFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	flight := &domain.Flight{
		FlightNumber:     req.FlightNumber,
		DepartureAirport: req.DepartureAirport,
		ArrivalAirport:   req.ArrivalAirport,
		DepartureTime:    req.DepartureTime.Time(),
		ArrivalTime:      req.ArrivalTime.Time(),
		Status:           req.Status,
	}
	if err := h.service.Create(c.Request.Context(), flight); err != nil {
		respondError(c, err, flightNotFound)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Flight created", "flight_id": flight.ID})
}

func (h *FlightHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var update domain.FlightUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err)
		return
	}

	flight, err := h.service.Update(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, err, "Flight not found or nothing to update")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Flight updated", "flight": flight})
}

func (h *FlightHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, flightNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Flight deleted"})
}

// listBookings is the passenger manifest of one flight.
func (h *FlightHandler) listBookings(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	views, err := h.bookings.List(c.Request.Context(), booking.ListFilter{FlightID: &id})
	if err != nil {
		respondError(c, err, flightNotFound)
		return
	}
	c.JSON(http.StatusOK, views)
}
