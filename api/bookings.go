package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Domenick1991/airline-tracking/internal/domain"
	"github.com/Domenick1991/airline-tracking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

// createBookingRequest has no status field: new bookings are always
// CONFIRMED and a status key in the body is ignored.
type createBookingRequest struct {
	PassengerID *int64  `json:"passenger_id" binding:"required"`
	FlightID    *int64  `json:"flight_id" binding:"required"`
	SeatNumber  *string `json:"seat_number"`
	FareClass   *string `json:"fare_class"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *BookingHandler) list(c *gin.Context) {
	var (
		filter booking.ListFilter
		err    error
	)
	if filter.FlightID, err = optionalIDQuery(c, "flight_id"); err != nil {
		badRequest(c, err)
		return
	}
	if filter.PassengerID, err = optionalIDQuery(c, "passenger_id"); err != nil {
		badRequest(c, err)
		return
	}

	views, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Booking not found")
		return
	}
	c.JSON(http.StatusOK, views)
}

func optionalIDQuery(c *gin.Context, param string) (*int64, error) {
	raw := c.Query(param)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", param)
	}
	return &v, nil
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateBookingInput{
		PassengerID: *req.PassengerID,
		FlightID:    *req.FlightID,
		SeatNumber:  req.SeatNumber,
		FareClass:   req.FareClass,
	})
	if err != nil {
		respondError(c, err, "Booking not found")
		return
	}
	if b == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not create booking"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Booking created", "booking_id": b.ID, "booking": b})
}

func (h *BookingHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var update domain.BookingUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.service.Update(c.Request.Context(), id, update); err != nil {
		respondError(c, err, "Booking not found or nothing to update")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking updated"})
}

func (h *BookingHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Booking not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}
