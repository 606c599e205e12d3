package api

import (
	"fmt"
	"net/http"

	"github.com/Domenick1991/airline-tracking/internal/domain"
	"github.com/Domenick1991/airline-tracking/internal/service/passengers"
	"github.com/gin-gonic/gin"
)

type PassengerHandler struct {
	service passengers.PassengerUseCase
}

type createPassengerRequest struct {
	FirstName string  `json:"first_name" binding:"required"`
	LastName  string  `json:"last_name" binding:"required"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone"`
}

func NewPassengerHandler(service passengers.PassengerUseCase) *PassengerHandler {
	return &PassengerHandler{service: service}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *PassengerHandler) list(c *gin.Context) {
	passengers, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Passenger not found")
		return
	}
	c.JSON(http.StatusOK, passengers)
}

func (h *PassengerHandler) create(c *gin.Context) {
	var req createPassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	passenger := &domain.Passenger{FirstName: req.FirstName, LastName: req.LastName, Email: req.Email, Phone: req.Phone}
	if err := h.service.Create(c.Request.Context(), passenger); err != nil {
		respondError(c, err, "Passenger not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Passenger created", "passenger_id": passenger.ID})
}

func (h *PassengerHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var update domain.PassengerUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err)
		return
	}
	if update.Email.Set && update.Email.Value != "" {
		if err := validate.Var(update.Email.Value, "email"); err != nil {
			badRequest(c, fmt.Errorf("invalid email %q", update.Email.Value))
			return
		}
	}

	if err := h.service.Update(c.Request.Context(), id, update); err != nil {
		respondError(c, err, "Passenger not found or nothing to update")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Passenger updated"})
}

func (h *PassengerHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Passenger not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Passenger deleted"})
}
