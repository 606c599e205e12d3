package api

import (
	"net/http"

	"github.com/Domenick1991/airline-tracking/internal/domain"
	"github.com/Domenick1991/airline-tracking/internal/service/airports"
	"github.com/gin-gonic/gin"
)

type AirportHandler struct {
	service airports.AirportUseCase
}

type createAirportRequest struct {
	Code    string `json:"airport_code" binding:"required"`
	Name    string `json:"airport_name" binding:"required"`
	City    string `json:"city" binding:"required"`
	Country string `json:"country" binding:"required"`
}

func NewAirportHandler(service airports.AirportUseCase) *AirportHandler {
	return &AirportHandler{service: service}
}

func (h *AirportHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.create)
}

func (h *AirportHandler) list(c *gin.Context) {
	airports, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Airport not found")
		return
	}
	c.JSON(http.StatusOK, airports)
}

func (h *AirportHandler) create(c *gin.Context) {
	var req createAirportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	airport := domain.Airport{Code: req.Code, Name: req.Name, City: req.City, Country: req.Country}
	if err := h.service.Create(c.Request.Context(), airport); err != nil {
		respondError(c, err, "Airport not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Airport added successfully", "airport_code": airport.Code})
}
