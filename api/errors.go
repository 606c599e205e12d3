package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Domenick1991/airline-tracking/internal/domain"
	"github.com/Domenick1991/airline-tracking/internal/logging"
	"github.com/Domenick1991/airline-tracking/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// respondError maps domain errors to 404 with notFound as the message and
// everything else to 500.
func respondError(c *gin.Context, err error, notFound string) {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrNothingToUpdate) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
		return
	}

	_ = c.Error(err)
	logging.Error("Request failed", "request_id", middleware.GetRequestID(c), "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
