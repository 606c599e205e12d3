package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/Domenick1991/airline-tracking/api"
	"github.com/Domenick1991/airline-tracking/config"
	"github.com/Domenick1991/airline-tracking/internal/logging"
	"github.com/Domenick1991/airline-tracking/internal/metrics"
	"github.com/Domenick1991/airline-tracking/internal/middleware"
	"github.com/Domenick1991/airline-tracking/internal/service/airports"
	"github.com/Domenick1991/airline-tracking/internal/service/booking"
	"github.com/Domenick1991/airline-tracking/internal/service/flights"
	"github.com/Domenick1991/airline-tracking/internal/service/passengers"
	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Services struct {
	Airports   airports.AirportUseCase
	Flights    flights.FlightUseCase
	Passengers passengers.PassengerUseCase
	Bookings   booking.BookingUseCase
}

// Pinger is a dependency /healthz checks, such as the pool or the cache.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewRouter builds the gin engine with every API route and wraps it in the
// CORS handler.
func NewRouter(cfg config.HTTPConfig, svc Services, reg *metrics.Registry, checks map[string]Pinger) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logging(), middleware.Metrics(reg))
	if cfg.RateLimitRPS > 0 {
		r.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware())
	}

	api.NewAirportHandler(svc.Airports).Register(r.Group("/airports"))
	api.NewFlightHandler(svc.Flights, svc.Bookings).Register(r.Group("/flights"))
	api.NewPassengerHandler(svc.Passengers).Register(r.Group("/passengers"))
	api.NewBookingHandler(svc.Bookings).Register(r.Group("/bookings"))

	r.GET("/healthz", healthHandler(checks))
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg.Gatherer, promhttp.HandlerOpts{})))

	if cfg.SwaggerDir != "" {
		r.Static("/swagger", cfg.SwaggerDir)
		r.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/airline.swagger.json"))))
	}

	logging.Info("Router initialized", "allowed_origins", cfg.AllowedOrigins, "swagger", cfg.SwaggerDir != "")

	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})(r)
}

func healthHandler(checks map[string]Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		report := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check.Ping(ctx); err != nil {
				status = http.StatusServiceUnavailable
				report[name] = err.Error()
				continue
			}
			report[name] = "ok"
		}

		state := "ok"
		if status != http.StatusOK {
			state = "degraded"
		}
		c.JSON(status, gin.H{"status": state, "checks": report})
	}
}
