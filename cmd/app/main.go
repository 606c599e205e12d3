package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airline-tracking/config"
	"github.com/Domenick1991/airline-tracking/internal/bootstrap"
	"github.com/Domenick1991/airline-tracking/internal/cache"
	"github.com/Domenick1991/airline-tracking/internal/kafka"
	"github.com/Domenick1991/airline-tracking/internal/logging"
	"github.com/Domenick1991/airline-tracking/internal/metrics"
	"github.com/Domenick1991/airline-tracking/internal/repository"
	"github.com/Domenick1991/airline-tracking/internal/service/airports"
	"github.com/Domenick1991/airline-tracking/internal/service/booking"
	"github.com/Domenick1991/airline-tracking/internal/service/flights"
	"github.com/Domenick1991/airline-tracking/internal/service/passengers"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.LoadConfig(config.Path())
	if err != nil {
		panic(err)
	}
	if err := logging.Init(cfg.Log.Env); err != nil {
		panic(err)
	}
	defer logging.Close()

	if cfg.Log.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logging.Fatal("Failed to create postgres pool", "error", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := repository.Migrate(ctx, pool); err != nil {
			logging.Fatal("Migration failed", "error", err)
		}
	}

	reg := metrics.NewRegistry()

	flightCache := cache.New(cfg.Redis, cfg.Cache.FlightsTTL())
	defer flightCache.Close()

	flightOpts := []flights.FlightServiceOption{flights.WithCacheObserver(reg.CacheObserver("flights"))}
	var bookingOpts []booking.BookingServiceOption
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, kafka.WithMetrics(reg))
		defer producer.Close()

		if err := producer.CheckConnection(ctx); err != nil {
			logging.Warn("Kafka not reachable yet, events may be lost", "error", err)
		}
		flightOpts = append(flightOpts,
			flights.WithProducer(producer, cfg.Kafka.FlightsTopic),
			flights.WithPublishRetries(cfg.Kafka.PublishRetries),
		)
		bookingOpts = append(bookingOpts,
			booking.WithProducer(producer, cfg.Kafka.BookingsTopic),
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
			booking.WithPublishRetries(cfg.Kafka.PublishRetries),
		)
	} else {
		logging.Info("Kafka disabled, domain events are not published")
	}

	svc := bootstrap.Services{
		Airports:   airports.NewAirportService(repository.NewAirportRepository(pool)),
		Flights:    flights.NewFlightService(repository.NewFlightRepository(pool), flightCache, flightOpts...),
		Passengers: passengers.NewPassengerService(repository.NewPassengerRepository(pool)),
		Bookings:   booking.NewBookingService(repository.NewBookingRepository(pool), bookingOpts...),
	}

	handler := bootstrap.NewRouter(cfg.HTTP, svc, reg, map[string]bootstrap.Pinger{
		"postgres": pool,
		"cache":    flightCache,
	})

	if err := bootstrap.Run(ctx, cfg.HTTP, handler); err != nil {
		logging.Fatal("Server error", "error", err)
	}
	logging.Info("Server stopped")
}
