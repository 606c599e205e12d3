package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airline-tracking/config"
	"github.com/Domenick1991/airline-tracking/internal/email"
	"github.com/Domenick1991/airline-tracking/internal/kafka"
	"github.com/Domenick1991/airline-tracking/internal/logging"
	"github.com/Domenick1991/airline-tracking/internal/repository"
	"github.com/Domenick1991/airline-tracking/internal/service/booking"
	"github.com/Domenick1991/airline-tracking/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
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

	if !cfg.Kafka.Enabled() {
		logging.Fatal("Worker needs kafka.brokers to be configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logging.Fatal("Failed to create postgres pool", "error", err)
	}
	defer pool.Close()

	bookings := booking.NewBookingService(repository.NewBookingRepository(pool))
	w := worker.New(bookings, email.NewSender(), cfg.Worker.NotifyPassengers)

	bookingTopic := cfg.Kafka.BookingEventsTopic()

	flightConsumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroup("flights"), cfg.Kafka.FlightsTopic)
	defer flightConsumer.Close()
	bookingConsumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerGroup("bookings"), bookingTopic)
	defer bookingConsumer.Close()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return flightConsumer.Consume(gctx, w.HandleFlightMessage) })
	g.Go(func() error { return bookingConsumer.Consume(gctx, w.HandleBookingMessage) })

	logging.Info("Worker started", "flights_topic", cfg.Kafka.FlightsTopic, "bookings_topic", bookingTopic)
	if err := g.Wait(); err != nil {
		logging.Error("Consumer stopped", "error", err)
	}
	logging.Info("Worker stopped")
}
