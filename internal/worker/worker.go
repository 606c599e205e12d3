package worker

import (
	"context"
	"encoding/json"

	"github.com/Domenick1991/airline-tracking/internal/domain"
	"github.com/Domenick1991/airline-tracking/internal/email"
	"github.com/Domenick1991/airline-tracking/internal/kafka"
	"github.com/Domenick1991/airline-tracking/internal/logging"
	"github.com/Domenick1991/airline-tracking/internal/service/booking"
	kafkago "github.com/segmentio/kafka-go"
)

type BookingLister interface {
	List(ctx context.Context, filter booking.ListFilter) ([]domain.BookingView, error)
}

type Notifier interface {
	NotifyFlightStatus(ctx context.Context, to email.Recipient, event kafka.FlightEvent) error
}

// Worker reacts to flight and booking events. Malformed messages and
// per-passenger delivery failures are logged and skipped so one bad record
// does not stall the consumer.
type Worker struct {
	bookings BookingLister
	notifier Notifier
	notify   bool
}

func New(bookings BookingLister, notifier Notifier, notifyPassengers bool) *Worker {
	return &Worker{bookings: bookings, notifier: notifier, notify: notifyPassengers}
}

func (w *Worker) HandleFlightMessage(ctx context.Context, msg kafkago.Message) error {
	var event kafka.FlightEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		logging.Warn("Skipping malformed flight event", "offset", msg.Offset, "error", err)
		return nil
	}

	logging.Info("Flight event received", "type", event.Type, "flight_id", event.FlightID, "status", event.Status)
	if event.Type != kafka.EventFlightStatusChanged || !w.notify {
		return nil
	}

	manifest, err := w.bookings.List(ctx, booking.ListFilter{FlightID: &event.FlightID})
	if err != nil {
		logging.Error("Failed to load flight manifest", "flight_id", event.FlightID, "error", err)
		return nil
	}

	sent := 0
	for _, v := range manifest {
		to, ok := recipient(v)
		if !ok {
			continue
		}
		if err := w.notifier.NotifyFlightStatus(ctx, to, event); err != nil {
			logging.Warn("Failed to notify passenger", "booking_id", v.ID, "error", err)
			continue
		}
		sent++
	}
	logging.Info("Passengers notified", "flight_id", event.FlightID, "sent", sent, "bookings", len(manifest))
	return nil
}

func (w *Worker) HandleBookingMessage(_ context.Context, msg kafkago.Message) error {
	var event kafka.BookingEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		logging.Warn("Skipping malformed booking event", "offset", msg.Offset, "error", err)
		return nil
	}

	fields := []interface{}{"type", event.Type, "booking_id", event.BookingID, "event_id", event.ID}
	if event.FlightID != nil {
		fields = append(fields, "flight_id", *event.FlightID)
	}
	if event.PassengerID != nil {
		fields = append(fields, "passenger_id", *event.PassengerID)
	}
	if event.Status != "" {
		fields = append(fields, "status", event.Status)
	}
	logging.Info("Booking audit", fields...)
	return nil
}

func recipient(v domain.BookingView) (email.Recipient, bool) {
	if v.Email == nil || *v.Email == "" {
		return email.Recipient{}, false
	}
	to := email.Recipient{Email: *v.Email}
	if v.FirstName != nil {
		to.FirstName = *v.FirstName
	}
	if v.LastName != nil {
		to.LastName = *v.LastName
	}
	return to, true
}
