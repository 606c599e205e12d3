package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Domenick1991/airline-tracking/internal/kafka"
	"github.com/Domenick1991/airline-tracking/internal/logging"
)

var ErrNoAddress = errors.New("recipient has no email address")

type Recipient struct {
	FirstName string
	LastName  string
	Email     string
}

type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers passenger notices. Delivery is a structured log line; no
// mail transport is configured.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrNoAddress
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	logging.Info("Send email", "to", msg.To, "subject", msg.Subject)
	return nil
}

// NotifyFlightStatus tells one passenger about a flight's new status.
func (s *Sender) NotifyFlightStatus(ctx context.Context, to Recipient, event kafka.FlightEvent) error {
	return s.Send(ctx, FlightStatusMessage(to, event))
}

func FlightStatusMessage(to Recipient, event kafka.FlightEvent) Message {
	flight := event.FlightNumber
	if flight == "" {
		flight = fmt.Sprintf("#%d", event.FlightID)
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Dear %s %s,\n\n", to.FirstName, to.LastName)
	fmt.Fprintf(&body, "The status of flight %s", flight)
	if event.DepartureAirport != "" && event.ArrivalAirport != "" {
		fmt.Fprintf(&body, " from %s to %s", event.DepartureAirport, event.ArrivalAirport)
	}
	fmt.Fprintf(&body, " is now %s.\n", event.Status)
	if event.DepartureTime != nil {
		fmt.Fprintf(&body, "Scheduled departure: %s.\n", event.DepartureTime.Format("2006-01-02 15:04 MST"))
	}

	return Message{
		To:      to.Email,
		Subject: fmt.Sprintf("Flight %s: %s", flight, event.Status),
		Body:    body.String(),
	}
}
