package service

import (
	"context"
	"fmt"

	"voyago/pkg/kafka"
	"voyago/pkg/logger"
	"voyago/pkg/model"
)

// Notifier consumes booking lifecycle events and emits user notifications.
// Delivery is a structured log line for now; the handler is where a mail or
// push integration would plug in.
type Notifier struct {
	log *logger.Logger
}

func NewNotifier(log *logger.Logger) *Notifier {
	return &Notifier{log: log}
}

// Handle is the consumer callback. A malformed payload is a permanent
// failure; the consumer parks it on the DLQ.
func (n *Notifier) Handle(ctx context.Context, msg kafka.Message) error {
	var event model.BookingEvent
	if err := msg.DecodeValue(&event); err != nil {
		return fmt.Errorf("failed to decode booking event: %w", err)
	}

	switch event.EventType {
	case model.EventBookingCreated:
		n.log.Info("Booking confirmation notification",
			"booking_id", event.BookingID,
			"user", event.UserID,
			"type", event.Type,
			"status", event.Status,
			"total_price", event.TotalPrice,
		)
	case model.EventBookingCancelled:
		n.log.Info("Booking cancellation notification",
			"booking_id", event.BookingID,
			"user", event.UserID,
			"type", event.Type,
		)
	default:
		n.log.Warn("Unknown booking event type, skipping",
			"event_type", event.EventType,
			"event_id", msg.GetEventID(),
		)
	}

	return nil
}
