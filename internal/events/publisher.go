package events

import (
	"context"

	"voyago/pkg/kafka"
	"voyago/pkg/model"
)

const (
	BookingEventsTopic    = "booking-events"
	BookingEventsDLQTopic = "booking-events-dlq"
)

// KafkaPublisher publishes booking lifecycle events keyed by booking id, so
// events for one booking land on the same partition in order.
type KafkaPublisher struct {
	producer *kafka.Producer
	source   string
}

func NewKafkaPublisher(producer *kafka.Producer, source string) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		source:   source,
	}
}

func (p *KafkaPublisher) PublishBookingEvent(ctx context.Context, event model.BookingEvent) error {
	msg := kafka.NewMessage().
		WithKey(event.BookingID).
		WithValue(event).
		WithEventType(event.EventType).
		WithSource(p.source).
		Build()

	return p.producer.Publish(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// NopPublisher is used when the events pipeline is disabled.
type NopPublisher struct{}

func (NopPublisher) PublishBookingEvent(context.Context, model.BookingEvent) error {
	return nil
}
