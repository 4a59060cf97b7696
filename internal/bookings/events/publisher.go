package events

import (
	"context"
	"rentals/pkg/kafka"
	"rentals/pkg/middleware"
	"rentals/pkg/model"
	"time"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"

	SchemaVersion = "1"
)

// BookingEvent is the payload written to the bookings topic.
type BookingEvent struct {
	Type       string         `json:"type"`
	BookingID  string         `json:"bookingId"`
	Booking    *model.Booking `json:"booking,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
}

type EventPublisher interface {
	BookingCreated(ctx context.Context, booking model.Booking) error
	BookingCancelled(ctx context.Context, bookingID string) error
}

type messagePublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type kafkaPublisher struct {
	producer messagePublisher
	source   string
	now      func() time.Time
}

func NewKafkaPublisher(producer messagePublisher, source string) EventPublisher {
	return &kafkaPublisher{
		producer: producer,
		source:   source,
		now:      time.Now,
	}
}

func (p *kafkaPublisher) BookingCreated(ctx context.Context, booking model.Booking) error {
	return p.publish(ctx, BookingEvent{
		Type:      EventBookingCreated,
		BookingID: booking.ID,
		Booking:   &booking,
	})
}

func (p *kafkaPublisher) BookingCancelled(ctx context.Context, bookingID string) error {
	return p.publish(ctx, BookingEvent{
		Type:      EventBookingCancelled,
		BookingID: bookingID,
	})
}

func (p *kafkaPublisher) publish(ctx context.Context, event BookingEvent) error {
	event.OccurredAt = p.now().UTC()

	msg, err := kafka.NewMessage().
		WithKey(event.BookingID).
		WithValue(event).
		WithEventType(event.Type).
		WithSchemaVersion(SchemaVersion).
		WithSource(p.source).
		WithCorrelationID(middleware.RequestIDFromContext(ctx)).
		WithTimestamp(event.OccurredAt).
		Build()
	if err != nil {
		return err
	}

	return p.producer.Publish(ctx, msg)
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event. Used when
// Kafka is disabled.
func NewNoopPublisher() EventPublisher {
	return noopPublisher{}
}

func (noopPublisher) BookingCreated(ctx context.Context, booking model.Booking) error {
	return nil
}

func (noopPublisher) BookingCancelled(ctx context.Context, bookingID string) error {
	return nil
}
