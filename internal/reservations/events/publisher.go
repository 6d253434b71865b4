package events

import (
	"context"
	"time"

	"varaamo/pkg/kafka"
	"varaamo/pkg/logger"
	"varaamo/pkg/model"
)

// Publisher emits reservation lifecycle events. Publishing is best effort:
// the reservation is already committed when an event goes out, so a
// delivery failure is logged and never surfaced to the API caller.
type Publisher interface {
	ReservationCreated(ctx context.Context, reservation model.Reservation)
	ReservationCancelled(ctx context.Context, reservation model.Reservation)
	Close() error
}

type kafkaPublisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

func NewKafkaPublisher(producer *kafka.Producer, log *logger.Logger) Publisher {
	return &kafkaPublisher{
		producer: producer,
		log:      log,
	}
}

func (p *kafkaPublisher) ReservationCreated(ctx context.Context, reservation model.Reservation) {
	p.publish(ctx, TypeReservationCreated, reservation)
}

func (p *kafkaPublisher) ReservationCancelled(ctx context.Context, reservation model.Reservation) {
	p.publish(ctx, TypeReservationCancelled, reservation)
}

func (p *kafkaPublisher) publish(ctx context.Context, eventType string, reservation model.Reservation) {
	event := Event{
		Type:        eventType,
		Reservation: reservation,
		OccurredAt:  time.Now().UTC(),
	}

	// Key by room so events for one room stay ordered on one partition.
	msg := kafka.NewMessage().
		WithKey(reservation.Room).
		WithValue(event).
		WithEventType(eventType).
		WithSource(Source).
		WithHeader(kafka.HeaderSchemaVersion, SchemaVersion).
		Build()

	if err := p.producer.Publish(ctx, msg); err != nil {
		p.log.Error("Failed to publish reservation event",
			"event_type", eventType,
			"reservation_id", reservation.ID,
			"room", reservation.Room,
			"error", err,
		)
		return
	}

	p.log.Debug("Reservation event published",
		"event_type", eventType,
		"reservation_id", reservation.ID,
		"room", reservation.Room,
	)
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}

type noopPublisher struct{}

// NewNoopPublisher is used when the event feed is disabled.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) ReservationCreated(context.Context, model.Reservation)   {}
func (noopPublisher) ReservationCancelled(context.Context, model.Reservation) {}
func (noopPublisher) Close() error                                            { return nil }
