package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"varaamo/internal/reservations/events"
	"varaamo/pkg/config"
	"varaamo/pkg/kafka"
	kafka_config "varaamo/pkg/kafka/config"
	kafkamiddleware "varaamo/pkg/kafka/middleware"
)

const (
	ServiceName     = "notifier"
	ConsumerGroupID = "varaamo-notifier"
)

// The notifier tails the reservation event feed and emits human-readable
// notifications. It stands in for the channels (email, chat) a deployment
// would plug in here.
func main() {
	cfg := config.Load(ServiceName)

	kafkaCfg := kafka_config.Load()
	consumer, err := kafka.NewConsumer(kafkaCfg, cfg.EventsTopic, ConsumerGroupID, cfg.EventsDLQTopic, handleEvent(cfg))
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka consumer", "error", err)
	}
	consumer.Use(kafkamiddleware.LoggingConsumerMiddleware(cfg.Log))

	ctx, cancel := context.WithCancel(context.Background())

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-shutdown
		cfg.Log.Info("Shutdown signal received", "signal", sig)
		cancel()
	}()

	cfg.Log.Info("Starting notifier", "topic", cfg.EventsTopic, "group_id", ConsumerGroupID)
	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		cfg.Log.Error("Consumer stopped with error", "error", err)
	}

	if err := consumer.Close(); err != nil {
		cfg.Log.Error("Failed to close consumer", "error", err)
	}
	cfg.Log.Info("Notifier stopped")
}

func handleEvent(cfg *config.Config) kafka.MessageHandler {
	return func(ctx context.Context, msg kafka.Message) error {
		var event events.Event
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return kafka.NewPermanentError("malformed reservation event", err)
		}

		switch event.Type {
		case events.TypeReservationCreated:
			cfg.Log.Info("Room booked",
				"room", event.Reservation.Room,
				"reservation_id", event.Reservation.ID,
				"start_time", event.Reservation.StartTime.Format(time.RFC3339),
				"end_time", event.Reservation.EndTime.Format(time.RFC3339),
			)
		case events.TypeReservationCancelled:
			cfg.Log.Info("Booking cancelled",
				"room", event.Reservation.Room,
				"reservation_id", event.Reservation.ID,
			)
		default:
			cfg.Log.Warn("Unknown reservation event type", "type", event.Type)
		}

		return nil
	}
}
