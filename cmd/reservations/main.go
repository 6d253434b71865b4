package main

import (
	"varaamo/internal/reservations/events"
	"varaamo/internal/reservations/handler"
	"varaamo/internal/reservations/repository"
	"varaamo/internal/reservations/service"
	"varaamo/internal/reservations/validator"
	"varaamo/internal/rooms"
	"varaamo/pkg/app"
	"varaamo/pkg/clock"
	"varaamo/pkg/config"
	"varaamo/pkg/kafka"
	kafka_config "varaamo/pkg/kafka/config"
	kafkamiddleware "varaamo/pkg/kafka/middleware"
	"varaamo/pkg/timeutil"
)

const ServiceName = "reservations"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting Reservations service")

	catalog := rooms.NewCatalog(cfg.Rooms)
	reservationService, publisher := initServices(cfg, catalog)
	defer func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	}()

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewReservationHandler(reservationService, catalog, cfg.Log),
		handler.NewHealthHandler(catalog.Len(), cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config, catalog *rooms.Catalog) (service.ReservationService, events.Publisher) {
	window, err := timeutil.ParseWindow(cfg.OfficeOpen, cfg.OfficeClose)
	if err != nil {
		cfg.Log.Fatal("Invalid office hours configuration", "error", err)
	}

	publisher := initPublisher(cfg)

	reservationValidator := validator.NewReservationValidator(catalog, window, clock.RealClock{}, cfg.Log)
	reservationRepo := repository.NewMemoryReservationRepository()
	reservationService := service.NewReservationService(
		reservationRepo,
		reservationValidator,
		publisher,
		cfg,
	)

	cfg.Log.Info("Reservation service initialized",
		"rooms", cfg.Rooms,
		"office_hours", window.String(),
	)
	return reservationService, publisher
}

func initPublisher(cfg *config.Config) events.Publisher {
	if !cfg.EventsEnabled {
		cfg.Log.Info("Reservation event feed disabled")
		return events.NewNoopPublisher()
	}

	kafkaCfg := kafka_config.Load()
	producer, err := kafka.NewProducer(kafkaCfg, cfg.EventsTopic, cfg.EventsDLQTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	producer.Use(kafkamiddleware.LoggingProducerMiddleware(cfg.Log))

	cfg.Log.Info("Reservation event feed enabled",
		"brokers", kafkaCfg.Brokers,
		"topic", cfg.EventsTopic,
	)
	return events.NewKafkaPublisher(producer, cfg.Log)
}
