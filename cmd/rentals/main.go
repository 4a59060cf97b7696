package main

import (
	"context"
	"rentals/internal/bookings/events"
	bookingshandler "rentals/internal/bookings/handler"
	bookingsrepository "rentals/internal/bookings/repository"
	bookingsservice "rentals/internal/bookings/service"
	bookingsvalidator "rentals/internal/bookings/validator"
	propertieshandler "rentals/internal/properties/handler"
	propertiesrepository "rentals/internal/properties/repository"
	propertiesservice "rentals/internal/properties/service"
	propertiesvalidator "rentals/internal/properties/validator"
	"rentals/pkg/app"
	"rentals/pkg/config"
	"rentals/pkg/kafka"
	kafka_config "rentals/pkg/kafka/config"
	kafka_middleware "rentals/pkg/kafka/middleware"
	"rentals/pkg/store"
	"time"
)

const (
	ServiceName = "rentals"
	seedTimeout = 30 * time.Second
)

func main() {
	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting Rentals service")

	s, err := cfg.OpenStore()
	if err != nil {
		cfg.Log.Fatal("Failed to open store", "backend", cfg.StorageBackend, "error", err)
	}

	serverApp := app.NewApplication(cfg)

	propertyService := initPropertyService(cfg, s)
	serverApp.OnShutdown(propertyService.Close)

	publisher := initPublisher(cfg, serverApp)
	bookingService := initBookingService(cfg, s, propertyService, publisher)

	serverApp.SetApp(s,
		propertieshandler.NewPropertyHandler(propertyService, cfg.Log),
		bookingshandler.NewBookingHandler(bookingService, cfg.Log),
	)
	serverApp.Run()
}

func initPropertyService(cfg *config.Config, s store.Store) propertiesservice.PropertyService {
	propertyService := propertiesservice.NewPropertyService(
		propertiesrepository.NewStorePropertyRepository(s),
		propertiesvalidator.NewPropertyValidator(cfg.Log),
		cfg,
	)

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()
	if err := propertyService.EnsureSeeded(ctx); err != nil {
		cfg.Log.Fatal("Failed to seed property catalog", "error", err)
	}

	cfg.Log.Info("Property service initialized", "backend", cfg.StorageBackend)
	return propertyService
}

func initBookingService(
	cfg *config.Config,
	s store.Store,
	properties propertiesservice.PropertyService,
	publisher events.EventPublisher,
) bookingsservice.BookingService {
	bookingService := bookingsservice.NewBookingService(
		bookingsrepository.NewStoreBookingRepository(s),
		properties,
		bookingsvalidator.NewBookingValidator(cfg.Log),
		publisher,
		cfg,
	)

	cfg.Log.Info("Booking service initialized", "backend", cfg.StorageBackend, "kafka_enabled", cfg.KafkaEnabled)
	return bookingService
}

// initPublisher returns a Kafka-backed booking event publisher, or a no-op one
// when Kafka is disabled. The producer is closed on shutdown.
func initPublisher(cfg *config.Config, serverApp *app.Application) events.EventPublisher {
	if !cfg.KafkaEnabled {
		cfg.Log.Info("Kafka disabled, booking events will not be published")
		return events.NewNoopPublisher()
	}

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	kafkaCfg.LogConfiguration(cfg.Log.Info)

	producer, err := kafka.NewProducer(kafkaCfg, cfg.KafkaBookingsTopic, cfg.KafkaBookingsDLQTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	metrics := kafka_middleware.NewMetrics()
	if kafkaCfg.EnableMiddleware {
		producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
	}
	producer.Use(kafka_middleware.MetricsProducerMiddleware(metrics))

	serverApp.OnShutdown(func() {
		snapshot := metrics.Snapshot()
		cfg.Log.Info("Kafka producer metrics",
			"published", snapshot.Published,
			"failed", snapshot.Failed,
			"avg_publish_time", snapshot.AvgPublishTime,
		)
		if err := producer.Close(); err != nil {
			cfg.Log.Error("Failed to close Kafka producer", "error", err)
		}
	})

	return events.NewKafkaPublisher(producer, ServiceName)
}
