package main

import (
	"github.com/joho/godotenv"

	"voyago/internal/auth"
	bookinghandler "voyago/internal/bookings/handler"
	bookingrepository "voyago/internal/bookings/repository"
	bookingservice "voyago/internal/bookings/service"
	bookingvalidator "voyago/internal/bookings/validator"
	"voyago/internal/catalog"
	"voyago/internal/events"
	userhandler "voyago/internal/users/handler"
	userrepository "voyago/internal/users/repository"
	userservice "voyago/internal/users/service"
	uservalidator "voyago/internal/users/validator"
	"voyago/pkg/app"
	"voyago/pkg/config"
	"voyago/pkg/contracts"
	"voyago/pkg/kafka"
	kafkaconfig "voyago/pkg/kafka/config"
)

const ServiceName = "api"

func main() {
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Voyago API service")

	publisher, closePublisher := initPublisher(cfg)
	defer closePublisher()

	handlers := initHandlers(cfg, publisher)

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg, handlers...)
	serverApp.Run()
}

func initHandlers(cfg *config.Config, publisher bookingservice.EventPublisher) []contracts.Handler {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	userRepo := userrepository.NewMongoUserRepository(cfg)
	userService := userservice.NewUserService(userRepo, uservalidator.NewUserValidator(), tokens, cfg)

	gate := auth.NewGate(tokens, userService, cfg.Log)

	bookingRepo := bookingrepository.NewMongoBookingRepository(cfg)
	bookingService := bookingservice.NewBookingService(
		bookingRepo,
		bookingvalidator.NewBookingValidator(cfg.Log),
		publisher,
		cfg,
	)

	handlers := []contracts.Handler{
		userhandler.NewUserHandler(userService, gate, cfg.Log),
		bookinghandler.NewBookingHandler(bookingService, gate, cfg.Log),
	}
	handlers = append(handlers, catalog.Handlers(cfg, gate)...)

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabaseName)
	return handlers
}

func initPublisher(cfg *config.Config) (bookingservice.EventPublisher, func()) {
	if !cfg.KafkaEnabled {
		cfg.Log.Info("Kafka disabled, booking events will not be published")
		return events.NopPublisher{}, func() {}
	}

	kafkaCfg, err := kafkaconfig.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}

	producer, err := kafka.NewProducer(kafkaCfg, events.BookingEventsTopic, events.BookingEventsDLQTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	publisher := events.NewKafkaPublisher(producer, ServiceName)
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close Kafka producer", "error", err)
		}
	}
}
