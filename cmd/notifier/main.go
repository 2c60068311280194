package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"voyago/internal/events"
	"voyago/internal/notifications/service"
	"voyago/pkg/kafka"
	kafkaconfig "voyago/pkg/kafka/config"
	"voyago/pkg/logger"
)

const (
	ServiceName   = "notifier"
	ConsumerGroup = "voyago-notifier"
)

func main() {
	_ = godotenv.Load()

	log := logger.New(logger.Config{
		Level:     os.Getenv("LOG_LEVEL"),
		Format:    logger.JSON,
		AddSource: true,
		Service:   ServiceName,
	})

	kafkaCfg, err := kafkaconfig.Load()
	if err != nil {
		log.Fatal("Invalid Kafka configuration", "error", err)
	}

	notifier := service.NewNotifier(log)
	consumer, err := kafka.NewConsumer(
		kafkaCfg,
		events.BookingEventsTopic,
		ConsumerGroup,
		events.BookingEventsDLQTopic,
		notifier.Handle,
		log,
	)
	if err != nil {
		log.Fatal("Failed to create Kafka consumer", "error", err)
	}
	defer func() {
		if err := consumer.Close(); err != nil {
			log.Error("Failed to close Kafka consumer", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
		sig := <-shutdown
		log.Info("Shutdown signal received", "signal", sig)
		cancel()
	}()

	log.Info("Starting notifier service", "topic", events.BookingEventsTopic, "group", ConsumerGroup)
	if err := consumer.Start(ctx); err != nil && ctx.Err() == nil {
		log.Fatal("Consumer stopped unexpectedly", "error", err)
	}
	log.Info("Notifier stopped")
}
