package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"fyyur/internal/activity"
	"fyyur/internal/shared/config"
	"fyyur/pkg/logger"

	"github.com/joho/godotenv"
)

// Runs the listing activity consumer: every venue, artist and show change
// published by the server is logged as one structured line.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger.SetDefault(logger.NewWithWriter(os.Stdout, cfg.LogLevel))
	appLogger := logger.GetDefault()

	consumerConfig := activity.DefaultConsumerConfig()
	consumerConfig.Brokers = cfg.Kafka.Brokers
	consumerConfig.GroupID = cfg.Kafka.ConsumerGroup
	consumerConfig.Topics = []string{cfg.Kafka.ActivityTopic}
	consumerConfig.ClientID = cfg.Kafka.ClientID + "-activity"

	consumer, err := activity.NewConsumer(consumerConfig, activity.LogHandler)
	if err != nil {
		appLogger.Error("Failed to create activity consumer", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := consumer.Close(); err != nil {
			appLogger.Error("Error closing activity consumer", slog.Any("error", err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.Run(ctx); err != nil {
		appLogger.Error("Activity consumer stopped", slog.Any("error", err))
	}
	appLogger.Info("Activity consumer exited")
}
