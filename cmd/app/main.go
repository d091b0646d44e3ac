package main

import (
	"EcommerceChatbot/internal/config"
	"EcommerceChatbot/pkg/log"
	"EcommerceChatbot/pkg/redis"
	"context"
	"github.com/joho/godotenv"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	envErr := godotenv.Load()

	logger := log.NewLogger()
	if envErr != nil {
		logger.Warnf("No .env file loaded, using process environment: %v", envErr)
	}

	source, closeSource, err := config.NewDataSource()
	if err != nil {
		logger.Fatal(err)
	}
	defer func() {
		if err := closeSource(); err != nil {
			logger.Errorf("Error closing data source: %v", err)
		}
	}()

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	redisServer := redis.New()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithMiddleware(),
		config.WithDataSource(source),
		config.WithRedisServer(redisServer, config.CacheTTL()),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	go func() {
		if err := server.LoadDataset(ctx); err != nil {
			logger.WithError(err).Error("Dataset loaded with failures, serving the tables that did load")
			return
		}
		logger.Info("All data loaded and ready")
	}()

	<-sigChan
	logger.Info("Shutting down server...")
	cancel()

	if err := server.Shutdown(10 * time.Second); err != nil {
		logger.Errorf("Error shutting down server: %v", err)
	}
}
