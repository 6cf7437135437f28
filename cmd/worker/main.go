package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/address-microservice/internal/app"
	"github.com/address-microservice/internal/config"
	"github.com/address-microservice/internal/pkg/logger"
	"github.com/address-microservice/internal/pkg/metrics"
	"github.com/address-microservice/internal/worker"
	"github.com/address-microservice/internal/worker/importer"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Address Import Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_retries", cfg.Worker.MaxRetries),
		zap.String("data_source", cfg.Data.Source),
		zap.Strings("import_languages", cfg.Import.Languages))

	// 3. Connect storage and Redis (обязателен для стримов)
	openCtx, openCancel := context.WithTimeout(context.Background(), app.HealthTimeout)
	defer openCancel()

	m := metrics.New(nil)
	repos, err := app.Open(openCtx, cfg, m, log, app.Options{RequireRedis: true})
	if err != nil {
		log.Fatal("Failed to open repositories", zap.Error(err))
	}
	defer repos.Close()

	// 4. Initialize use cases
	ucs := app.NewUseCases(cfg, repos, m, log)

	// 5. Initialize workers
	importWorker := importer.NewImportWorker(
		repos.Streams,
		ucs.Import,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.MaxRetries,
		log,
	)

	workerManager := worker.NewManager(worker.DefaultShutdownTimeout, log)
	workerManager.Register(importWorker)

	// 6. Start workers
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 7. Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// Stop сначала: текущее задание импорта дорабатывает с живым контекстом
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}
	cancel()

	log.Info("Worker shutdown complete")
}
