package main

// @title Address Format Service API
// @version 1.0.0
// @description Форматирование, проверка и администрирование почтовых адресов по форматам стран.
// @description
// @description Основные возможности:
// @description - Форматирование адреса по шаблону страны (обычный и почтовый режим)
// @description - Проверка адреса: обязательные и неиспользуемые поля, подразделения, индекс
// @description - Иерархия подразделений (штаты, провинции, города, районы)
// @description - Зоны доставки и импорт форматов из встроенного набора данных

// @contact.name API Support
// @contact.email support@address-microservice.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/address-microservice/docs"
	"github.com/address-microservice/internal/app"
	"github.com/address-microservice/internal/config"
	httpDelivery "github.com/address-microservice/internal/delivery/http"
	"github.com/address-microservice/internal/delivery/http/handler"
	"github.com/address-microservice/internal/pkg/logger"
	"github.com/address-microservice/internal/pkg/metrics"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Address Format Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("data_source", cfg.Data.Source),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
	)

	// 3. Connect data sources (PostgreSQL or bundled dataset, Redis)
	ctx, cancel := context.WithTimeout(context.Background(), app.HealthTimeout)
	defer cancel()

	m := metrics.New(nil)
	repos, err := app.Open(ctx, cfg, m, log, app.Options{})
	if err != nil {
		log.Fatal("Failed to open repositories", zap.Error(err))
	}
	defer repos.Close()

	// 4. Health checks
	if err := repos.Health(ctx); err != nil {
		log.Fatal("Health check failed", zap.Error(err))
	}
	log.Info("All connections healthy")

	// 5. Initialize Use Cases
	ucs := app.NewUseCases(cfg, repos, m, log)
	log.Info("Use cases initialized")

	// 6. Initialize HTTP Handlers
	handlers := httpDelivery.Handlers{
		Country:     handler.NewCountryHandler(ucs.Country, log),
		Format:      handler.NewFormatHandler(ucs.Format, log),
		Subdivision: handler.NewSubdivisionHandler(ucs.Subdivision, log),
		Render:      handler.NewRenderHandler(ucs.Render, ucs.Validation, log),
		Zone:        handler.NewZoneHandler(ucs.Zone, log),
	}
	// очередь импорта доступна только с Redis
	if repos.Streams != nil {
		handlers.Import = handler.NewImportHandler(ucs.Import, log)
	}

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, handlers)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
