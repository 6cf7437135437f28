// Package app собирает репозитории и use cases для cmd/api, cmd/worker и cmd/addressctl.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/address-microservice/internal/config"
	"github.com/address-microservice/internal/domain/repository"
	"github.com/address-microservice/internal/pkg/metrics"
	"github.com/address-microservice/internal/repository/cache"
	"github.com/address-microservice/internal/repository/dataset"
	"github.com/address-microservice/internal/repository/postgres"
	redisRepo "github.com/address-microservice/internal/repository/redis"
	"github.com/address-microservice/internal/usecase"
)

// HealthTimeout - таймаут проверки подключений при старте
const HealthTimeout = 5 * time.Second

// Repositories - источники данных с учётом DATA_SOURCE и кеша
type Repositories struct {
	// FormatStore/SubdivisionStore - запись (администрирование, импорт)
	FormatStore      repository.AddressFormatStore
	SubdivisionStore repository.SubdivisionStore
	// Formats/Subdivisions/Countries - чтение, при включённом кеше через Redis
	Formats      repository.AddressFormatRepository
	Subdivisions repository.SubdivisionRepository
	Countries    repository.CountryRepository
	Zones        repository.ZoneRepository

	// ImportFormats/ImportSubdivisions - встроенный набор данных как источник импорта
	ImportFormats      repository.AddressFormatRepository
	ImportSubdivisions repository.SubdivisionStore

	Invalidator repository.CacheInvalidator
	// Streams и Available равны nil без Redis
	Streams   repository.StreamRepository
	Available usecase.AvailableCountriesStore

	db    *postgres.DB
	redis *cache.Redis
}

// Options - какие внешние зависимости нужны процессу
type Options struct {
	// RequireRedis - отказ при недоступном Redis (воркер, постановка импорта)
	RequireRedis bool
}

// Open подключает хранилище и Redis. Redis подключается, если задан REDIS_HOST
// или он обязателен; кеш включается только с CACHE_ENABLED.
func Open(ctx context.Context, cfg *config.Config, m *metrics.Metrics, logger *zap.Logger, opts Options) (*Repositories, error) {
	repos := &Repositories{Invalidator: cache.NewNoopInvalidator()}

	source, err := dataset.New(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load bundled dataset: %w", err)
	}
	repos.ImportFormats = dataset.NewAddressFormatRepository(source)
	repos.ImportSubdivisions = dataset.NewSubdivisionRepository(source)
	repos.Countries = dataset.NewCountryRepository(source)
	repos.Zones = dataset.NewZoneRepository(source)

	switch cfg.Data.Source {
	case config.DataSourcePostgres:
		db, err := postgres.New(&cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		if err := db.Health(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("postgres health check failed: %w", err)
		}
		repos.db = db
		repos.FormatStore = postgres.NewAddressFormatRepository(db)
		repos.SubdivisionStore = postgres.NewSubdivisionRepository(db)
	case config.DataSourceDataset:
		// отдельный экземпляр: изменения не затрагивают источник импорта
		store, err := dataset.New(logger)
		if err != nil {
			return nil, fmt.Errorf("failed to load bundled dataset: %w", err)
		}
		repos.FormatStore = dataset.NewAddressFormatRepository(store)
		repos.SubdivisionStore = dataset.NewSubdivisionRepository(store)
	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.Data.Source)
	}
	repos.Formats = repos.FormatStore
	repos.Subdivisions = repos.SubdivisionStore

	if cfg.Redis.Host == "" && !opts.RequireRedis {
		logger.Info("Redis is not configured, cache and import queue disabled")
		return repos, nil
	}

	redisClient, err := cache.NewRedis(&cfg.Redis, logger)
	if err != nil {
		repos.Close()
		return nil, err
	}
	repos.redis = redisClient
	repos.Streams = redisRepo.NewStreamRepository(redisClient.Client(), cfg.Worker.StreamReadTimeout, logger)

	if cfg.Cache.Enabled {
		cacheRepo := cache.NewCacheRepository(redisClient)
		repos.Formats = cache.NewCachedAddressFormatRepository(repos.FormatStore, cacheRepo, cfg.Cache.FormatCacheTTL, m, logger)
		repos.Subdivisions = cache.NewCachedSubdivisionRepository(repos.SubdivisionStore, cacheRepo, cfg.Cache.SubdivisionCacheTTL, m, logger)
		repos.Countries = cache.NewCachedCountryRepository(repos.Countries, cacheRepo, cfg.Cache.CountryCacheTTL, m, logger)
		repos.Invalidator = cache.NewInvalidator(cacheRepo, logger)
		repos.Available = cache.NewAvailableCountriesCache(cacheRepo, cfg.Cache.AvailableCountryTTL, logger)
		logger.Info("Redis cache enabled",
			zap.Duration("format_ttl", cfg.Cache.FormatCacheTTL),
			zap.Duration("subdivision_ttl", cfg.Cache.SubdivisionCacheTTL))
	}

	return repos, nil
}

// Health проверяет подключения
func (r *Repositories) Health(ctx context.Context) error {
	if r.db != nil {
		if err := r.db.Health(ctx); err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
	}
	if r.redis != nil {
		if err := r.redis.Health(ctx); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}
	return nil
}

func (r *Repositories) Close() {
	if r.db != nil {
		_ = r.db.Close()
	}
	if r.redis != nil {
		_ = r.redis.Close()
	}
}

// UseCases - прикладной слой поверх репозиториев
type UseCases struct {
	Renderer    *usecase.AddressRenderer
	Render      *usecase.RenderUseCase
	Validation  *usecase.ValidationUseCase
	Format      *usecase.FormatUseCase
	Subdivision *usecase.SubdivisionUseCase
	Country     *usecase.CountryUseCase
	Zone        *usecase.ZoneUseCase
	Import      *usecase.ImportUseCase
}

func NewUseCases(cfg *config.Config, repos *Repositories, m *metrics.Metrics, logger *zap.Logger) *UseCases {
	formatResolver := usecase.NewFormatResolver(repos.Formats, m, logger)
	subdivisionResolver := usecase.NewSubdivisionResolver(repos.Subdivisions, m, logger)
	renderer := usecase.NewAddressRenderer(formatResolver, subdivisionResolver, repos.Countries, m, logger)

	countryUC := usecase.NewCountryUseCase(repos.Countries, repos.Available, logger)

	return &UseCases{
		Renderer: renderer,
		Render:   usecase.NewRenderUseCase(renderer),
		Validation: usecase.NewValidationUseCase(
			usecase.NewAddressValidator(formatResolver, subdivisionResolver, repos.Countries, logger),
			countryUC,
			logger,
		),
		Format:      usecase.NewFormatUseCase(formatResolver, subdivisionResolver, repos.FormatStore, repos.Invalidator, logger),
		Subdivision: usecase.NewSubdivisionUseCase(subdivisionResolver, repos.SubdivisionStore, repos.Formats, repos.Invalidator, logger),
		Country:     countryUC,
		Zone:        usecase.NewZoneUseCase(repos.Zones, logger),
		Import: usecase.NewImportUseCase(
			repos.ImportFormats,
			repos.ImportSubdivisions,
			repos.FormatStore,
			repos.SubdivisionStore,
			repos.Streams,
			repos.Invalidator,
			m,
			cfg.Import.Languages,
			logger,
		),
	}
}
