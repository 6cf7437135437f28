package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/domain/repository"
	"github.com/address-microservice/internal/pkg/errors"
	"github.com/address-microservice/internal/pkg/locale"
	"github.com/address-microservice/internal/pkg/metrics"
	"github.com/address-microservice/internal/usecase/dto"
)

// availableTranslations - языки, для которых в наборе данных есть переведённые шаблоны
var availableTranslations = map[string][]string{
	"ja":      {"JP"},
	"ko":      {"KR"},
	"th":      {"TH"},
	"zh":      {"MO", "CN"},
	"zh-hant": {"HK", "TW"},
}

const importConcurrency = 4

// AvailableTranslationLanguages - языки с переводами шаблонов, по алфавиту
func AvailableTranslationLanguages() []string {
	langs := make([]string, 0, len(availableTranslations))
	for lang := range availableTranslations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// ImportUseCase переносит форматы, подразделения и переводы из встроенного набора данных в хранилище
type ImportUseCase struct {
	sourceFormats      repository.AddressFormatRepository
	sourceSubdivisions repository.SubdivisionStore
	formats            repository.AddressFormatStore
	subdivisions       repository.SubdivisionStore
	streams            repository.StreamRepository
	invalidator        repository.CacheInvalidator
	metrics            *metrics.Metrics
	languages          []string
	logger             *zap.Logger
}

func NewImportUseCase(
	sourceFormats repository.AddressFormatRepository,
	sourceSubdivisions repository.SubdivisionStore,
	formats repository.AddressFormatStore,
	subdivisions repository.SubdivisionStore,
	streams repository.StreamRepository,
	invalidator repository.CacheInvalidator,
	m *metrics.Metrics,
	languages []string,
	logger *zap.Logger,
) *ImportUseCase {
	return &ImportUseCase{
		sourceFormats:      sourceFormats,
		sourceSubdivisions: sourceSubdivisions,
		formats:            formats,
		subdivisions:       subdivisions,
		streams:            streams,
		invalidator:        invalidator,
		metrics:            m,
		languages:          languages,
		logger:             logger,
	}
}

// ImportAll импортирует все форматы набора данных и переводы для настроенных языков
func (uc *ImportUseCase) ImportAll(ctx context.Context) (*domain.ImportResult, error) {
	return uc.importAll(ctx, uc.languages)
}

func (uc *ImportUseCase) importAll(ctx context.Context, langcodes []string) (*domain.ImportResult, error) {
	formats, err := uc.sourceFormats.GetAll(ctx, "")
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(formats))
	for _, f := range formats {
		codes = append(codes, f.CountryCode)
	}

	result, err := uc.ImportEntities(ctx, codes)
	if err != nil {
		return nil, err
	}
	translations, err := uc.ImportTranslations(ctx, langcodes)
	if err != nil {
		return nil, err
	}
	result.Translations = translations
	return result, nil
}

// ImportEntities создаёт или перезаписывает форматы стран и все их подразделения
func (uc *ImportUseCase) ImportEntities(ctx context.Context, countryCodes []string) (*domain.ImportResult, error) {
	var (
		mu     sync.Mutex
		result domain.ImportResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(importConcurrency)
	for _, code := range countryCodes {
		code = strings.ToUpper(strings.TrimSpace(code))
		g.Go(func() error {
			subdivisions, err := uc.importCountry(gctx, code)
			if err != nil {
				return fmt.Errorf("import %s: %w", code, err)
			}
			mu.Lock()
			result.Formats++
			result.Subdivisions += subdivisions
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		uc.logger.Error("Import of address formats failed", zap.Error(err))
		return nil, err
	}

	uc.metrics.AddImported("formats", result.Formats)
	uc.metrics.AddImported("subdivisions", result.Subdivisions)
	uc.logger.Info("Address formats imported",
		zap.Int("formats", result.Formats),
		zap.Int("subdivisions", result.Subdivisions))
	return &result, nil
}

// importCountry сохраняет формат, затем подразделения от родителей к потомкам
func (uc *ImportUseCase) importCountry(ctx context.Context, countryCode string) (int, error) {
	format, err := uc.sourceFormats.Get(ctx, countryCode, "")
	if err != nil {
		return 0, err
	}
	if err := uc.formats.Save(ctx, format); err != nil {
		return 0, err
	}

	subdivisions, err := uc.sourceSubdivisions.GetAll(ctx, countryCode)
	if err != nil {
		return 0, err
	}
	for _, sub := range subdivisions {
		if err := uc.subdivisions.Save(ctx, sub); err != nil {
			return 0, fmt.Errorf("subdivision %s: %w", sub.ID, err)
		}
	}
	return len(subdivisions), nil
}

// ImportTranslations сохраняет переведённые шаблоны для языков. Страны без
// сохранённого формата и языки без переводов пропускаются.
func (uc *ImportUseCase) ImportTranslations(ctx context.Context, langcodes []string) (int, error) {
	imported := 0
	for _, lang := range langcodes {
		lang = locale.Normalize(lang)
		countries, ok := availableTranslations[lang]
		if !ok {
			uc.logger.Debug("No address format translations for language", zap.String("langcode", lang))
			continue
		}

		for _, countryCode := range countries {
			format, err := uc.sourceFormats.Get(ctx, countryCode, lang)
			if stderrors.Is(err, errors.ErrAddressFormatNotFound) {
				continue
			}
			if err != nil {
				return imported, err
			}
			if format.Locale != lang {
				continue
			}

			err = uc.formats.SaveTranslation(ctx, countryCode, lang, format.Format)
			if stderrors.Is(err, errors.ErrAddressFormatNotFound) {
				continue
			}
			if err != nil {
				return imported, fmt.Errorf("translation %s/%s: %w", countryCode, lang, err)
			}
			imported++
		}
	}

	uc.metrics.AddImported("translations", imported)
	return imported, nil
}

// Process выполняет задание из очереди и сбрасывает кеш
func (uc *ImportUseCase) Process(ctx context.Context, job *domain.ImportJob) (*domain.ImportResult, error) {
	langcodes := job.Langcodes
	if len(langcodes) == 0 {
		langcodes = uc.languages
	}

	var (
		result *domain.ImportResult
		err    error
	)
	if job.IsFullImport() {
		result, err = uc.importAll(ctx, langcodes)
	} else {
		result, err = uc.ImportEntities(ctx, job.CountryCodes)
		if err == nil {
			result.Translations, err = uc.ImportTranslations(ctx, langcodes)
		}
	}
	if err != nil {
		uc.metrics.IncImportJob(string(domain.ImportStatusFailed))
		return nil, err
	}

	if err := uc.invalidator.InvalidateAll(ctx); err != nil {
		uc.logger.Warn("Failed to invalidate cache after import", zap.Error(err))
	}
	uc.metrics.IncImportJob(string(domain.ImportStatusCompleted))
	return result, nil
}

// Enqueue публикует задание на импорт в stream:address:import
func (uc *ImportUseCase) Enqueue(ctx context.Context, req dto.ImportRequest) (*dto.ImportResponse, error) {
	if uc.streams == nil {
		return nil, errors.ErrInternalServer.WithMessage("Import queue is not configured")
	}

	job := domain.ImportJob{
		JobID:       uuid.New(),
		Langcodes:   req.Langcodes,
		RequestedAt: time.Now().UTC(),
	}
	for _, code := range req.CountryCodes {
		job.CountryCodes = append(job.CountryCodes, strings.ToUpper(code))
	}

	messageID, err := uc.streams.PublishToStream(ctx, domain.StreamAddressImport, job)
	if err != nil {
		uc.logger.Error("Failed to enqueue import job", zap.String("job_id", job.JobID.String()), zap.Error(err))
		return nil, err
	}
	uc.metrics.IncImportJob(string(domain.ImportStatusQueued))

	uc.logger.Info("Import job queued",
		zap.String("job_id", job.JobID.String()),
		zap.String("message_id", messageID),
		zap.Strings("country_codes", job.CountryCodes))
	return &dto.ImportResponse{
		JobID:     job.JobID,
		MessageID: messageID,
		Status:    domain.ImportStatusQueued,
	}, nil
}
