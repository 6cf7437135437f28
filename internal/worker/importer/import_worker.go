package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/domain/repository"
	"github.com/address-microservice/internal/pkg/errors"
	"github.com/address-microservice/internal/worker"
)

const defaultRetryDelay = time.Second

// JobProcessor выполняет задание импорта (реализуется usecase.ImportUseCase)
type JobProcessor interface {
	Process(ctx context.Context, job *domain.ImportJob) (*domain.ImportResult, error)
}

// ImportWorker читает stream:address:import, выполняет импорт и публикует
// результат в stream:address:import:done
type ImportWorker struct {
	*worker.BaseWorker
	streams      repository.StreamRepository
	processor    JobProcessor
	consumerName string
	maxRetries   int
	retryDelay   time.Duration
}

func NewImportWorker(
	streams repository.StreamRepository,
	processor JobProcessor,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *ImportWorker {
	hostname, _ := os.Hostname()
	if maxRetries < 1 {
		maxRetries = 1
	}

	return &ImportWorker{
		BaseWorker:   worker.NewBaseWorker("address-import", consumerGroup, logger),
		streams:      streams,
		processor:    processor,
		consumerName: fmt.Sprintf("%s-%d", hostname, os.Getpid()),
		maxRetries:   maxRetries,
		retryDelay:   defaultRetryDelay,
	}
}

// WithRetryDelay задаёт базовую паузу между попытками (растёт линейно)
func (w *ImportWorker) WithRetryDelay(d time.Duration) *ImportWorker {
	w.retryDelay = d
	return w
}

// Start блокируется до Stop или отмены ctx. После Stop текущее задание
// дорабатывает с исходным контекстом, новые сообщения не читаются.
func (w *ImportWorker) Start(ctx context.Context) error {
	logger := w.Logger()

	if err := w.streams.CreateConsumerGroup(ctx, domain.StreamAddressImport, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	readCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-w.StopChan():
			cancel()
		case <-readCtx.Done():
		}
	}()

	messages, err := w.streams.ConsumeStream(readCtx, domain.StreamAddressImport, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	logger.Info("Import worker started",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_retries", w.maxRetries))

	for msg := range messages {
		w.handle(ctx, msg)
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}
	logger.Info("Import worker stopped")
	return nil
}

func (w *ImportWorker) handle(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger().With(zap.String("message_id", msg.ID))

	var job domain.ImportJob
	if err := json.Unmarshal([]byte(msg.Data), &job); err != nil {
		// битое сообщение подтверждаем, иначе оно останется в pending навсегда
		logger.Warn("Failed to parse import job, skipping", zap.Error(err))
		w.ack(ctx, msg.ID)
		return
	}
	logger = logger.With(zap.String("job_id", job.JobID.String()))

	started := time.Now()
	result, err := w.process(ctx, &job)

	event := domain.ImportDoneEvent{
		JobID:  job.JobID,
		Status: domain.ImportStatusCompleted,
		Result: result,
	}
	if err != nil {
		event.Status = domain.ImportStatusFailed
		event.Error = err.Error()
		logger.Error("Import job failed", zap.Error(err))
	} else {
		logger.Info("Import job completed",
			zap.Int("formats", result.Formats),
			zap.Int("translations", result.Translations),
			zap.Int("subdivisions", result.Subdivisions),
			zap.Duration("took", time.Since(started)))
	}

	if _, err := w.streams.PublishToStream(ctx, domain.StreamAddressImportDone, event); err != nil {
		logger.Error("Failed to publish import result", zap.Error(err))
	}
	w.ack(ctx, msg.ID)
}

// process повторяет только серверные ошибки (источник данных, хранилище)
func (w *ImportWorker) process(ctx context.Context, job *domain.ImportJob) (*domain.ImportResult, error) {
	var lastErr error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		result, err := w.processor.Process(ctx, job)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if errors.ToAppError(err).StatusCode < 500 || attempt == w.maxRetries {
			break
		}
		w.Logger().Warn("Import attempt failed, retrying",
			zap.String("job_id", job.JobID.String()),
			zap.Int("attempt", attempt),
			zap.Error(err))

		select {
		case <-time.After(w.retryDelay * time.Duration(attempt)):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, lastErr
}

func (w *ImportWorker) ack(ctx context.Context, messageID string) {
	if err := w.streams.AckMessage(ctx, domain.StreamAddressImport, w.ConsumerGroup(), messageID); err != nil {
		w.Logger().Error("Failed to ack message", zap.String("message_id", messageID), zap.Error(err))
	}
}
