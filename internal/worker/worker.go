package worker

import "context"

// Worker - фоновый обработчик очереди.
// Start блокируется до Stop или отмены контекста.
type Worker interface {
	Start(ctx context.Context) error
	Stop() error
	Name() string
}
