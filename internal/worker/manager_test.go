package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/address-microservice/internal/worker"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// blockingWorker работает до Stop; release задерживает выход после Stop
type blockingWorker struct {
	*worker.BaseWorker
	started atomic.Bool
	release chan struct{}
}

func newBlockingWorker(name string) *blockingWorker {
	return &blockingWorker{
		BaseWorker: worker.NewBaseWorker(name, "group", zap.NewNop()),
		release:    make(chan struct{}),
	}
}

func (w *blockingWorker) Start(ctx context.Context) error {
	w.started.Store(true)
	select {
	case <-w.StopChan():
	case <-ctx.Done():
		return ctx.Err()
	}
	<-w.release
	return nil
}

func TestManager_StartWithoutWorkers(t *testing.T) {
	m := worker.NewManager(time.Second, zap.NewNop())

	err := m.Start(context.Background())

	assert.Error(t, err)
}

func TestManager_StartAndStop(t *testing.T) {
	m := worker.NewManager(time.Second, zap.NewNop())
	first := newBlockingWorker("first")
	second := newBlockingWorker("second")
	close(first.release)
	close(second.release)
	m.Register(first)
	m.Register(second)

	require.NoError(t, m.Start(context.Background()))
	require.Eventually(t, func() bool {
		return first.started.Load() && second.started.Load()
	}, time.Second, 5*time.Millisecond)

	assert.NoError(t, m.Stop())
	assert.True(t, first.IsStopped())
	assert.True(t, second.IsStopped())
}

func TestManager_StopTimeout(t *testing.T) {
	m := worker.NewManager(20*time.Millisecond, zap.NewNop())
	stuck := newBlockingWorker("stuck")
	m.Register(stuck)

	require.NoError(t, m.Start(context.Background()))
	require.Eventually(t, stuck.started.Load, time.Second, 5*time.Millisecond)

	err := m.Stop()
	assert.ErrorContains(t, err, "timed out")

	close(stuck.release)
}

func TestManager_ContextCancellation(t *testing.T) {
	m := worker.NewManager(time.Second, zap.NewNop())
	w := newBlockingWorker("cancelled")
	m.Register(w)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, m.Start(ctx))
	require.Eventually(t, w.started.Load, time.Second, 5*time.Millisecond)
	cancel()

	assert.NoError(t, m.Stop())
}

func TestNewManager_DefaultTimeout(t *testing.T) {
	m := worker.NewManager(0, zap.NewNop())
	w := newBlockingWorker("default")
	close(w.release)
	m.Register(w)

	require.NoError(t, m.Start(context.Background()))
	assert.NoError(t, m.Stop())
}
