package redis_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/address-microservice/internal/domain"
	redisRepo "github.com/address-microservice/internal/repository/redis"
)

const (
	testImportStream = "test:stream:address:import"
	testGroup        = "test-import-group"
)

// getTestRedisClient возвращает клиент к тестовому Redis или пропускает тест
func getTestRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr, DB: 1})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	client.Del(ctx, testImportStream)
	t.Cleanup(func() {
		client.Del(context.Background(), testImportStream)
		_ = client.Close()
	})

	return client
}

func TestStreamRepository_CreateConsumerGroup(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, 100*time.Millisecond, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testImportStream, testGroup))

	groups, err := client.XInfoGroups(ctx, testImportStream).Result()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, testGroup, groups[0].Name)

	// BUSYGROUP is not an error
	assert.NoError(t, repo.CreateConsumerGroup(ctx, testImportStream, testGroup))
}

func TestStreamRepository_PublishConsumeAck(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, 100*time.Millisecond, zap.NewNop())
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, repo.CreateConsumerGroup(ctx, testImportStream, testGroup))

	job := domain.ImportJob{JobID: uuid.New(), CountryCodes: []string{"US", "CA"}, RequestedAt: time.Now().UTC()}
	id, err := repo.PublishToStream(ctx, testImportStream, job)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	messages, err := repo.ConsumeStream(ctx, testImportStream, testGroup, "consumer-1")
	require.NoError(t, err)

	select {
	case msg := <-messages:
		assert.Equal(t, id, msg.ID)

		var decoded domain.ImportJob
		require.NoError(t, json.Unmarshal([]byte(msg.Data), &decoded))
		assert.Equal(t, job.JobID, decoded.JobID)
		assert.Equal(t, []string{"US", "CA"}, decoded.CountryCodes)

		require.NoError(t, repo.AckMessage(ctx, testImportStream, testGroup, msg.ID))
	case <-ctx.Done():
		t.Fatal("timeout waiting for message")
	}

	pending, err := client.XPending(ctx, testImportStream, testGroup).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), pending.Count)
}

func TestStreamRepository_ConsumeStopsOnCancel(t *testing.T) {
	client := getTestRedisClient(t)
	repo := redisRepo.NewStreamRepository(client, 50*time.Millisecond, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, repo.CreateConsumerGroup(ctx, testImportStream, testGroup))
	messages, err := repo.ConsumeStream(ctx, testImportStream, testGroup, "consumer-1")
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-messages:
		assert.False(t, ok, "channel must be closed after cancel")
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop")
	}
}
