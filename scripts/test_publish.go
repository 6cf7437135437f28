//go:build ignore

// Публикует задание импорта в stream:address:import и ждёт результата воркера.
//
//	go run scripts/test_publish.go -redis localhost:6379 -countries US,BR -langs ja
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type importJob struct {
	JobID        uuid.UUID `json:"job_id"`
	CountryCodes []string  `json:"country_codes,omitempty"`
	Langcodes    []string  `json:"langcodes,omitempty"`
	RequestedAt  time.Time `json:"requested_at"`
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	countries := flag.String("countries", "US", "comma-separated country codes, empty for all")
	langs := flag.String("langs", "", "comma-separated translation languages")
	wait := flag.Duration("wait", 30*time.Second, "how long to wait for the worker")
	flag.Parse()

	client := redis.NewClient(&redis.Options{Addr: *redisAddr})
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	job := importJob{
		JobID:        uuid.New(),
		CountryCodes: splitList(*countries),
		Langcodes:    splitList(*langs),
		RequestedAt:  time.Now().UTC(),
	}
	data, err := json.Marshal(job)
	if err != nil {
		log.Fatalf("Failed to marshal job: %v", err)
	}

	// последний id done-стрима до публикации: читаем только новые результаты
	lastID := "$"
	if entries, err := client.XRevRangeN(ctx, "stream:address:import:done", "+", "-", 1).Result(); err == nil && len(entries) > 0 {
		lastID = entries[0].ID
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:address:import",
		Values: map[string]interface{}{"data": string(data)},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish job: %v", err)
	}
	fmt.Printf("Job %s published (message %s), countries=%v langs=%v\n", job.JobID, id, job.CountryCodes, job.Langcodes)

	deadline := time.Now().Add(*wait)
	for time.Now().Before(deadline) {
		streams, err := client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{"stream:address:import:done", lastID},
			Count:   10,
			Block:   time.Second,
		}).Result()
		if err != nil && err != redis.Nil {
			log.Fatalf("Failed to read results: %v", err)
		}

		for _, stream := range streams {
			for _, msg := range stream.Messages {
				lastID = msg.ID
				payload, ok := msg.Values["data"].(string)
				if !ok {
					continue
				}
				var event map[string]interface{}
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					continue
				}
				if event["job_id"] == job.JobID.String() {
					pretty, _ := json.MarshalIndent(event, "", "  ")
					fmt.Printf("Result:\n%s\n", pretty)
					return
				}
			}
		}
	}
	log.Fatalf("Timeout waiting for job %s", job.JobID)
}
