// Package events provides workout event capture and processing.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fitlog/fitlog/internal/metrics"
)

const (
	// StreamKey is the Redis stream for workout events.
	StreamKey = "stream:workout_events"

	// DeadLetterStreamKey is the Redis stream for poison messages.
	DeadLetterStreamKey = "stream:workout_events:dlq"

	// MaxStreamLen is the approximate max length of the stream.
	MaxStreamLen = 100000

	// PublishTimeout is the max time to wait for Redis publish.
	PublishTimeout = 100 * time.Millisecond
)

// WorkoutEventPayload is the compressed event format for the Redis stream.
type WorkoutEventPayload struct {
	UserID     string `json:"uid"` // user_id
	ExerciseID string `json:"eid"` // exercise_id
	Duration   int    `json:"d"`   // minutes
	Date       int64  `json:"dt"`  // exercise date, Unix seconds (UTC midnight)
	RecordedAt int64  `json:"t"`   // Unix milliseconds
}

// Publisher enqueues workout events to the Redis stream.
type Publisher struct {
	redis   *redis.Client
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewPublisher creates a new workout event publisher.
func NewPublisher(client *redis.Client, logger *slog.Logger, recorder metrics.Recorder) *Publisher {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &Publisher{
		redis:   client,
		logger:  logger.With("component", "events.publisher"),
		metrics: recorder,
	}
}

// Publish adds a workout event to the stream synchronously.
func (p *Publisher) Publish(ctx context.Context, event WorkoutEventPayload) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("marshal event: %w", err)
	}

	result, err := p.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamKey,
		MaxLen: MaxStreamLen,
		Approx: true, // ~MAXLEN for performance
		ID:     "*",  // Auto-generate ID
		Values: map[string]interface{}{
			"payload": string(data),
		},
	}).Result()

	if err != nil {
		return "", fmt.Errorf("xadd: %w", err)
	}

	return result, nil
}

// PublishRecordedAsync publishes without blocking the caller.
// Errors are logged but not returned (fire-and-forget).
func (p *Publisher) PublishRecordedAsync(event WorkoutEventPayload) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), PublishTimeout)
		defer cancel()

		streamID, err := p.Publish(ctx, event)
		if err != nil {
			p.logger.Warn("failed to publish workout event",
				"user_id", event.UserID,
				"exercise_id", event.ExerciseID,
				"error", err,
			)
			p.metrics.IncEventPublished("dropped")
			return
		}

		p.logger.Debug("workout event published",
			"user_id", event.UserID,
			"exercise_id", event.ExerciseID,
			"stream_id", streamID,
		)
		p.metrics.IncEventPublished("success")
	}()
}
