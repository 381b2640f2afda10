package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUserCreated is a no-op.
func (n *NoopRecorder) IncUserCreated() {}

// IncExerciseRecorded is a no-op.
func (n *NoopRecorder) IncExerciseRecorded() {}

// IncUserCacheHit is a no-op.
func (n *NoopRecorder) IncUserCacheHit() {}

// IncUserCacheMiss is a no-op.
func (n *NoopRecorder) IncUserCacheMiss() {}

// ObserveLogQueryDuration is a no-op.
func (n *NoopRecorder) ObserveLogQueryDuration(duration time.Duration) {}

// ObserveLogResultSize is a no-op.
func (n *NoopRecorder) ObserveLogResultSize(size int) {}

// IncEventPublished is a no-op.
func (n *NoopRecorder) IncEventPublished(status string) {}

// IncEventProcessed is a no-op.
func (n *NoopRecorder) IncEventProcessed(status string) {}

// ObserveEventBatchSize is a no-op.
func (n *NoopRecorder) ObserveEventBatchSize(size int) {}

// SetEventQueueDepth is a no-op.
func (n *NoopRecorder) SetEventQueueDepth(depth int64) {}
