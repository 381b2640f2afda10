// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Record store metrics
	IncUserCreated()
	IncExerciseRecorded()

	// User cache metrics
	IncUserCacheHit()
	IncUserCacheMiss()

	// Log query metrics
	ObserveLogQueryDuration(duration time.Duration)
	ObserveLogResultSize(size int)

	// Workout event pipeline metrics
	IncEventPublished(status string) // status: "success" or "dropped"
	IncEventProcessed(status string) // status: "success", "failed", "skipped"
	ObserveEventBatchSize(size int)
	SetEventQueueDepth(depth int64)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
