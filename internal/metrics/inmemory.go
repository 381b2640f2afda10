package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersCreated        uint64
	ExercisesRecorded   uint64
	UserCacheHits       uint64
	UserCacheMisses     uint64
	LogQueryCount       uint64
	LogQueryTotalNs     int64
	LogResultTotal      uint64
	EventsPublished     uint64
	EventsDropped       uint64
	EventsProcessed     uint64
	EventsFailed        uint64
	EventQueueDepth     int64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	usersCreated      uint64
	exercisesRecorded uint64
	userCacheHits     uint64
	userCacheMisses   uint64
	logQueryCount     uint64
	logQueryTotalNs   int64
	logResultTotal    uint64
	eventsPublished   uint64
	eventsDropped     uint64
	eventsProcessed   uint64
	eventsFailed      uint64
	eventQueueDepth   int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersCreated:      atomic.LoadUint64(&m.usersCreated),
		ExercisesRecorded: atomic.LoadUint64(&m.exercisesRecorded),
		UserCacheHits:     atomic.LoadUint64(&m.userCacheHits),
		UserCacheMisses:   atomic.LoadUint64(&m.userCacheMisses),
		LogQueryCount:     atomic.LoadUint64(&m.logQueryCount),
		LogQueryTotalNs:   atomic.LoadInt64(&m.logQueryTotalNs),
		LogResultTotal:    atomic.LoadUint64(&m.logResultTotal),
		EventsPublished:   atomic.LoadUint64(&m.eventsPublished),
		EventsDropped:     atomic.LoadUint64(&m.eventsDropped),
		EventsProcessed:   atomic.LoadUint64(&m.eventsProcessed),
		EventsFailed:      atomic.LoadUint64(&m.eventsFailed),
		EventQueueDepth:   atomic.LoadInt64(&m.eventQueueDepth),
	}
}

// IncUserCreated increments the user created counter.
func (m *InMemoryRecorder) IncUserCreated() {
	atomic.AddUint64(&m.usersCreated, 1)
}

// IncExerciseRecorded increments the exercise recorded counter.
func (m *InMemoryRecorder) IncExerciseRecorded() {
	atomic.AddUint64(&m.exercisesRecorded, 1)
}

// IncUserCacheHit increments the cache hit counter.
func (m *InMemoryRecorder) IncUserCacheHit() {
	atomic.AddUint64(&m.userCacheHits, 1)
}

// IncUserCacheMiss increments the cache miss counter.
func (m *InMemoryRecorder) IncUserCacheMiss() {
	atomic.AddUint64(&m.userCacheMisses, 1)
}

// ObserveLogQueryDuration records a log query duration.
func (m *InMemoryRecorder) ObserveLogQueryDuration(duration time.Duration) {
	atomic.AddUint64(&m.logQueryCount, 1)
	atomic.AddInt64(&m.logQueryTotalNs, duration.Nanoseconds())
}

// ObserveLogResultSize records the size of a filtered log result.
func (m *InMemoryRecorder) ObserveLogResultSize(size int) {
	atomic.AddUint64(&m.logResultTotal, uint64(size))
}

// IncEventPublished counts a publish outcome.
func (m *InMemoryRecorder) IncEventPublished(status string) {
	if status == "success" {
		atomic.AddUint64(&m.eventsPublished, 1)
		return
	}
	atomic.AddUint64(&m.eventsDropped, 1)
}

// IncEventProcessed counts a processing outcome.
func (m *InMemoryRecorder) IncEventProcessed(status string) {
	if status == "success" {
		atomic.AddUint64(&m.eventsProcessed, 1)
		return
	}
	atomic.AddUint64(&m.eventsFailed, 1)
}

// ObserveEventBatchSize is tracked only as a processed total.
func (m *InMemoryRecorder) ObserveEventBatchSize(size int) {}

// SetEventQueueDepth records the current stream depth.
func (m *InMemoryRecorder) SetEventQueueDepth(depth int64) {
	atomic.StoreInt64(&m.eventQueueDepth, depth)
}
