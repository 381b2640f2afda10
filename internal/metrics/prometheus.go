package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder exposes Recorder events as Prometheus collectors.
type PrometheusRecorder struct {
	usersCreated      prometheus.Counter
	exercisesRecorded prometheus.Counter
	userCacheOutcome  *prometheus.CounterVec
	logQueryDuration  prometheus.Histogram
	logResultSize     prometheus.Histogram
	eventsPublished   *prometheus.CounterVec
	eventsProcessed   *prometheus.CounterVec
	eventBatchSize    prometheus.Histogram
	eventQueueDepth   prometheus.Gauge
}

// NewPrometheus builds a PrometheusRecorder and registers its collectors
// with the given registerer. Pass prometheus.DefaultRegisterer in main.
func NewPrometheus(reg prometheus.Registerer) *PrometheusRecorder {
	r := &PrometheusRecorder{
		usersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fitlog",
			Name:      "users_created_total",
			Help:      "Number of user records created.",
		}),
		exercisesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fitlog",
			Name:      "exercises_recorded_total",
			Help:      "Number of exercise log entries appended.",
		}),
		userCacheOutcome: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fitlog",
			Subsystem: "cache",
			Name:      "user_lookups_total",
			Help:      "User cache lookups by outcome.",
		}, []string{"outcome"}),
		logQueryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fitlog",
			Name:      "log_query_duration_seconds",
			Help:      "Duration of exercise log queries, store read included.",
			Buckets:   prometheus.DefBuckets,
		}),
		logResultSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fitlog",
			Name:      "log_result_entries",
			Help:      "Entry count of filtered log results.",
			Buckets:   []float64{0, 1, 5, 10, 50, 100, 500},
		}),
		eventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fitlog",
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Workout events published to the stream by status.",
		}, []string{"status"}),
		eventsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fitlog",
			Subsystem: "events",
			Name:      "processed_total",
			Help:      "Workout events processed by the worker by status.",
		}, []string{"status"}),
		eventBatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fitlog",
			Subsystem: "events",
			Name:      "batch_size",
			Help:      "Size of processed workout event batches.",
			Buckets:   []float64{1, 10, 50, 100, 250, 500},
		}),
		eventQueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fitlog",
			Subsystem: "events",
			Name:      "queue_depth",
			Help:      "Approximate length of the workout event stream.",
		}),
	}

	reg.MustRegister(
		r.usersCreated,
		r.exercisesRecorded,
		r.userCacheOutcome,
		r.logQueryDuration,
		r.logResultSize,
		r.eventsPublished,
		r.eventsProcessed,
		r.eventBatchSize,
		r.eventQueueDepth,
	)

	return r
}

// IncUserCreated increments the user created counter.
func (r *PrometheusRecorder) IncUserCreated() {
	r.usersCreated.Inc()
}

// IncExerciseRecorded increments the exercise recorded counter.
func (r *PrometheusRecorder) IncExerciseRecorded() {
	r.exercisesRecorded.Inc()
}

// IncUserCacheHit counts a user cache hit.
func (r *PrometheusRecorder) IncUserCacheHit() {
	r.userCacheOutcome.WithLabelValues("hit").Inc()
}

// IncUserCacheMiss counts a user cache miss.
func (r *PrometheusRecorder) IncUserCacheMiss() {
	r.userCacheOutcome.WithLabelValues("miss").Inc()
}

// ObserveLogQueryDuration records a log query duration.
func (r *PrometheusRecorder) ObserveLogQueryDuration(duration time.Duration) {
	r.logQueryDuration.Observe(duration.Seconds())
}

// ObserveLogResultSize records the size of a filtered log result.
func (r *PrometheusRecorder) ObserveLogResultSize(size int) {
	r.logResultSize.Observe(float64(size))
}

// IncEventPublished counts a publish outcome.
func (r *PrometheusRecorder) IncEventPublished(status string) {
	r.eventsPublished.WithLabelValues(status).Inc()
}

// IncEventProcessed counts a processing outcome.
func (r *PrometheusRecorder) IncEventProcessed(status string) {
	r.eventsProcessed.WithLabelValues(status).Inc()
}

// ObserveEventBatchSize records a processed batch size.
func (r *PrometheusRecorder) ObserveEventBatchSize(size int) {
	r.eventBatchSize.Observe(float64(size))
}

// SetEventQueueDepth records the current stream depth.
func (r *PrometheusRecorder) SetEventQueueDepth(depth int64) {
	r.eventQueueDepth.Set(float64(depth))
}
