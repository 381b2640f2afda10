// Package model defines domain entities for the application.
package model

import "time"

// WorkoutEvent represents a single recorded-exercise event consumed from
// the Redis stream and persisted for aggregation.
type WorkoutEvent struct {
	ID      string `json:"id"`       // ULID (time-sortable)
	EventID string `json:"event_id"` // Idempotency key (Redis stream ID)

	UserID     string `json:"user_id"`     // FK to users.id
	ExerciseID string `json:"exercise_id"` // FK to exercises.id

	Duration int       `json:"duration"`  // minutes
	Date     time.Time `json:"date"`      // exercise calendar date (UTC midnight)

	RecordedAt time.Time `json:"recorded_at"` // event timestamp
	CreatedAt  time.Time `json:"created_at"`  // DB insertion time
}
