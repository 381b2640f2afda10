// Package events provides workout event capture and processing.
package events

import (
	"fmt"

	"github.com/fitlog/fitlog/internal/model"
)

// ValidateWorkoutEventPayload validates workout event payload fields.
func ValidateWorkoutEventPayload(payload WorkoutEventPayload) error {
	if payload.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if payload.ExerciseID == "" {
		return fmt.Errorf("exercise_id is required")
	}
	if payload.Duration < model.MinDurationMinutes || payload.Duration > model.MaxDurationMinutes {
		return fmt.Errorf("duration must be between %d and %d minutes",
			model.MinDurationMinutes, model.MaxDurationMinutes)
	}
	if payload.Date <= 0 {
		return fmt.Errorf("date must be set")
	}
	if payload.RecordedAt <= 0 {
		return fmt.Errorf("recorded_at must be set")
	}
	return nil
}
