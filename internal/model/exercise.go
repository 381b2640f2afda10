// Package model defines domain entities for the application.
package model

import "time"

// Duration bounds for a single exercise entry, in minutes.
const (
	MinDurationMinutes = 0
	MaxDurationMinutes = 600
)

// DisplayDateLayout is the canonical date rendering used on the wire,
// e.g. "Sun Jan 01 2023". Dates are stored at UTC midnight and rendered
// from UTC fields so the displayed day never shifts with the host
// timezone.
const DisplayDateLayout = "Mon Jan 02 2006"

// Exercise is a single immutable log entry scoped to one user.
type Exercise struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"` // minutes, [0,600]
	Date        time.Time `json:"date"`     // UTC midnight, date-only semantics
	CreatedAt   time.Time `json:"created_at"`
}

// DisplayDate renders the entry date in the canonical wire format.
func (e *Exercise) DisplayDate() string {
	return e.Date.UTC().Format(DisplayDateLayout)
}

// DailyUserStats is a pre-aggregated per-user, per-day totals row,
// maintained by the workout event worker.
type DailyUserStats struct {
	ID           string    `json:"id"`      // composite: user_id:date
	UserID       string    `json:"user_id"`
	Date         time.Time `json:"date"` // UTC date, time component zeroed
	TotalEntries int64     `json:"total_entries"`
	TotalMinutes int64     `json:"total_minutes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
