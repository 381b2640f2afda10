// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"encoding/json"

	"github.com/fitlog/fitlog/internal/model"
)

// RawDuration carries a duration field that clients may send as a JSON
// number or a string. The raw text is kept so validation happens in one
// place in the service layer.
type RawDuration string

// UnmarshalJSON accepts both `30` and `"30"`.
func (d *RawDuration) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*d = RawDuration(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*d = RawDuration(n.String())
	return nil
}

// CreateUserRequest represents the request body for creating a user.
type CreateUserRequest struct {
	Username string `json:"username"`
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// UserListResponse represents the full user listing.
type UserListResponse struct {
	Data  []UserResponse `json:"data"`
	Count int            `json:"count"`
}

// AddExerciseRequest represents the request body for recording an exercise.
type AddExerciseRequest struct {
	Description string      `json:"description"`
	Duration    RawDuration `json:"duration"`
	Date        string      `json:"date,omitempty"`
}

// ExerciseResponse echoes the owning user with the recorded entry.
// Date is the human-readable display form.
type ExerciseResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogEntry is a single exercise entry in a log response.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse represents a user's filtered exercise log.
type LogResponse struct {
	ID       string     `json:"id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}

// DailyStatsEntry is one per-day aggregate row.
type DailyStatsEntry struct {
	Date         string `json:"date"` // YYYY-MM-DD
	TotalEntries int64  `json:"total_entries"`
	TotalMinutes int64  `json:"total_minutes"`
}

// DailyStatsResponse represents a user's per-day workout totals.
type DailyStatsResponse struct {
	ID       string            `json:"id"`
	Username string            `json:"username"`
	Count    int               `json:"count"`
	Stats    []DailyStatsEntry `json:"stats"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ToUserResponse converts a User model to UserResponse.
func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
	}
}

// ToUserListResponse converts a slice of User models to UserListResponse.
func ToUserListResponse(users []*model.User) *UserListResponse {
	data := make([]UserResponse, len(users))
	for i, user := range users {
		data[i] = ToUserResponse(user)
	}
	return &UserListResponse{Data: data, Count: len(data)}
}

// ToExerciseResponse combines a user and a recorded entry.
func ToExerciseResponse(user *model.User, exercise *model.Exercise) *ExerciseResponse {
	return &ExerciseResponse{
		ID:          user.ID,
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.DisplayDate(),
	}
}

// ToLogResponse converts a user and their filtered entries to a LogResponse.
func ToLogResponse(user *model.User, entries []*model.Exercise) *LogResponse {
	log := make([]LogEntry, len(entries))
	for i, entry := range entries {
		log[i] = LogEntry{
			Description: entry.Description,
			Duration:    entry.Duration,
			Date:        entry.DisplayDate(),
		}
	}
	return &LogResponse{
		ID:       user.ID,
		Username: user.Username,
		Count:    len(log),
		Log:      log,
	}
}

// ToDailyStatsResponse converts aggregate rows to a DailyStatsResponse.
func ToDailyStatsResponse(user *model.User, stats []*model.DailyUserStats) *DailyStatsResponse {
	entries := make([]DailyStatsEntry, len(stats))
	for i, row := range stats {
		entries[i] = DailyStatsEntry{
			Date:         row.Date.UTC().Format("2006-01-02"),
			TotalEntries: row.TotalEntries,
			TotalMinutes: row.TotalMinutes,
		}
	}
	return &DailyStatsResponse{
		ID:       user.ID,
		Username: user.Username,
		Count:    len(entries),
		Stats:    entries,
	}
}
