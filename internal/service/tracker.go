// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/fitlog/fitlog/internal/events"
	"github.com/fitlog/fitlog/internal/metrics"
	"github.com/fitlog/fitlog/internal/model"
	"github.com/fitlog/fitlog/internal/repository"
)

// Service errors.
var (
	ErrMissingUsername    = errors.New("username is required")
	ErrMissingDescription = errors.New("description is required")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUser      = errors.New("duplicate user record")
)

// Store captures the persistence operations the tracker needs.
// *repository.Repository satisfies it.
type Store interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	AddExercise(ctx context.Context, exercise *model.Exercise) error
	ListExercises(ctx context.Context, userID string) ([]*model.Exercise, error)
}

// UserCache captures the read-through cache for user records.
// *cache.Cache satisfies it.
type UserCache interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
	SetUser(ctx context.Context, user *model.User) error
}

// EventPublisher emits workout events after successful appends.
// *events.Publisher satisfies it.
type EventPublisher interface {
	PublishRecordedAsync(payload events.WorkoutEventPayload)
}

// Tracker orchestrates user and exercise-log workflows over the record
// store, the user cache, and the workout event stream.
type Tracker struct {
	store   Store
	users   UserCache
	events  EventPublisher
	metrics metrics.Recorder
}

// NewTracker creates a new Tracker. The cache and publisher may be nil;
// the tracker then runs store-only.
func NewTracker(store Store, users UserCache, publisher EventPublisher, recorder metrics.Recorder) *Tracker {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &Tracker{
		store:   store,
		users:   users,
		events:  publisher,
		metrics: recorder,
	}
}

// CreateUser creates a new user. Usernames are not unique; duplicate names
// produce distinct records. Only an insert race on the generated ID
// surfaces as ErrDuplicateUser.
func (s *Tracker) CreateUser(ctx context.Context, username string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrMissingUsername
	}

	user := &model.User{
		ID:        ulid.Make().String(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if s.users != nil {
		// Best effort; the store remains authoritative.
		_ = s.users.SetUser(ctx, user)
	}

	s.metrics.IncUserCreated()

	return user, nil
}

// ListUsers returns all users in insertion order.
func (s *Tracker) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetUser resolves a user by ID, consulting the cache first.
func (s *Tracker) GetUser(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, ErrUserNotFound
	}

	if s.users != nil {
		if user, err := s.users.GetUser(ctx, id); err == nil {
			s.metrics.IncUserCacheHit()
			return user, nil
		}
		s.metrics.IncUserCacheMiss()
	}

	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if s.users != nil {
		_ = s.users.SetUser(ctx, user)
	}

	return user, nil
}

// AddExerciseInput defines input for appending a log entry.
// Duration and Date arrive as raw strings and are validated here.
type AddExerciseInput struct {
	UserID      string
	Description string
	Duration    string
	Date        string
}

// AddExercise validates the input, appends an entry to the user's log in a
// single store transaction, and emits a workout event.
func (s *Tracker) AddExercise(ctx context.Context, input AddExerciseInput) (*model.User, *model.Exercise, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, nil, ErrMissingDescription
	}

	minutes, err := ParseMinutes(input.Duration)
	if err != nil {
		return nil, nil, err
	}

	date, err := ParseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.GetUser(ctx, input.UserID)
	if err != nil {
		return nil, nil, err
	}

	exercise := &model.Exercise{
		ID:          ulid.Make().String(),
		UserID:      user.ID,
		Description: description,
		Duration:    minutes,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}

	// The insert re-verifies the user row inside the transaction, so a
	// concurrent out-of-band delete cannot orphan the entry.
	if err := s.store.AddExercise(ctx, exercise); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("add exercise: %w", err)
	}

	s.metrics.IncExerciseRecorded()

	if s.events != nil {
		s.events.PublishRecordedAsync(events.WorkoutEventPayload{
			UserID:     exercise.UserID,
			ExerciseID: exercise.ID,
			Duration:   exercise.Duration,
			Date:       exercise.Date.Unix(),
			RecordedAt: exercise.CreatedAt.UnixMilli(),
		})
	}

	return user, exercise, nil
}

// GetLogInput defines input for a log query. Nil bounds are open-ended;
// a nil limit returns the full filtered log.
type GetLogInput struct {
	UserID string
	From   *time.Time
	To     *time.Time
	Limit  *int
}

// LogResult carries the owning user and the filtered entries.
type LogResult struct {
	User    *model.User
	Entries []*model.Exercise
}

// GetLog returns the user's exercise log filtered by the optional date
// range and limit, preserving insertion order.
func (s *Tracker) GetLog(ctx context.Context, input GetLogInput) (*LogResult, error) {
	start := time.Now()

	user, err := s.GetUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	entries, err := s.store.ListExercises(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	filtered := FilterLog(entries, input.From, input.To, input.Limit)

	s.metrics.ObserveLogQueryDuration(time.Since(start))
	s.metrics.ObserveLogResultSize(len(filtered))

	return &LogResult{User: user, Entries: filtered}, nil
}
