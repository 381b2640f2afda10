// Package events provides workout event capture and processing.
package events

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq" // postgres driver

	"github.com/fitlog/fitlog/internal/model"
)

// Store handles workout event database operations.
type Store struct {
	db *sql.DB
}

// NewStore creates a new workout event store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open connects to Postgres for event persistence and verifies the
// connection. The returned handle is safe for concurrent use.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

// BulkInsert inserts a batch of workout events in a single statement.
// Duplicate event IDs are skipped so redelivered stream messages are
// idempotent.
func (s *Store) BulkInsert(ctx context.Context, events []*model.WorkoutEvent) error {
	if len(events) == 0 {
		return nil
	}

	var query strings.Builder
	query.WriteString(`
		INSERT INTO workout_events (
			id, event_id, user_id, exercise_id, duration_min, exercise_date, recorded_at
		) VALUES `)

	args := make([]interface{}, 0, len(events)*7)
	for i, event := range events {
		if i > 0 {
			query.WriteString(", ")
		}
		base := i * 7
		fmt.Fprintf(&query, "($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7)
		args = append(args,
			event.ID,
			event.EventID,
			event.UserID,
			event.ExerciseID,
			event.Duration,
			event.Date,
			event.RecordedAt,
		)
	}

	query.WriteString(" ON CONFLICT (event_id) DO NOTHING")

	if _, err := s.db.ExecContext(ctx, query.String(), args...); err != nil {
		return fmt.Errorf("bulk insert workout events: %w", err)
	}
	return nil
}

// UpdateDailyStats upserts the per-user, per-day aggregate rows touched
// by the batch. Totals are recomputed from workout_events rather than
// incremented, so replayed batches converge to the same values.
func (s *Store) UpdateDailyStats(ctx context.Context, events []*model.WorkoutEvent) error {
	if len(events) == 0 {
		return nil
	}

	type dayKey struct {
		userID string
		date   string
	}

	seen := make(map[dayKey]struct{})
	for _, event := range events {
		day := event.Date.UTC().Truncate(24 * time.Hour)
		seen[dayKey{userID: event.UserID, date: day.Format("2006-01-02")}] = struct{}{}
	}

	query := `
		INSERT INTO daily_user_stats (id, user_id, stat_date, total_entries, total_minutes, updated_at)
		SELECT $1, $2, $3::date,
			COUNT(*), COALESCE(SUM(duration_min), 0), NOW()
		FROM workout_events
		WHERE user_id = $2 AND exercise_date = $3::date
		ON CONFLICT (user_id, stat_date) DO UPDATE SET
			total_entries = EXCLUDED.total_entries,
			total_minutes = EXCLUDED.total_minutes,
			updated_at = NOW()
	`

	for key := range seen {
		id := key.userID + ":" + key.date
		if _, err := s.db.ExecContext(ctx, query, id, key.userID, key.date); err != nil {
			return fmt.Errorf("upsert daily stats for %s: %w", id, err)
		}
	}
	return nil
}

// GetDailyStats returns the daily aggregates for a user, oldest first.
// Nil bounds leave that side of the date range open.
func (s *Store) GetDailyStats(ctx context.Context, userID string, from, to *time.Time) ([]*model.DailyUserStats, error) {
	query := `
		SELECT id, user_id, stat_date, total_entries, total_minutes, created_at, updated_at
		FROM daily_user_stats
		WHERE user_id = $1
	`
	args := []interface{}{userID}

	if from != nil {
		args = append(args, from.UTC())
		query += fmt.Sprintf(" AND stat_date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, to.UTC())
		query += fmt.Sprintf(" AND stat_date <= $%d", len(args))
	}
	query += " ORDER BY stat_date"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query daily stats: %w", err)
	}
	defer rows.Close()

	var stats []*model.DailyUserStats
	for rows.Next() {
		var row model.DailyUserStats
		if err := rows.Scan(
			&row.ID,
			&row.UserID,
			&row.Date,
			&row.TotalEntries,
			&row.TotalMinutes,
			&row.CreatedAt,
			&row.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan daily stats: %w", err)
		}
		stats = append(stats, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily stats: %w", err)
	}

	return stats, nil
}

// CountEvents returns the number of persisted workout events for a user.
func (s *Store) CountEvents(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM workout_events WHERE user_id = $1`, userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count workout events: %w", err)
	}
	return count, nil
}
