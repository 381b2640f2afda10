package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fitlog/fitlog/internal/model"
)

// AddExercise appends a log entry for its owning user inside a single
// transaction. The user row is locked and re-verified first, so the entry
// can never be orphaned by a concurrent out-of-band user removal.
// Returns ErrUserNotFound if the owner does not exist.
func (r *Repository) AddExercise(ctx context.Context, exercise *model.Exercise) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var ownerID string
	err = tx.QueryRow(ctx,
		`SELECT id FROM users WHERE id = $1 FOR UPDATE`,
		exercise.UserID,
	).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to verify user: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO exercises (id, user_id, description, duration_min, exercise_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		exercise.ID,
		exercise.UserID,
		exercise.Description,
		exercise.Duration,
		exercise.Date,
		exercise.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateID
		}
		return fmt.Errorf("failed to insert exercise: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit exercise: %w", err)
	}

	return nil
}

// ListExercises retrieves a user's full log in insertion order.
func (r *Repository) ListExercises(ctx context.Context, userID string) ([]*model.Exercise, error) {
	query := `
		SELECT id, user_id, description, duration_min, exercise_date, created_at
		FROM exercises
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	defer rows.Close()

	var exercises []*model.Exercise
	for rows.Next() {
		var exercise model.Exercise
		if err := rows.Scan(
			&exercise.ID,
			&exercise.UserID,
			&exercise.Description,
			&exercise.Duration,
			&exercise.Date,
			&exercise.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		exercises = append(exercises, &exercise)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate exercises: %w", err)
	}

	return exercises, nil
}

// CountExercises returns the number of log entries for a user.
func (r *Repository) CountExercises(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM exercises WHERE user_id = $1`, userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count exercises: %w", err)
	}
	return count, nil
}
