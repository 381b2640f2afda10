// Command seed-demo-data creates a demo user with a week of exercise
// entries for local development.
//
// Usage:
//
//	go run ./scripts -database-url postgres://... [-username demo]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/fitlog/fitlog/internal/model"
	"github.com/fitlog/fitlog/internal/repository"
)

type output struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Entries  int    `json:"entries"`
}

func main() {
	var (
		databaseURL = flag.String("database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
		username    = flag.String("username", "demo", "Username for the seeded user")
		days        = flag.Int("days", 7, "Number of days of entries to create")
		format      = flag.String("format", "plain", "Output format: plain or json")
	)
	flag.Parse()

	if *databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}
	if *days <= 0 {
		fmt.Fprintln(os.Stderr, "days must be positive")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := repository.New(ctx, *databaseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "connect database:", err)
		os.Exit(1)
	}
	defer repo.Close()

	user := &model.User{
		ID:        ulid.Make().String(),
		Username:  *username,
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.CreateUser(ctx, user); err != nil {
		fmt.Fprintln(os.Stderr, "create user:", err)
		os.Exit(1)
	}

	descriptions := []string{"running", "rowing", "cycling", "swimming", "yoga", "lifting", "walking"}
	durations := []int{30, 20, 45, 40, 60, 50, 25}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	created := 0
	for i := 0; i < *days; i++ {
		exercise := &model.Exercise{
			ID:          ulid.Make().String(),
			UserID:      user.ID,
			Description: descriptions[i%len(descriptions)],
			Duration:    durations[i%len(durations)],
			Date:        today.AddDate(0, 0, -i),
			CreatedAt:   time.Now().UTC(),
		}
		if err := repo.AddExercise(ctx, exercise); err != nil {
			fmt.Fprintln(os.Stderr, "add exercise:", err)
			os.Exit(1)
		}
		created++
	}

	result := output{
		UserID:   user.ID,
		Username: user.Username,
		Entries:  created,
	}

	if *format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Fprintln(os.Stderr, "encode output:", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("seeded user %s (%s) with %d entries\n", result.Username, result.UserID, result.Entries)
}
