package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fitlog/fitlog/internal/model"
)

// Cache key prefixes and TTLs.
const (
	userKeyPrefix = "user:"

	// DefaultUserTTL is the TTL for cached user records. Users are
	// immutable after creation, so a long TTL is safe.
	DefaultUserTTL = 1 * time.Hour
)

// Common cache errors.
var (
	ErrCacheMiss = errors.New("cache miss")
)

// GetUser retrieves a user from cache by ID.
// Returns ErrCacheMiss if not found.
func (c *Cache) GetUser(ctx context.Context, id string) (*model.User, error) {
	key := userKeyPrefix + id

	result, err := c.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall failed: %w", err)
	}

	if len(result) == 0 {
		return nil, ErrCacheMiss
	}

	user := &model.User{
		ID:       id,
		Username: result["username"],
	}
	if raw := result["created_at"]; raw != "" {
		if ts, err := strconv.ParseInt(raw, 10, 64); err == nil {
			user.CreatedAt = time.Unix(ts, 0).UTC()
		}
	}

	return user, nil
}

// SetUser stores a user in cache.
func (c *Cache) SetUser(ctx context.Context, user *model.User) error {
	key := userKeyPrefix + user.ID

	fields := map[string]any{
		"username":   user.Username,
		"created_at": strconv.FormatInt(user.CreatedAt.Unix(), 10),
	}

	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, c.userTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis hset failed: %w", err)
	}

	return nil
}

// DeleteUser removes a cached user record.
func (c *Cache) DeleteUser(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, userKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}
