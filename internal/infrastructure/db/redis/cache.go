package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fitlog/exercise-tracker/internal/api/metrics"
	"github.com/fitlog/exercise-tracker/internal/core/domain"
)

const logTTL = 5 * time.Minute

// LogCache caches a user's full exercise list as a JSON payload.
// Key format: log:<user_id>. Entries expire after logTTL and are deleted
// whenever a new exercise is appended for that user.
type LogCache struct {
	client *redis.Client
}

// NewLogCache creates a LogCache wrapping the given Redis client.
func NewLogCache(client *redis.Client) *LogCache {
	return &LogCache{client: client}
}

type cachedExercise struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// Get returns the cached exercise list for the user and whether it was present.
func (c *LogCache) Get(ctx context.Context, ownerID string) ([]*domain.Exercise, bool, error) {
	payload, err := c.client.Get(ctx, c.key(ownerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.LogCacheTotal.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("log cache get: %w", err)
	}

	var docs []cachedExercise
	if err := json.Unmarshal(payload, &docs); err != nil {
		return nil, false, fmt.Errorf("log cache decode: %w", err)
	}

	exercises := make([]*domain.Exercise, 0, len(docs))
	for _, d := range docs {
		exercises = append(exercises, &domain.Exercise{
			ID:          d.ID,
			OwnerID:     d.OwnerID,
			Description: d.Description,
			Duration:    d.Duration,
			Date:        d.Date,
			CreatedAt:   d.CreatedAt,
		})
	}

	metrics.LogCacheTotal.WithLabelValues("hit").Inc()
	return exercises, true, nil
}

// Set stores the user's exercise list (expires after logTTL).
func (c *LogCache) Set(ctx context.Context, ownerID string, exercises []*domain.Exercise) error {
	docs := make([]cachedExercise, 0, len(exercises))
	for _, e := range exercises {
		docs = append(docs, cachedExercise{
			ID:          e.ID,
			OwnerID:     e.OwnerID,
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date,
			CreatedAt:   e.CreatedAt,
		})
	}

	payload, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("log cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(ownerID), payload, logTTL).Err()
}

// Invalidate drops the cached list for the user.
func (c *LogCache) Invalidate(ctx context.Context, ownerID string) error {
	return c.client.Del(ctx, c.key(ownerID)).Err()
}

func (c *LogCache) key(ownerID string) string {
	return "log:" + ownerID
}
