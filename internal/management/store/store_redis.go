package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"centreg/internal/management/models"
	"centreg/pkg/platform/sentinel"
)

const decisionKeyPrefix = "centreg:decision:"

// RedisDecisionCache caches terminal processing decisions so the reporting
// path can answer "what happened to this processing" without touching the
// primary store. Entries expire; the store of record stays authoritative.
type RedisDecisionCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDecisionCache(client *redis.Client, ttl time.Duration) *RedisDecisionCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisDecisionCache{client: client, ttl: ttl}
}

// PutDecision records a terminal decision. Non-terminal statuses are
// ignored; only final outcomes are worth caching.
func (c *RedisDecisionCache) PutDecision(ctx context.Context, processingID uuid.UUID, status models.ProcessingStatus) error {
	if !status.Terminal() {
		return nil
	}
	if err := c.client.Set(ctx, decisionKeyPrefix+processingID.String(), string(status), c.ttl).Err(); err != nil {
		return fmt.Errorf("cache decision: %w", err)
	}
	return nil
}

// GetDecision returns the cached decision or sentinel.ErrNotFound.
func (c *RedisDecisionCache) GetDecision(ctx context.Context, processingID uuid.UUID) (models.ProcessingStatus, error) {
	value, err := c.client.Get(ctx, decisionKeyPrefix+processingID.String()).Result()
	if err == redis.Nil {
		return "", sentinel.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read cached decision: %w", err)
	}
	return models.ProcessingStatus(value), nil
}
