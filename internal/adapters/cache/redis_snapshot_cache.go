package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis-backed implementation of the SnapshotCache port. Synthesized
// responses are stable within a minute bucket, so entries carry short TTLs
// and a flushed cache only costs recomputation.
type RedisSnapshotCache struct {
	client *redis.Client
}

func NewRedisSnapshotCache(client *redis.Client) *RedisSnapshotCache {
	return &RedisSnapshotCache{client: client}
}

// Get returns the cached payload for key, with ok=false on a miss.
func (c *RedisSnapshotCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c.client == nil {
		return nil, false, errors.New("snapshot cache: client is nil")
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("snapshot cache: get %q: %w", key, err)
	}

	return payload, true, nil
}

// Set stores payload under key for ttl.
func (c *RedisSnapshotCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if c.client == nil {
		return errors.New("snapshot cache: client is nil")
	}

	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("snapshot cache: set %q: %w", key, err)
	}

	return nil
}
