package ports

import (
	"context"
	"time"
)

// Port: a short-lived cache for synthesized response snapshots. Signals are
// stable within a minute bucket, so cached entries carry a TTL of about that
// length. A missing entry is not an error.
type SnapshotCache interface {
	// Get returns the cached payload for key. ok is false on a miss.
	Get(ctx context.Context, key string) (payload []byte, ok bool, err error)
	// Set stores payload under key for ttl.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}
