// Package cache provides a pluggable byte-cache for reduction results and
// rendered DOT/SVG output, keyed by deterministic, option-sensitive keys.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte blobs under string keys with an optional TTL.
// Implementations must treat a zero TTL as "no expiration".
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
