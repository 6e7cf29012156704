package cache

import (
	"context"
	"time"
)

// Cache is the contract for the read-through cache layer.
// Repositories depend on this interface so the backing store
// (Redis, in-memory for tests) can be swapped freely.
type Cache interface {
	// Get fetches a key and unmarshals it into dest.
	// Returns found=false on a miss; dest is untouched in that case.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes one or more keys.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern,
	// used to invalidate list caches after mutations.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
