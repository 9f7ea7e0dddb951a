package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the cache layer.
// Two implementations exist: Redis on the server (shared across
// requests) and an in-process memory cache inside the shelf client.
type Cache interface {
	// Get reads the value stored under key and unmarshals it into dest.
	// Returns (found, error); on a miss dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with a TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob-style pattern,
	// e.g. "books:list*". Used for invalidation after mutations.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies the cache backend is reachable.
	Ping(ctx context.Context) error
}
