package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores serialized analysis results keyed by prompt.
type Cache interface {
	// Get returns the cached value, or nil on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value with TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Close closes the cache connection
	Close() error
}

// GenerateCacheKey derives a stable key from the analysis kind and the exact prompt text.
// Identical profiles render identical prompts, so they share an entry.
func GenerateCacheKey(kind, prompt string) string {
	sum := sha256.Sum256([]byte(kind + "\x00" + prompt))
	return kind + ":" + hex.EncodeToString(sum[:])
}
