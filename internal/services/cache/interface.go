package cache

import (
	"context"
	"time"
)

// Cache stores generated page data with a per-entry freshness window
type Cache interface {
	// Get returns the value for key if present and still fresh
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set stores value for ttl; a non-positive ttl uses the store default
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error

	Clear(ctx context.Context) error

	Has(ctx context.Context, key string) bool

	// Stop releases background resources
	Stop()
}

// CacheStats provides statistics about cache usage
type CacheStats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Sets      int64 `json:"sets"`
	Deletes   int64 `json:"deletes"`
	Evictions int64 `json:"evictions"`
	Size      int64 `json:"size"`
	MaxSize   int64 `json:"max_size"`
}

// StatsProvider interface for caches that provide statistics
type StatsProvider interface {
	Stats() CacheStats
}

// DefaultTTL applies when Set is called without a ttl
const DefaultTTL = 24 * time.Hour
