package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReportCache implements usecase.Cache using Redis. Cached values are
// JSON-encoded reports; expiry keeps them loosely consistent with the
// ledger.
type ReportCache struct {
	client *redis.Client
	prefix string
}

// NewReportCache creates a new ReportCache.
func NewReportCache(client *redis.Client) *ReportCache {
	return &ReportCache{
		client: client,
		prefix: "cashflow:",
	}
}

// Get retrieves a value by key.
func (c *ReportCache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.client.Get(ctx, c.prefix+key).Bytes()
}

// Set stores a value with TTL.
func (c *ReportCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, value, ttl).Err()
}

// Delete removes a key.
func (c *ReportCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.prefix+key).Err()
}
