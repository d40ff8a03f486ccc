package stores

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// MarkerCache holds the per-user-per-day check-in markers in Redis. SetNX
// makes the claim atomic among racing requests; the TTL drops the marker
// at the next zone midnight.
type MarkerCache struct {
	rdb *redis.Client
}

// NewMarkerCache creates the cache around an existing client.
func NewMarkerCache(rdb *redis.Client) *MarkerCache {
	return &MarkerCache{rdb: rdb}
}

// SetIfAbsent atomically claims key with the given TTL, reporting whether
// this call was the one that set it. Errors propagate so the caller can
// fail the check-in loudly instead of double-writing blind.
func (c *MarkerCache) SetIfAbsent(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		ttl = time.Second
	}
	return c.rdb.SetNX(ctx, key, "1", ttl).Result()
}
