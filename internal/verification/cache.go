package verification

import (
	"context"
	"encoding/json"
	"time"

	"truadboon/internal/platform/redis"
)

// Cache holds recent verdicts keyed by normalized identifier. The TTL is
// deliberately short so a fresh blacklist report takes effect within a
// minute. A nil Cache is valid and disables caching.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache wraps a redis client. Returns nil when the client is nil.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if client == nil {
		return nil
	}
	return &Cache{client: client, ttl: ttl}
}

func cacheKey(normalized string) string {
	return "verify:" + normalized
}

// Get returns the cached verdict for the identifier, or ok=false.
func (c *Cache) Get(ctx context.Context, normalized string) (Result, bool) {
	if c == nil {
		return Result{}, false
	}
	raw, err := c.client.Get(ctx, cacheKey(normalized)).Bytes()
	if err != nil {
		// goredis.Nil is a clean miss; redis outages degrade to a miss too.
		return Result{}, false
	}
	var res Result
	if err := json.Unmarshal(raw, &res); err != nil {
		return Result{}, false
	}
	return res, true
}

// Set stores a verdict. Failures are ignored; the cache is an optimization.
func (c *Cache) Set(ctx context.Context, normalized string, res Result) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(res)
	if err != nil {
		return
	}
	c.client.Set(ctx, cacheKey(normalized), raw, c.ttl)
}

// Invalidate drops the cached verdict for an identifier. Called when the
// account is newly blacklisted so the danger verdict is visible immediately.
func (c *Cache) Invalidate(ctx context.Context, normalized string) {
	if c == nil {
		return
	}
	c.client.Del(ctx, cacheKey(normalized))
}
