package cache

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Gateway is the best-effort cache used by read paths. Every failure is
// swallowed and logged: a cache outage degrades to cache misses and must
// never fail the request.
type Gateway struct {
	redis *RedisClient
}

// NewGateway creates a Gateway on top of a Redis client.
func NewGateway(redis *RedisClient) *Gateway {
	return &Gateway{redis: redis}
}

// Key builds a deterministic cache key from a prefix and a parameter map.
// json.Marshal sorts map keys, so equivalent parameter sets always encode to
// the same key regardless of the order they were assembled in.
func (g *Gateway) Key(prefix string, params map[string]interface{}) string {
	if params == nil {
		params = map[string]interface{}{}
	}
	raw, err := json.Marshal(params)
	if err != nil {
		// Marshal of a map with string keys and plain values cannot fail;
		// fall back to the bare prefix rather than erroring a read path.
		return prefix + ":"
	}
	return prefix + ":" + base64.StdEncoding.EncodeToString(raw)
}

// Get returns the cached value and true on a hit. Errors count as misses.
func (g *Gateway) Get(ctx context.Context, key string) (string, bool) {
	val, err := g.redis.Get(ctx, key)
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("key", key).Msg("cache get failed")
		}
		return "", false
	}
	return val, true
}

// Set stores a value with TTL, ignoring failures.
func (g *Gateway) Set(ctx context.Context, key string, value string, ttl time.Duration) {
	if err := g.redis.Set(ctx, key, value, ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

// Delete removes a single key, ignoring failures.
func (g *Gateway) Delete(ctx context.Context, key string) {
	if err := g.redis.Delete(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache delete failed")
	}
}

// DeleteByPattern removes all keys matching the glob pattern, ignoring
// failures.
func (g *Gateway) DeleteByPattern(ctx context.Context, pattern string) {
	if err := g.redis.DeleteByPattern(ctx, pattern); err != nil {
		log.Warn().Err(err).Str("pattern", pattern).Msg("cache delete by pattern failed")
	}
}
