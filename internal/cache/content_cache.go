package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Content kinds cached for the public site.
const (
	KindEvents  = "events"
	KindNews    = "news"
	KindGallery = "gallery"
)

// ContentCache caches the rendered JSON of the public content listings
// (events, news, gallery). Those lists are read by every visitor and
// change only on admin writes, so a short TTL plus invalidation on write
// keeps them cheap. Cache failures are soft: callers fall through to the
// database.
type ContentCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewContentCache creates a ContentCache with the given TTL.
func NewContentCache(redis *RedisClient, ttl time.Duration) *ContentCache {
	return &ContentCache{redis: redis, ttl: ttl}
}

func (c *ContentCache) key(kind string) string {
	return fmt.Sprintf("content:%s", kind)
}

// Get returns the cached JSON payload for a content kind, or ok=false on
// a miss or cache error.
func (c *ContentCache) Get(ctx context.Context, kind string) ([]byte, bool) {
	if c == nil || c.redis == nil {
		return nil, false
	}
	val, err := c.redis.Get(ctx, c.key(kind))
	if err != nil {
		if err != redis.Nil {
			log.Debug().Err(err).Str("kind", kind).Msg("content cache read failed")
		}
		return nil, false
	}
	return []byte(val), true
}

// Set stores the JSON payload for a content kind.
func (c *ContentCache) Set(ctx context.Context, kind string, payload []byte) {
	if c == nil || c.redis == nil {
		return
	}
	if err := c.redis.Set(ctx, c.key(kind), string(payload), c.ttl); err != nil {
		log.Debug().Err(err).Str("kind", kind).Msg("content cache write failed")
	}
}

// Invalidate drops the cached payload for a content kind. Called after
// every admin write to that content type.
func (c *ContentCache) Invalidate(ctx context.Context, kind string) {
	if c == nil || c.redis == nil {
		return
	}
	if err := c.redis.Delete(ctx, c.key(kind)); err != nil {
		log.Debug().Err(err).Str("kind", kind).Msg("content cache invalidation failed")
	}
}
