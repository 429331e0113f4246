// Package cache keeps short-lived JSON copies of backend listings in redis.
// Cache failures never fail a request; they only cost a backend round trip.
package cache

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"storefront-service/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const EventsPrefix = "cache:events:"

type Cache struct {
	rdb *redis.Client
	ttl time.Duration
	log log.Logger
}

func New(rdb *redis.Client, ttl time.Duration, log log.Logger) *Cache {
	return &Cache{rdb: rdb, ttl: ttl, log: log}
}

// Key joins parts under the events prefix, e.g. Key("list", "page") -> cache:events:list:page.
func Key(parts ...string) string {
	return EventsPrefix + strings.Join(parts, ":")
}

// Get decodes the value at key into out. A miss returns false with no error.
func (c *Cache) Get(ctx context.Context, key string, out interface{}) (bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, c.ttl).Err()
}

// PurgePrefix deletes every key starting with prefix and reports how many went.
func (c *Cache) PurgePrefix(ctx context.Context, prefix string) (int, error) {
	var purged int
	iter := c.rdb.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return purged, err
		}
		purged++
	}
	return purged, iter.Err()
}

// Remember returns the cached value for key, or calls load and caches its result.
func Remember[T any](ctx context.Context, c *Cache, key string, load func(ctx context.Context) (T, error)) (T, error) {
	var cached T
	if c != nil {
		hit, err := c.Get(ctx, key, &cached)
		if err != nil {
			c.log.Warn(ctx, "error read cache", err, key)
		}
		if hit {
			return cached, nil
		}
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	if c != nil {
		if err := c.Set(ctx, key, v); err != nil {
			c.log.Warn(ctx, "error write cache", err, key)
		}
	}
	return v, nil
}
