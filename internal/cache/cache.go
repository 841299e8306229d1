// Package cache stores rendered analytics bundles and portfolio snapshots
// so repeated dashboard refreshes for the same wallet do not recompute or
// re-fetch. Entries are small JSON blobs keyed by wallet address (plus
// symbol filter for trade bundles).
package cache

import (
	"context"
	"sync"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// Cache is a byte-blob store with per-entry TTL.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration)
}

type memoryEntry struct {
	b   []byte
	exp time.Time
}

// Memory is an in-process Cache. Expired entries are dropped lazily on Get.
type Memory struct {
	mu sync.Mutex
	m  map[string]memoryEntry
}

// NewMemory returns an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{m: make(map[string]memoryEntry)}
}

func (c *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.m[key]
	if !ok {
		return nil, false
	}
	if !e.exp.IsZero() && time.Now().After(e.exp) {
		delete(c.m, key)
		return nil, false
	}
	return e.b, true
}

func (c *Memory) Set(_ context.Context, key string, val []byte, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := memoryEntry{b: append([]byte(nil), val...)}
	if ttl > 0 {
		e.exp = time.Now().Add(ttl)
	}
	c.m[key] = e
}

// Redis is a Cache backed by a Redis instance, for deployments running more
// than one API replica. Errors degrade to cache misses; the cache is an
// optimization, never a source of truth.
type Redis struct {
	r *redis.Client
}

// NewRedis connects a Redis-backed cache at addr.
func NewRedis(addr string) *Redis {
	return &Redis{r: redis.NewClient(&redis.Options{Addr: addr})}
}

func (c *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	v, err := c.r.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return v, true
}

func (c *Redis) Set(ctx context.Context, key string, val []byte, ttl time.Duration) {
	_ = c.r.Set(ctx, key, val, ttl).Err()
}
