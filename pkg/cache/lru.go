package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/matzehuels/swotboard/pkg/observability"
)

// DefaultLRUSize holds a few revisions of both exports.
const DefaultLRUSize = 32

type entry struct {
	data      []byte
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// LRUCache keeps the most recently used entries in memory.
// It is safe for concurrent use.
type LRUCache struct {
	lru *lru.Cache[string, entry]
	now func() time.Time
}

// NewLRUCache creates an in-memory cache holding at most size entries.
func NewLRUCache(size int) (Cache, error) {
	l, err := lru.New[string, entry](size)
	if err != nil {
		return nil, fmt.Errorf("create lru: %w", err)
	}
	return &LRUCache{lru: l, now: time.Now}, nil
}

// Get returns a live entry; expired entries are dropped and reported as misses.
func (c *LRUCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	e, ok := c.lru.Get(key)
	if ok && e.expired(c.now()) {
		c.lru.Remove(key)
		ok = false
	}
	if !ok {
		observability.Cache().OnCacheMiss(ctx, prefixOf(key))
		return nil, false, nil
	}
	observability.Cache().OnCacheHit(ctx, prefixOf(key))
	return e.data, true, nil
}

// Set stores data, evicting the least recently used entry when full.
func (c *LRUCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	e := entry{data: data}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.lru.Add(key, e)
	observability.Cache().OnCacheSet(ctx, prefixOf(key), len(data))
	return nil
}

// Delete removes key.
func (c *LRUCache) Delete(_ context.Context, key string) error {
	c.lru.Remove(key)
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *LRUCache) Len() int { return c.lru.Len() }

// Close empties the cache.
func (c *LRUCache) Close() error {
	c.lru.Purge()
	return nil
}

var _ Cache = (*LRUCache)(nil)

func prefixOf(key string) string {
	prefix, _, _ := strings.Cut(key, ":")
	return prefix
}
