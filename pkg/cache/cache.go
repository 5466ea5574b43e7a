// Package cache stores rendered exports so repeated downloads of an
// unchanged analysis skip the rasterizer.
//
// Keys come from a [Keyer] and identify both the export kind and the state
// it was drawn from; any edit produces a new key, so entries never need to
// be invalidated explicitly. [NewLRUCache] bounds memory by entry count and
// [NewNullCache] disables caching.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the data for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer derives cache keys.
type Keyer interface {
	// RenderKey identifies an export of the given kind ("swot", "matrix")
	// drawn from the state identified by revision.
	RenderKey(kind, revision string) string
	// ContentKey identifies an export derived from raw document bytes.
	ContentKey(kind string, content []byte) string
}

// DefaultKeyer hashes key components into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// RenderKey implements Keyer.
func (DefaultKeyer) RenderKey(kind, revision string) string {
	return hashKey("render", kind, revision)
}

// ContentKey implements Keyer.
func (DefaultKeyer) ContentKey(kind string, content []byte) string {
	return hashKey("content", kind, Hash(content))
}
