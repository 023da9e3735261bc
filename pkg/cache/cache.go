// Package cache provides a small key/value cache for rendered treemap
// artifacts.
//
// The CLI stores rendered SVG, PNG, PDF and JSON output on disk so that
// re-rendering an unchanged directory at the same size skips the render
// stage. Keys are built by a [Keyer] from a content hash of the visible
// blocks plus the render options, so any change to the tree or its layout
// produces a different key.
//
// Two implementations are provided:
//
//   - [FileCache]: one file per entry under a cache directory
//   - [NullCache]: caching disabled
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"
)

// TTLArtifact is how long rendered output stays valid by default.
const TTLArtifact = 7 * 24 * time.Hour

var (
	// ErrCacheMiss is returned by Fetch when key is absent or expired.
	ErrCacheMiss = errors.New("cache miss")

	// ErrEmptyKey is returned for an empty key.
	ErrEmptyKey = errors.New("empty cache key")
)

// Cache is the storage interface used by the render pipeline.
//
// Get reports a miss with (nil, false, nil); an error is reserved for
// storage failures. A ttl of zero never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Fetch is Get with the miss folded into the error.
func Fetch(ctx context.Context, c Cache, key string) ([]byte, error) {
	data, hit, err := c.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !hit {
		return nil, ErrCacheMiss
	}
	return data, nil
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// NullCache stores nothing; every Get misses.
type NullCache struct{}

// NewNullCache returns a cache that disables caching.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }

var _ Cache = NullCache{}
