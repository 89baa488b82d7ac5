// Package cache provides the render-result cache used by the CLI and the
// HTTP API.
//
// Rendering a visualization for the same graph is deterministic, so results
// are cached keyed by a hash of the graph serialization plus the render
// options. Three backends implement the [Cache] interface:
//
//   - [FileCache]: directory-backed, for CLI usage (XDG cache dir)
//   - [RedisCache]: Redis-backed, for multi-instance server deployments
//   - [Nop]: discards everything, for tests and --no-cache
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with optional TTL.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Nop returns a cache that stores nothing: every Get misses and every
// write succeeds silently. It backs --no-cache and keeps tests hermetic.
func Nop() Cache { return nopCache{} }

type nopCache struct{}

func (nopCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (nopCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (nopCache) Delete(context.Context, string) error                     { return nil }
func (nopCache) Close() error                                             { return nil }
