package cache

import (
	"context"
	"time"
)

// Cache is the contract for the cache layer. Implementations can be swapped
// (Redis in production, Noop when no cache is configured).
type Cache interface {
	// Get reads a key and unmarshals it into dest.
	// Returns (found, error); on a miss dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}

// Noop is a Cache that stores nothing. Every Get is a miss.
type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (n *Noop) Get(_ context.Context, _ string, _ interface{}) (bool, error) { return false, nil }

func (n *Noop) Set(_ context.Context, _ string, _ interface{}, _ time.Duration) error { return nil }

func (n *Noop) Delete(_ context.Context, _ ...string) error { return nil }

func (n *Noop) Ping(_ context.Context) error { return nil }
