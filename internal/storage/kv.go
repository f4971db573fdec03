// Package storage implements the local key-value persistence layer that state
// snapshots are mirrored to. Drivers are interchangeable: sqlite is the
// on-device default, redis suits shared development setups, and memory keeps
// everything ephemeral.
package storage

import (
	"context"
	"errors"
)

// ErrUnavailable is returned by drivers whose backing store cannot be reached.
// Callers treat it like any other storage error: state stays in memory only.
var ErrUnavailable = errors.New("storage: backend unavailable")

// KV is the key-value storage contract snapshots are written through.
// Writes are durable per key only; there is no transaction across keys.
type KV interface {
	// Get returns the blob stored under key. The second return value is
	// false when the key is absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}
