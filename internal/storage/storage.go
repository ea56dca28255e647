// Package storage persists the financial state as a single opaque
// snapshot. The in-memory state is always authoritative; the stored copy
// is eventually consistent and may lag by one write.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrNoSnapshot is returned by Load when nothing has been stored yet.
	ErrNoSnapshot = errors.New("no snapshot has been stored yet")

	// ErrStorage hides low-level driver errors from callers.
	ErrStorage = errors.New("the snapshot storage is unavailable")
)

// Snapshots stores and retrieves the serialized state. All operations are
// idempotent; Save always overwrites the whole snapshot.
type Snapshots interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Clear(ctx context.Context) error
}

// Pinger is implemented by backends that can check their own health.
type Pinger interface {
	Ping(ctx context.Context) error
}
