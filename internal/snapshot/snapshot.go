// Package snapshot persists store snapshots outside the domain core.
// The domain never does I/O itself; the composition root registers a
// save here through the services' change hook.
package snapshot

import (
	"context"

	"streetkart/internal/repository"
)

// Store persists and recovers state snapshots.
type Store interface {
	// Save persists a snapshot, replacing the previous one.
	Save(ctx context.Context, snap *repository.Snapshot) error

	// Load returns the most recent snapshot, or nil when none exists.
	Load(ctx context.Context) (*repository.Snapshot, error)

	// Close releases resources held by the store.
	Close() error
}
