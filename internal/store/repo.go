package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a key or snapshot does not exist.
var ErrNotFound = errors.New("store: not found")

// EntryRepo persists one opaque JSON blob per storage key.
type EntryRepo interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
}

// Snapshot is a point-in-time copy of one storage entry.
type Snapshot struct {
	ID        string
	Key       string
	Reason    string // e.g. "reset", "import"
	CreatedAt time.Time
	Data      []byte
}

// SnapshotRepo manages backups of storage entries.
type SnapshotRepo interface {
	// Save stores a new snapshot. An empty ID is filled with a new UUID.
	Save(ctx context.Context, snap *Snapshot) error

	// Get returns the snapshot with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (*Snapshot, error)

	// Latest returns the most recent snapshot for key, or nil if none exist.
	Latest(ctx context.Context, key string) (*Snapshot, error)

	// List returns snapshots for key, newest first. limit <= 0 means all.
	List(ctx context.Context, key string, limit int) ([]Snapshot, error)

	// Prune deletes all but the N most recent snapshots for key.
	Prune(ctx context.Context, key string, keep int) error
}
