// Package backup snapshots, exports, and imports a learner's stored data.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/kupu-app/kupu/internal/progress"
	"github.com/kupu-app/kupu/internal/queue"
	"github.com/kupu-app/kupu/internal/store"
	"github.com/kupu-app/kupu/internal/vocab"
)

// BundleVersion is the export format version.
const BundleVersion = 1

// Bundle is the export file format.
type Bundle struct {
	Version        int                   `json:"version"`
	ExportedAt     string                `json:"exportedAt,omitempty"`
	Progress       json.RawMessage       `json:"progress"`
	Vocab          map[string]vocab.Card `json:"vocab"`
	Queue          []string              `json:"queue"`
	OutsideMinutes float64               `json:"outsideMinutes"`
}

// Stores are the live stores a Service reads from and writes to.
type Stores struct {
	Progress *progress.Store
	Vocab    *vocab.Store
	Queue    *queue.Store
	Outside  *progress.OutsideStore
}

// Service manages snapshots and import/export for one namespace.
type Service struct {
	entries   store.EntryRepo
	snapshots store.SnapshotRepo
	keys      store.Keys
	stores    Stores
	keep      int
	log       *zap.Logger
}

// NewService creates a Service. keep is how many snapshots are retained
// per storage key.
func NewService(entries store.EntryRepo, snapshots store.SnapshotRepo, keys store.Keys, stores Stores, keep int, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		entries:   entries,
		snapshots: snapshots,
		keys:      keys,
		stores:    stores,
		keep:      max(1, keep),
		log:       log,
	}
}

// Snapshot copies the stored value of each key into a new snapshot tagged
// with reason. Keys with no stored value are skipped. It returns the
// snapshots written.
func (s *Service) Snapshot(ctx context.Context, reason string, keys ...string) ([]store.Snapshot, error) {
	if len(keys) == 0 {
		keys = s.keys.All()
	}
	var out []store.Snapshot
	for _, key := range keys {
		data, err := s.entries.Get(ctx, key)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return out, fmt.Errorf("read %s: %w", key, err)
		}
		snap := &store.Snapshot{Key: key, Reason: reason, Data: data}
		if err := s.snapshots.Save(ctx, snap); err != nil {
			return out, fmt.Errorf("snapshot %s: %w", key, err)
		}
		if err := s.snapshots.Prune(ctx, key, s.keep); err != nil {
			s.log.Warn("prune snapshots", zap.String("key", key), zap.Error(err))
		}
		out = append(out, *snap)
	}
	return out, nil
}

// List returns snapshots for every key, newest first.
func (s *Service) List(ctx context.Context) ([]store.Snapshot, error) {
	var all []store.Snapshot
	for _, key := range s.keys.All() {
		snaps, err := s.snapshots.List(ctx, key, 0)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", key, err)
		}
		all = append(all, snaps...)
	}
	slices.SortStableFunc(all, func(a, b store.Snapshot) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return all, nil
}

// Restore writes snapshot id back to its key and reloads the matching store.
func (s *Service) Restore(ctx context.Context, id string) (*store.Snapshot, error) {
	snap, err := s.snapshots.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	if err := s.entries.Put(ctx, snap.Key, snap.Data); err != nil {
		return nil, fmt.Errorf("restore %s: %w", snap.Key, err)
	}
	s.reload(ctx, snap.Key)
	s.log.Info("snapshot restored", zap.String("id", snap.ID), zap.String("key", snap.Key))
	return snap, nil
}

// RestoreLatest restores the most recent snapshot of every key that has
// one. It returns store.ErrNotFound when there are no snapshots at all.
func (s *Service) RestoreLatest(ctx context.Context) ([]store.Snapshot, error) {
	var restored []store.Snapshot
	for _, key := range s.keys.All() {
		snap, err := s.snapshots.Latest(ctx, key)
		if err != nil {
			return restored, fmt.Errorf("latest %s: %w", key, err)
		}
		if snap == nil {
			continue
		}
		if _, err := s.Restore(ctx, snap.ID); err != nil {
			return restored, err
		}
		restored = append(restored, *snap)
	}
	if len(restored) == 0 {
		return nil, fmt.Errorf("no backups: %w", store.ErrNotFound)
	}
	return restored, nil
}

// ResetProgress snapshots the progress record and then resets it.
func (s *Service) ResetProgress(ctx context.Context) (progress.Record, error) {
	if _, err := s.Snapshot(ctx, "reset", s.keys.Progress); err != nil {
		return s.stores.Progress.Record(), err
	}
	return s.stores.Progress.Reset(ctx), nil
}

// Export captures the current state of every store.
func (s *Service) Export(now time.Time) (*Bundle, error) {
	rec, err := json.Marshal(s.stores.Progress.Record())
	if err != nil {
		return nil, fmt.Errorf("encode progress: %w", err)
	}
	q := s.stores.Queue.List()
	if q == nil {
		q = []string{}
	}
	return &Bundle{
		Version:        BundleVersion,
		ExportedAt:     now.UTC().Format(time.RFC3339),
		Progress:       rec,
		Vocab:          s.stores.Vocab.Cards(),
		Queue:          q,
		OutsideMinutes: s.stores.Outside.Minutes(),
	}, nil
}

// Import validates raw as a bundle, snapshots the current state, and then
// replaces every store with the bundle's contents.
func (s *Service) Import(ctx context.Context, raw []byte) (*Bundle, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}
	var b Bundle
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBundle, err)
	}
	rec, err := progress.Decode(b.Progress)
	if err != nil {
		return nil, fmt.Errorf("%w: progress: %v", ErrInvalidBundle, err)
	}

	if _, err := s.Snapshot(ctx, "import"); err != nil {
		return nil, err
	}

	s.stores.Progress.Replace(ctx, rec)
	s.stores.Vocab.Replace(ctx, b.Vocab)
	s.stores.Queue.Replace(ctx, b.Queue)
	s.stores.Outside.Set(ctx, b.OutsideMinutes)
	s.log.Info("bundle imported",
		zap.Int("vocab", len(b.Vocab)),
		zap.Int("queue", len(b.Queue)))
	return &b, nil
}

func (s *Service) reload(ctx context.Context, key string) {
	switch key {
	case s.keys.Progress:
		s.stores.Progress.Load(ctx)
	case s.keys.Vocab:
		s.stores.Vocab.Load(ctx)
	case s.keys.Queue:
		s.stores.Queue.Load(ctx)
	case s.keys.Outside:
		s.stores.Outside.Load(ctx)
	}
}
