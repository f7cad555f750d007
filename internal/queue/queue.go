// Package queue keeps the learner's watch queue: a set of media ids
// persisted as a JSON array in the order they were added.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"slices"

	"go.uber.org/zap"

	"github.com/kupu-app/kupu/internal/store"
)

// Store is the set of queued media ids.
type Store struct {
	repo store.EntryRepo
	key  string
	log  *zap.Logger
	ids  []string
}

// NewStore creates an empty Store. Call Load to read the persisted queue.
func NewStore(repo store.EntryRepo, key string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{repo: repo, key: key, log: log.With(zap.String("key", key))}
}

// Load reads the persisted queue. A missing or unreadable entry loads empty.
func (s *Store) Load(ctx context.Context) {
	s.ids = nil

	raw, err := s.repo.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log.Warn("read queue", zap.Error(err))
		}
		return
	}
	ids, err := Decode(raw)
	if err != nil {
		s.log.Warn("decode queue, starting empty", zap.Error(err))
		return
	}
	s.ids = ids
}

// Decode parses a stored queue, dropping empty and repeated ids.
func Decode(raw []byte) ([]string, error) {
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, err
	}
	return dedupe(ids), nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// IsQueued reports whether id is in the queue.
func (s *Store) IsQueued(id string) bool {
	return slices.Contains(s.ids, id)
}

// List returns the queued ids in the order they were added.
func (s *Store) List() []string {
	return slices.Clone(s.ids)
}

// Len returns the number of queued ids.
func (s *Store) Len() int {
	return len(s.ids)
}

// Add queues id. Adding a queued id leaves its position unchanged.
func (s *Store) Add(ctx context.Context, id string) {
	if id != "" && !s.IsQueued(id) {
		s.ids = append(s.ids, id)
	}
	s.persist(ctx)
}

// Remove drops id from the queue. Removing an absent id is a no-op.
func (s *Store) Remove(ctx context.Context, id string) {
	s.ids = slices.DeleteFunc(s.ids, func(q string) bool { return q == id })
	s.persist(ctx)
}

// Toggle adds id when absent and removes it when present. It reports
// whether id is queued afterwards.
func (s *Store) Toggle(ctx context.Context, id string) bool {
	if s.IsQueued(id) {
		s.Remove(ctx, id)
		return false
	}
	s.Add(ctx, id)
	return s.IsQueued(id)
}

// Clear empties the queue.
func (s *Store) Clear(ctx context.Context) {
	s.ids = nil
	s.persist(ctx)
}

// Replace swaps in ids wholesale, e.g. after an import.
func (s *Store) Replace(ctx context.Context, ids []string) {
	s.ids = dedupe(ids)
	s.persist(ctx)
}

func (s *Store) persist(ctx context.Context) {
	ids := s.ids
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		s.log.Warn("encode queue", zap.Error(err))
		return
	}
	if err := s.repo.Put(ctx, s.key, raw); err != nil {
		s.log.Warn("write queue", zap.Error(err))
	}
}
