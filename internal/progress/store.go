package progress

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/kupu-app/kupu/internal/store"
)

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the wall clock used to decide "today".
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Store holds the in-memory progress record and persists it after every
// mutation. Persistence failures are logged and otherwise ignored: the
// in-memory record stays authoritative for the life of the process.
type Store struct {
	repo store.EntryRepo
	key  string
	log  *zap.Logger
	now  func() time.Time
	rec  Record
}

// NewStore creates a Store holding the default record. Call Load to read
// the persisted record.
func NewStore(repo store.EntryRepo, key string, log *zap.Logger, opts ...Option) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		repo: repo,
		key:  key,
		log:  log.With(zap.String("key", key)),
		now:  time.Now,
		rec:  Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted record, falling back to the default record when
// it is missing or unreadable.
func (s *Store) Load(ctx context.Context) Record {
	s.rec = Default()

	raw, err := s.repo.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log.Warn("read progress", zap.Error(err))
		}
		return s.Record()
	}

	rec, skipped, err := decodeRecord(raw)
	if err != nil {
		s.log.Warn("decode progress, using defaults", zap.Error(err))
		return s.Record()
	}
	if len(skipped) > 0 {
		s.log.Warn("dropped malformed progress fields", zap.Strings("fields", skipped))
	}
	s.rec = rec
	return s.Record()
}

// Record returns a copy of the current record.
func (s *Store) Record() Record {
	return s.rec.Clone()
}

// Now returns the store's current time.
func (s *Store) Now() time.Time {
	return s.now()
}

// RecordAnswer applies an answer and persists the result.
func (s *Store) RecordAnswer(ctx context.Context, a Answer) Record {
	return s.apply(ctx, RecordAnswer(s.rec, a, s.now()))
}

// RecordWatch adds watched seconds and persists the result.
func (s *Store) RecordWatch(ctx context.Context, seconds float64) Record {
	return s.apply(ctx, RecordWatch(s.rec, seconds, s.now()))
}

// SetGoalMinutes changes the daily goal and persists the result.
func (s *Store) SetGoalMinutes(ctx context.Context, minutes float64) Record {
	return s.apply(ctx, SetGoalMinutes(s.rec, minutes))
}

// Reset wipes all progress and persists the default record.
func (s *Store) Reset(ctx context.Context) Record {
	return s.apply(ctx, Reset())
}

// Replace swaps in rec wholesale, e.g. after an import or restore.
func (s *Store) Replace(ctx context.Context, rec Record) Record {
	return s.apply(ctx, rec.Normalize())
}

// Save writes the current record.
func (s *Store) Save(ctx context.Context) {
	raw, err := json.Marshal(s.rec)
	if err != nil {
		s.log.Warn("encode progress", zap.Error(err))
		return
	}
	if err := s.repo.Put(ctx, s.key, raw); err != nil {
		s.log.Warn("write progress", zap.Error(err))
	}
}

func (s *Store) apply(ctx context.Context, next Record) Record {
	s.rec = next
	s.Save(ctx)
	return s.Record()
}
