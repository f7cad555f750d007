package progress

import (
	"context"
	"encoding/json"
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/kupu-app/kupu/internal/store"
)

// OutsideStore persists minutes of study logged outside the app as a bare
// number under its own key.
type OutsideStore struct {
	repo    store.EntryRepo
	key     string
	log     *zap.Logger
	minutes float64
}

// NewOutsideStore creates an OutsideStore holding zero minutes.
func NewOutsideStore(repo store.EntryRepo, key string, log *zap.Logger) *OutsideStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &OutsideStore{repo: repo, key: key, log: log.With(zap.String("key", key))}
}

// Load reads the persisted counter. Missing or invalid values load as zero.
func (o *OutsideStore) Load(ctx context.Context) float64 {
	o.minutes = 0
	raw, err := o.repo.Get(ctx, o.key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			o.log.Warn("read outside minutes", zap.Error(err))
		}
		return 0
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil || !validMinutes(v) {
		o.log.Warn("decode outside minutes, using zero", zap.ByteString("raw", raw))
		return 0
	}
	o.minutes = v
	return v
}

// Minutes returns the current total.
func (o *OutsideStore) Minutes() float64 {
	return o.minutes
}

// Add adds delta minutes; the total never drops below zero.
func (o *OutsideStore) Add(ctx context.Context, delta float64) float64 {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return o.minutes
	}
	return o.Set(ctx, o.minutes+delta)
}

// Set replaces the total. Invalid values are ignored, negatives become zero.
func (o *OutsideStore) Set(ctx context.Context, minutes float64) float64 {
	if math.IsNaN(minutes) || math.IsInf(minutes, 0) {
		return o.minutes
	}
	o.minutes = math.Max(0, minutes)
	o.save(ctx)
	return o.minutes
}

// Clear resets the total to zero.
func (o *OutsideStore) Clear(ctx context.Context) {
	o.Set(ctx, 0)
}

func (o *OutsideStore) save(ctx context.Context) {
	raw, err := json.Marshal(o.minutes)
	if err != nil {
		o.log.Warn("encode outside minutes", zap.Error(err))
		return
	}
	if err := o.repo.Put(ctx, o.key, raw); err != nil {
		o.log.Warn("write outside minutes", zap.Error(err))
	}
}

func validMinutes(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
