package screen

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kupu-app/kupu/internal/store"
)

func TestNewServicesLoadsPersistedState(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryEntryRepo()
	keys := store.KeysFor("kupu")
	require.NoError(t, repo.Put(ctx, keys.Progress, []byte(`{"xp":40,"streak":2,"goalMinutes":30}`)))
	require.NoError(t, repo.Put(ctx, keys.Vocab, []byte(`{"kia-ora":{"id":"kia-ora","front":"kia ora","back":"hello"}}`)))
	require.NoError(t, repo.Put(ctx, keys.Queue, []byte(`["ep-1","ep-2"]`)))
	require.NoError(t, repo.Put(ctx, keys.Outside, []byte(`45`)))

	fixed := time.Date(2025, 3, 4, 8, 0, 0, 0, time.UTC)
	svc := NewServices(ctx, repo, keys, nil, func() time.Time { return fixed })

	assert.Equal(t, 40, svc.Progress.Record().XP)
	assert.Equal(t, 30, svc.Progress.Record().GoalMinutes)
	assert.True(t, svc.Vocab.IsSaved("kia-ora"))
	assert.Equal(t, []string{"ep-1", "ep-2"}, svc.Queue.List())
	assert.InDelta(t, 45, svc.Outside.Minutes(), 1e-9)
	assert.Equal(t, fixed, svc.Today())
	assert.Equal(t, fixed, svc.Progress.Now())
}

func TestServicesTodayDefaultsToWallClock(t *testing.T) {
	svc := &Services{}
	assert.WithinDuration(t, time.Now(), svc.Today(), time.Minute)
}
