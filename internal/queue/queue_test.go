package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kupu-app/kupu/internal/store"
)

const key = "kupu-queue-v1"

func TestStore_AddRemove(t *testing.T) {
	ctx := context.Background()
	s := NewStore(store.NewMemoryEntryRepo(), key, zap.NewNop())
	s.Load(ctx)

	s.Add(ctx, "ep-2")
	s.Add(ctx, "ep-1")
	s.Add(ctx, "ep-2")
	assert.Equal(t, []string{"ep-2", "ep-1"}, s.List())
	assert.True(t, s.IsQueued("ep-1"))

	s.Remove(ctx, "missing")
	assert.Equal(t, 2, s.Len())

	s.Remove(ctx, "ep-2")
	assert.Equal(t, []string{"ep-1"}, s.List())
}

func TestStore_Toggle(t *testing.T) {
	ctx := context.Background()
	s := NewStore(store.NewMemoryEntryRepo(), key, zap.NewNop())

	assert.True(t, s.Toggle(ctx, "m"))
	assert.False(t, s.Toggle(ctx, "m"))
	assert.False(t, s.IsQueued("m"))
}

func TestStore_PersistsAsArray(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryEntryRepo()
	s := NewStore(repo, key, zap.NewNop())
	s.Add(ctx, "a")
	s.Add(ctx, "b")

	raw, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(raw))

	s.Clear(ctx)
	raw, err = repo.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestStore_Reload(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryEntryRepo()
	require.NoError(t, repo.Put(ctx, key, []byte(`["x","y","x",""]`)))

	s := NewStore(repo, key, zap.NewNop())
	s.Load(ctx)
	assert.Equal(t, []string{"x", "y"}, s.List())
}

func TestStore_LoadFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryEntryRepo()
	require.NoError(t, repo.Put(ctx, key, []byte(`{"a":true}`)))

	s := NewStore(repo, key, zap.NewNop())
	s.Load(ctx)
	assert.Zero(t, s.Len())

	repo.Err = errors.New("nope")
	s.Load(ctx)
	assert.Zero(t, s.Len())
}

func TestStore_ListIsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewStore(store.NewMemoryEntryRepo(), key, zap.NewNop())
	s.Add(ctx, "a")

	ids := s.List()
	ids[0] = "changed"
	assert.Equal(t, []string{"a"}, s.List())
}
