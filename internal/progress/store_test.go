package progress

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kupu-app/kupu/internal/store"
)

const testKey = "kupu-progress-v1"

func fixedClock(date string) func() time.Time {
	return func() time.Time { return day(date) }
}

func TestStore_LoadMissingReturnsDefault(t *testing.T) {
	s := NewStore(store.NewMemoryEntryRepo(), testKey, zap.NewNop())
	got := s.Load(context.Background())
	assert.Equal(t, Default(), got)
}

func TestStore_LoadCorruptReturnsDefault(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryEntryRepo()
	require.NoError(t, repo.Put(ctx, testKey, []byte("{not json")))

	s := NewStore(repo, testKey, zap.NewNop())
	assert.Equal(t, Default(), s.Load(ctx))
}

func TestStore_LoadReadFailureReturnsDefault(t *testing.T) {
	repo := store.NewMemoryEntryRepo()
	repo.Err = errors.New("disk on fire")

	s := NewStore(repo, testKey, zap.NewNop())
	assert.Equal(t, Default(), s.Load(context.Background()))
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryEntryRepo()

	s := NewStore(repo, testKey, zap.NewNop(), WithClock(fixedClock("2025-01-01")))
	s.Load(ctx)
	s.RecordAnswer(ctx, Answer{Correct: true, CardID: "c1", LessonID: "l1"})
	s.RecordWatch(ctx, 75)
	want := s.SetGoalMinutes(ctx, 45)

	reloaded := NewStore(repo, testKey, zap.NewNop())
	got := reloaded.Load(ctx)
	assert.Equal(t, want, got)
	assert.Equal(t, 45, got.GoalMinutes)
	assert.Equal(t, 75, got.WatchedTodaySec)
}

func TestStore_BackfillsOlderSchema(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryEntryRepo()
	old := `{"totalAnswered":4,"totalCorrect":3,"xp":38,"streak":2,` +
		`"lastActiveDate":"2024-11-02","history":[{"date":"2024-11-02","answered":4,"correct":3,"xp":38}],` +
		`"learnedByCard":{"a":2},"someFutureField":true}`
	require.NoError(t, repo.Put(ctx, testKey, []byte(old)))

	got := NewStore(repo, testKey, zap.NewNop()).Load(ctx)

	assert.Equal(t, 4, got.TotalAnswered)
	assert.Equal(t, 38, got.XP)
	assert.Equal(t, DefaultGoalMinutes, got.GoalMinutes)
	assert.NotNil(t, got.WatchHistory)
	assert.Empty(t, got.WatchHistory)
	assert.NotNil(t, got.LessonProgress)
	require.NotNil(t, got.LastActiveDate)
	assert.Equal(t, "2024-11-02", *got.LastActiveDate)
	assert.Nil(t, got.LastUpdated)
}

func TestStore_MalformedFieldKeepsTheRest(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryEntryRepo()
	stored := `{"totalAnswered":40,"totalCorrect":30,"xp":500,"streak":3,` +
		`"watchedTodaySec":"12","lastActiveDate":20250101,"goalMinutes":30.7,` +
		`"history":[{"date":"2025-01-01","answered":40,"correct":30,"xp":500},{"date":7}],` +
		`"watchHistory":"none","learnedByCard":{"a":2,"b":"x"},` +
		`"lessonProgress":{"greetings":{"learned":1,"total":2},"numbers":[]}}`
	require.NoError(t, repo.Put(ctx, testKey, []byte(stored)))

	s := NewStore(repo, testKey, zap.NewNop(), WithClock(fixedClock("2025-01-02")))
	got := s.Load(ctx)

	assert.Equal(t, 40, got.TotalAnswered)
	assert.Equal(t, 30, got.TotalCorrect)
	assert.Equal(t, 500, got.XP)
	assert.Equal(t, 3, got.Streak)
	assert.Equal(t, 30, got.GoalMinutes)
	assert.Equal(t, 0, got.WatchedTodaySec)
	assert.Nil(t, got.LastActiveDate)
	assert.Equal(t, []DayStat{{Date: "2025-01-01", Answered: 40, Correct: 30, XP: 500}}, got.History)
	assert.Equal(t, []WatchDay{}, got.WatchHistory)
	assert.Equal(t, map[string]int{"a": 2}, got.LearnedByCard)
	assert.Equal(t, map[string]LessonProgress{"greetings": {Learned: 1, Total: 2}}, got.LessonProgress)

	// The next mutation builds on the kept progress rather than a blank record.
	s.RecordAnswer(ctx, Answer{Correct: true})
	reloaded := NewStore(repo, testKey, zap.NewNop()).Load(ctx)
	assert.Equal(t, 512, reloaded.XP)
	assert.Equal(t, 41, reloaded.TotalAnswered)
}

func TestDecode_ReportsDroppedFields(t *testing.T) {
	_, skipped, err := decodeRecord([]byte(`{"xp":"lots","streak":null,"history":{},"lastUpdated":false}`))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"xp", "streak", "history", "lastUpdated"}, skipped)

	_, err = Decode([]byte(`[1,2,3]`))
	assert.Error(t, err)
}

func TestStore_ClampsStoredGoal(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryEntryRepo()
	require.NoError(t, repo.Put(ctx, testKey, []byte(`{"goalMinutes":900}`)))

	got := NewStore(repo, testKey, zap.NewNop()).Load(ctx)
	assert.Equal(t, MaxGoalMinutes, got.GoalMinutes)
}

func TestStore_WriteFailureKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryEntryRepo()
	s := NewStore(repo, testKey, zap.NewNop(), WithClock(fixedClock("2025-01-01")))
	s.Load(ctx)

	repo.Err = errors.New("quota exceeded")
	got := s.RecordAnswer(ctx, Answer{Correct: true})

	assert.Equal(t, 12, got.XP)
	assert.Equal(t, 12, s.Record().XP)

	repo.Err = nil
	_, err := repo.Get(ctx, testKey)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_ResetPersists(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryEntryRepo()
	s := NewStore(repo, testKey, zap.NewNop(), WithClock(fixedClock("2025-01-01")))
	s.RecordAnswer(ctx, Answer{Correct: true})
	s.Reset(ctx)

	raw, err := repo.Get(ctx, testKey)
	require.NoError(t, err)
	var rec Record
	require.NoError(t, json.Unmarshal(raw, &rec))
	assert.Equal(t, 0, rec.XP)
	assert.Equal(t, DefaultGoalMinutes, rec.GoalMinutes)
}

func TestStore_RecordReturnsCopy(t *testing.T) {
	s := NewStore(store.NewMemoryEntryRepo(), testKey, nil, WithClock(fixedClock("2025-01-01")))
	s.RecordAnswer(context.Background(), Answer{Correct: true, CardID: "c"})

	rec := s.Record()
	rec.LearnedByCard["c"] = 99
	assert.Equal(t, 1, s.Record().LearnedByCard["c"])
}

func TestOutsideStore(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryEntryRepo()
	o := NewOutsideStore(repo, "kupu-outside-minutes", zap.NewNop())

	assert.Equal(t, 0.0, o.Load(ctx))
	assert.Equal(t, 30.0, o.Add(ctx, 30))
	assert.Equal(t, 10.0, o.Add(ctx, -20))
	assert.Equal(t, 0.0, o.Add(ctx, -50))
	assert.Equal(t, 90.0, o.Set(ctx, 90))

	reloaded := NewOutsideStore(repo, "kupu-outside-minutes", zap.NewNop())
	assert.Equal(t, 90.0, reloaded.Load(ctx))

	reloaded.Clear(ctx)
	assert.Equal(t, 0.0, reloaded.Minutes())
}

func TestOutsideStore_InvalidStoredValue(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryEntryRepo()
	for _, raw := range []string{`"abc"`, `-4`, `{}`} {
		require.NoError(t, repo.Put(ctx, "k", []byte(raw)))
		o := NewOutsideStore(repo, "k", zap.NewNop())
		assert.Equal(t, 0.0, o.Load(ctx), raw)
	}
}
