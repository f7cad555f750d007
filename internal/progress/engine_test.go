package progress

import (
	"math"
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t.Add(10 * time.Hour)
}

func TestRecordAnswer_Scenario(t *testing.T) {
	r := Default()

	r = RecordAnswer(r, Answer{Correct: true, CardID: "c1", LessonID: "lessonA"}, day("2025-01-01"))
	if r.XP != 12 || r.TotalAnswered != 1 || r.TotalCorrect != 1 || r.Streak != 1 {
		t.Fatalf("day 1: got xp=%d answered=%d correct=%d streak=%d", r.XP, r.TotalAnswered, r.TotalCorrect, r.Streak)
	}
	if r.LearnedByCard["c1"] != 1 {
		t.Errorf("day 1: mastery = %d, want 1", r.LearnedByCard["c1"])
	}

	r = RecordAnswer(r, Answer{Correct: true, CardID: "c1", LessonID: "lessonA"}, day("2025-01-02"))
	if r.Streak != 2 || r.XP != 24 || r.LearnedByCard["c1"] != 2 {
		t.Fatalf("day 2: got streak=%d xp=%d mastery=%d", r.Streak, r.XP, r.LearnedByCard["c1"])
	}

	r = RecordAnswer(r, Answer{Correct: false, CardID: "c1", LessonID: "lessonA"}, day("2025-01-04"))
	if r.Streak != 1 || r.XP != 26 || r.LearnedByCard["c1"] != 0 {
		t.Fatalf("day 4: got streak=%d xp=%d mastery=%d", r.Streak, r.XP, r.LearnedByCard["c1"])
	}
	if *r.LastActiveDate != "2025-01-04" {
		t.Errorf("lastActiveDate = %q, want 2025-01-04", *r.LastActiveDate)
	}
	if len(r.History) != 3 {
		t.Errorf("history entries = %d, want 3", len(r.History))
	}
}

func TestRecordAnswer_SameDayTotals(t *testing.T) {
	now := day("2025-03-10")
	answers := []bool{true, false, true, true, false}

	r := Default()
	wantXP, wantCorrect := 0, 0
	for _, c := range answers {
		r = RecordAnswer(r, Answer{Correct: c}, now)
		wantXP += XPFor(c)
		if c {
			wantCorrect++
		}
	}

	if r.TotalAnswered != len(answers) {
		t.Errorf("totalAnswered = %d, want %d", r.TotalAnswered, len(answers))
	}
	if r.TotalCorrect != wantCorrect {
		t.Errorf("totalCorrect = %d, want %d", r.TotalCorrect, wantCorrect)
	}
	if len(r.History) != 1 {
		t.Fatalf("history entries = %d, want 1", len(r.History))
	}
	got := r.History[0]
	want := DayStat{Date: "2025-03-10", Answered: len(answers), Correct: wantCorrect, XP: wantXP}
	if got != want {
		t.Errorf("history[0] = %+v, want %+v", got, want)
	}
	if r.Streak != 1 {
		t.Errorf("streak = %d, want 1", r.Streak)
	}
}

func TestRecordAnswer_MasterySaturates(t *testing.T) {
	now := day("2025-02-01")
	r := Default()
	for i := 0; i < 5; i++ {
		r = RecordAnswer(r, Answer{Correct: true, CardID: "x"}, now)
	}
	if r.LearnedByCard["x"] != MaxCardMastery {
		t.Errorf("mastery = %d, want %d", r.LearnedByCard["x"], MaxCardMastery)
	}

	r = RecordAnswer(r, Answer{Correct: false, CardID: "x"}, now)
	if r.LearnedByCard["x"] != 0 {
		t.Errorf("mastery after miss = %d, want 0", r.LearnedByCard["x"])
	}
}

func TestRecordAnswer_NoCardLeavesMasteryAlone(t *testing.T) {
	r := RecordAnswer(Default(), Answer{Correct: true, LessonID: "l1"}, day("2025-02-01"))
	if len(r.LearnedByCard) != 0 || len(r.LessonProgress) != 0 {
		t.Errorf("expected no mastery or lesson changes, got %v %v", r.LearnedByCard, r.LessonProgress)
	}
}

func TestRecordAnswer_LessonProgress(t *testing.T) {
	now := day("2025-02-01")
	a := Answer{Correct: true, CardID: "c1", LessonID: "l1"}

	r := RecordAnswer(Default(), a, now)
	if got := r.LessonProgress["l1"]; got != (LessonProgress{Learned: 0, Total: 1}) {
		t.Fatalf("after first correct: %+v", got)
	}

	r = RecordAnswer(r, a, now)
	if got := r.LessonProgress["l1"]; got != (LessonProgress{Learned: 1, Total: 1}) {
		t.Fatalf("after crossing threshold: %+v", got)
	}

	r = RecordAnswer(r, a, now)
	if got := r.LessonProgress["l1"]; got != (LessonProgress{Learned: 1, Total: 1}) {
		t.Fatalf("after saturating: %+v", got)
	}

	r = RecordAnswer(r, Answer{CardID: "c1", LessonID: "l1"}, now)
	if got := r.LessonProgress["l1"]; got != (LessonProgress{Learned: 0, Total: 1}) {
		t.Fatalf("after miss: %+v", got)
	}

	// A card coming back from zero is counted again.
	r = RecordAnswer(r, a, now)
	if got := r.LessonProgress["l1"]; got.Total != 2 {
		t.Errorf("total after recovery = %d, want 2", got.Total)
	}

	// Cards that are only ever missed never count.
	r = RecordAnswer(r, Answer{CardID: "c2", LessonID: "l1"}, now)
	if got := r.LessonProgress["l1"]; got.Total != 2 {
		t.Errorf("total after miss on new card = %d, want 2", got.Total)
	}
}

func TestRecordAnswer_DoesNotMutateInput(t *testing.T) {
	r := RecordAnswer(Default(), Answer{Correct: true, CardID: "c1", LessonID: "l1"}, day("2025-02-01"))
	before := r.Clone()

	_ = RecordAnswer(r, Answer{Correct: true, CardID: "c1", LessonID: "l1"}, day("2025-02-01"))

	if r.History[0] != before.History[0] {
		t.Errorf("history mutated: %+v", r.History[0])
	}
	if r.LearnedByCard["c1"] != 1 {
		t.Errorf("learnedByCard mutated: %v", r.LearnedByCard)
	}
	if r.TotalAnswered != 1 {
		t.Errorf("totalAnswered mutated: %d", r.TotalAnswered)
	}
}

func TestRecordAnswer_ResetsWatchedTodayOnNewDay(t *testing.T) {
	r := RecordWatch(Default(), 300, day("2025-02-01"))
	r = RecordAnswer(r, Answer{Correct: true}, day("2025-02-02"))
	if r.WatchedTodaySec != 0 {
		t.Errorf("watchedTodaySec = %d, want 0", r.WatchedTodaySec)
	}

	r = RecordWatch(r, 60, day("2025-02-02"))
	r = RecordAnswer(r, Answer{Correct: true}, day("2025-02-02"))
	if r.WatchedTodaySec != 60 {
		t.Errorf("watchedTodaySec = %d, want 60", r.WatchedTodaySec)
	}
}

func TestRecordWatch_SameDay(t *testing.T) {
	now := day("2025-05-05")
	r := RecordWatch(Default(), 90, now)
	r = RecordWatch(r, 30, now)

	if r.WatchedTodaySec != 120 {
		t.Errorf("watchedTodaySec = %d, want 120", r.WatchedTodaySec)
	}
	if len(r.WatchHistory) != 1 {
		t.Fatalf("watchHistory entries = %d, want 1", len(r.WatchHistory))
	}
	if r.WatchHistory[0] != (WatchDay{Date: "2025-05-05", Seconds: 120}) {
		t.Errorf("watchHistory[0] = %+v", r.WatchHistory[0])
	}
	if r.XP != 0 || r.TotalAnswered != 0 || len(r.History) != 0 {
		t.Errorf("watching changed answer stats: %+v", r)
	}
	if r.Streak != 1 {
		t.Errorf("streak = %d, want 1", r.Streak)
	}
}

func TestRecordWatch_FloorsSeconds(t *testing.T) {
	r := RecordWatch(Default(), 12.9, day("2025-05-05"))
	if r.WatchedTodaySec != 12 {
		t.Errorf("watchedTodaySec = %d, want 12", r.WatchedTodaySec)
	}
}

func TestRecordWatch_InvalidIsNoop(t *testing.T) {
	base := RecordWatch(Default(), 10, day("2025-05-05"))
	for _, s := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		got := RecordWatch(base, s, day("2025-05-06"))
		if got.WatchedTodaySec != 10 || got.Streak != 1 || *got.LastActiveDate != "2025-05-05" {
			t.Errorf("RecordWatch(%v) changed the record: %+v", s, got)
		}
	}
}

func TestRecordWatch_NewDayStartsFresh(t *testing.T) {
	r := RecordWatch(Default(), 100, day("2025-05-05"))
	r = RecordWatch(r, 20, day("2025-05-06"))
	if r.WatchedTodaySec != 20 {
		t.Errorf("watchedTodaySec = %d, want 20", r.WatchedTodaySec)
	}
	if len(r.WatchHistory) != 2 {
		t.Errorf("watchHistory entries = %d, want 2", len(r.WatchHistory))
	}
	if r.Streak != 2 {
		t.Errorf("streak = %d, want 2", r.Streak)
	}
}

func TestSetGoalMinutes(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{500, 180},
		{1, 5},
		{30, 30},
		{45.9, 45},
		{5, 5},
		{180, 180},
		{-10, 5},
		{math.Inf(1), 180},
		{math.Inf(-1), 5},
	}
	for _, tt := range tests {
		got := SetGoalMinutes(Default(), tt.in).GoalMinutes
		if got != tt.want {
			t.Errorf("SetGoalMinutes(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}

	r := SetGoalMinutes(Default(), 60)
	if got := SetGoalMinutes(r, math.NaN()).GoalMinutes; got != 60 {
		t.Errorf("SetGoalMinutes(NaN) = %d, want 60", got)
	}
}

func TestReset(t *testing.T) {
	r := RecordAnswer(Default(), Answer{Correct: true, CardID: "c"}, day("2025-01-01"))
	r = RecordWatch(r, 600, day("2025-01-01"))
	r = Reset()

	if r.XP != 0 || r.Streak != 0 || r.TotalAnswered != 0 || r.LastActiveDate != nil {
		t.Errorf("reset left state behind: %+v", r)
	}
	if r.GoalMinutes != DefaultGoalMinutes {
		t.Errorf("goalMinutes = %d, want %d", r.GoalMinutes, DefaultGoalMinutes)
	}
	if len(r.History) != 0 || len(r.WatchHistory) != 0 {
		t.Errorf("reset kept history")
	}
}
