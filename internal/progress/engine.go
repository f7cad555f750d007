package progress

import (
	"math"
	"time"
)

// XP awarded per answer.
const (
	XPPerAttempt = 2
	XPPerCorrect = 10
)

// Answer describes one flashcard attempt. CardID and LessonID are optional.
type Answer struct {
	Correct  bool
	CardID   string
	LessonID string
}

// XPFor returns the XP an answer earns.
func XPFor(correct bool) int {
	if correct {
		return XPPerCorrect + XPPerAttempt
	}
	return XPPerAttempt
}

// RecordAnswer returns the record after one answered flashcard at now.
//
// Only the last history entry is ever compared against today. A record
// whose history was written out of order keeps that order and may gain a
// second entry for the same date.
func RecordAnswer(r Record, a Answer, now time.Time) Record {
	today := DayKey(now)
	next := r.Clone()

	next.Streak = AdvanceStreak(r, today)
	if !r.IsActiveOn(today) {
		next.WatchedTodaySec = 0
	}

	gained := XPFor(a.Correct)
	next.XP += gained

	correct := 0
	if a.Correct {
		correct = 1
	}
	if last := len(next.History) - 1; last >= 0 && next.History[last].Date == today {
		next.History[last].Answered++
		next.History[last].Correct += correct
		next.History[last].XP += gained
	} else {
		next.History = append(next.History, DayStat{Date: today, Answered: 1, Correct: correct, XP: gained})
	}

	if a.CardID != "" {
		prior := r.LearnedByCard[a.CardID]
		mastery := 0
		if a.Correct {
			mastery = min(prior+1, MaxCardMastery)
		}
		next.LearnedByCard[a.CardID] = mastery

		if a.LessonID != "" {
			next.LessonProgress[a.LessonID] = updateLesson(next.LessonProgress[a.LessonID], prior, mastery)
		}
	}

	next.TotalAnswered++
	next.TotalCorrect += correct
	stamp := now.UTC().Format(time.RFC3339)
	next.LastUpdated = &stamp
	next.LastActiveDate = &today
	return next
}

// updateLesson moves the learned count across the LearnedThreshold boundary.
// Total grows when a card goes from zero mastery to non-zero, which counts
// a card again after every reset and never counts cards only missed.
func updateLesson(lp LessonProgress, prior, mastery int) LessonProgress {
	switch {
	case prior < LearnedThreshold && mastery >= LearnedThreshold:
		lp.Learned++
	case prior >= LearnedThreshold && mastery < LearnedThreshold:
		lp.Learned = max(0, lp.Learned-1)
	}
	if prior == 0 && mastery != 0 {
		lp.Total++
	}
	return lp
}

// RecordWatch returns the record after watching seconds of media at now.
// Non-finite or non-positive durations leave the record unchanged.
func RecordWatch(r Record, seconds float64, now time.Time) Record {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
		return r
	}
	add := int(math.Floor(seconds))
	today := DayKey(now)
	next := r.Clone()

	next.Streak = AdvanceStreak(r, today)
	base := 0
	if r.IsActiveOn(today) {
		base = r.WatchedTodaySec
	}
	next.WatchedTodaySec = base + add

	if last := len(next.WatchHistory) - 1; last >= 0 && next.WatchHistory[last].Date == today {
		next.WatchHistory[last].Seconds += add
	} else {
		next.WatchHistory = append(next.WatchHistory, WatchDay{Date: today, Seconds: add})
	}

	stamp := now.UTC().Format(time.RFC3339)
	next.LastUpdated = &stamp
	next.LastActiveDate = &today
	return next
}

// SetGoalMinutes returns the record with its daily goal clamped to
// [MinGoalMinutes, MaxGoalMinutes].
func SetGoalMinutes(r Record, minutes float64) Record {
	if math.IsNaN(minutes) {
		return r
	}
	next := r.Clone()
	switch {
	case math.IsInf(minutes, 1) || minutes > MaxGoalMinutes:
		next.GoalMinutes = MaxGoalMinutes
	case math.IsInf(minutes, -1) || minutes < MinGoalMinutes:
		next.GoalMinutes = MinGoalMinutes
	default:
		next.GoalMinutes = clampGoal(int(math.Floor(minutes)))
	}
	return next
}

// Reset returns a fresh default record.
func Reset() Record {
	return Default()
}
