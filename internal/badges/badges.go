// Package badges derives achievement badges from a progress record. Badges
// are never stored; a badge is unlocked exactly while its predicate holds.
package badges

import "github.com/kupu-app/kupu/internal/progress"

// ID identifies a badge.
type ID string

const (
	Streak3   ID = "streak-3"
	Streak7   ID = "streak-7"
	Streak30  ID = "streak-30"
	Answers50 ID = "answers-50"
	Correct50 ID = "correct-50"
	XP1000    ID = "xp-1000"
)

// Kind groups badges for display.
type Kind string

const (
	KindStreak   Kind = "streak"
	KindPractice Kind = "practice"
	KindXP       Kind = "xp"
)

// Icon returns the display icon for the kind.
func (k Kind) Icon() string {
	switch k {
	case KindStreak:
		return "🔥"
	case KindPractice:
		return "📚"
	case KindXP:
		return "⭐"
	default:
		return "✦"
	}
}

// Badge is one achievement and whether the record has earned it.
type Badge struct {
	ID       ID
	Kind     Kind
	Label    string
	Unlocked bool
}

type rule struct {
	id    ID
	kind  Kind
	label string
	test  func(progress.Record) bool
}

var rules = []rule{
	{Streak3, KindStreak, "3-day streak", func(r progress.Record) bool { return r.Streak >= 3 }},
	{Streak7, KindStreak, "7-day streak", func(r progress.Record) bool { return r.Streak >= 7 }},
	{Streak30, KindStreak, "Monthly streak", func(r progress.Record) bool { return r.Streak >= 30 }},
	{Answers50, KindPractice, "50 answers", func(r progress.Record) bool { return r.TotalAnswered >= 50 }},
	{Correct50, KindPractice, "50 correct", func(r progress.Record) bool { return r.TotalCorrect >= 50 }},
	{XP1000, KindXP, "1000 XP", func(r progress.Record) bool { return r.XP >= 1000 }},
}

// All returns every badge in display order with its unlocked state.
func All(r progress.Record) []Badge {
	out := make([]Badge, 0, len(rules))
	for _, b := range rules {
		out = append(out, Badge{ID: b.id, Kind: b.kind, Label: b.label, Unlocked: b.test(r)})
	}
	return out
}

// Unlocked returns only the earned badges.
func Unlocked(r progress.Record) []Badge {
	var out []Badge
	for _, b := range All(r) {
		if b.Unlocked {
			out = append(out, b)
		}
	}
	return out
}

// Has reports whether the record has earned badge id.
func Has(r progress.Record, id ID) bool {
	for _, b := range rules {
		if b.id == id {
			return b.test(r)
		}
	}
	return false
}

// Earned returns the badges after has that before did not.
func Earned(before, after progress.Record) []Badge {
	var out []Badge
	for _, b := range All(after) {
		if b.Unlocked && !Has(before, b.ID) {
			out = append(out, b)
		}
	}
	return out
}
