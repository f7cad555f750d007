package session

import (
	"cmp"
	"slices"

	"github.com/kupu-app/kupu/internal/progress"
	"github.com/kupu-app/kupu/internal/vocab"
)

// PlanCategory represents the reason a card was included in the plan.
type PlanCategory string

const (
	CategoryNew      PlanCategory = "new"
	CategoryLearning PlanCategory = "learning"
	CategoryReview   PlanCategory = "review"
)

// PlanSlot is a single card in the practice deck.
type PlanSlot struct {
	Card     vocab.Card
	Mastery  int
	Category PlanCategory
}

// Plan is the ordered deck for a practice session.
type Plan struct {
	Slots    []PlanSlot
	LessonID string
}

// DefaultDeckSize is the number of cards served per session.
const DefaultDeckSize = 10

// BuildPlan orders the cards of lesson lessonID for practice: weakest cards
// first, mastered cards last as review, ties broken by id. At most size
// cards are kept; size <= 0 keeps them all.
func BuildPlan(lessonID string, cards []vocab.Card, rec progress.Record, size int) *Plan {
	slots := make([]PlanSlot, 0, len(cards))
	for _, c := range cards {
		m, seen := rec.LearnedByCard[c.ID]
		slots = append(slots, PlanSlot{Card: c, Mastery: m, Category: categorize(m, seen)})
	}

	slices.SortStableFunc(slots, func(a, b PlanSlot) int {
		if c := cmp.Compare(a.Mastery, b.Mastery); c != 0 {
			return c
		}
		return cmp.Compare(a.Card.ID, b.Card.ID)
	})

	if size > 0 && len(slots) > size {
		slots = slots[:size]
	}
	return &Plan{Slots: slots, LessonID: lessonID}
}

func categorize(mastery int, seen bool) PlanCategory {
	switch {
	case !seen:
		return CategoryNew
	case mastery >= progress.MaxCardMastery:
		return CategoryReview
	default:
		return CategoryLearning
	}
}
