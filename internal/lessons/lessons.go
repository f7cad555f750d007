// Package lessons holds the built-in lesson decks and reports progress
// through them.
package lessons

import (
	"maps"
	"slices"

	"github.com/kupu-app/kupu/internal/progress"
	"github.com/kupu-app/kupu/internal/vocab"
)

// SavedID groups answers to the learner's saved words under one lesson.
const SavedID = "saved-vocab"

// Lesson is a named deck of flashcards.
type Lesson struct {
	ID          string
	Title       string
	Description string
	Cards       []vocab.Card
}

var catalog = []Lesson{
	{
		ID:          "greetings",
		Title:       "Ngā mihi (Greetings)",
		Description: "Common greetings and farewells",
		Cards: []vocab.Card{
			{ID: "kia-ora", Front: "Kia ora", Back: "Hello"},
			{ID: "tena-koe", Front: "Tēnā koe", Back: "Greetings to one person"},
			{ID: "tena-korua", Front: "Tēnā kōrua", Back: "Greetings to two people"},
			{ID: "tena-koutou", Front: "Tēnā koutou", Back: "Greetings to three or more"},
			{ID: "morena", Front: "Mōrena", Back: "Good morning"},
			{ID: "ka-kite", Front: "Ka kite", Back: "See you"},
			{ID: "haere-ra", Front: "Haere rā", Back: "Goodbye (to someone leaving)"},
			{ID: "e-noho-ra", Front: "E noho rā", Back: "Goodbye (to someone staying)"},
		},
	},
	{
		ID:          "numbers",
		Title:       "Ngā tau (Numbers 1–10)",
		Description: "Counting basics",
		Cards: []vocab.Card{
			{ID: "tahi", Front: "Tahi", Back: "One"},
			{ID: "rua", Front: "Rua", Back: "Two"},
			{ID: "toru", Front: "Toru", Back: "Three"},
			{ID: "wha", Front: "Whā", Back: "Four"},
			{ID: "rima", Front: "Rima", Back: "Five"},
			{ID: "ono", Front: "Ono", Back: "Six"},
			{ID: "whitu", Front: "Whitu", Back: "Seven"},
			{ID: "waru", Front: "Waru", Back: "Eight"},
			{ID: "iwa", Front: "Iwa", Back: "Nine"},
			{ID: "tekau", Front: "Tekau", Back: "Ten"},
		},
	},
}

// All returns the built-in lessons in display order.
func All() []Lesson {
	out := make([]Lesson, len(catalog))
	for i, l := range catalog {
		l.Cards = slices.Clone(l.Cards)
		out[i] = l
	}
	return out
}

// Get returns the built-in lesson with id.
func Get(id string) (Lesson, bool) {
	for _, l := range All() {
		if l.ID == id {
			return l, true
		}
	}
	return Lesson{}, false
}

// Status is a lesson's progress as recorded on the progress record.
type Status struct {
	ID      string
	Title   string
	Cards   int // cards in the deck; 0 when the lesson is not built in
	Learned int
	Total   int
}

// Statuses returns every built-in lesson with its progress, followed by
// any other lesson ids the record has progress for, sorted by id.
func Statuses(r progress.Record) []Status {
	out := make([]Status, 0, len(catalog)+len(r.LessonProgress))
	known := make(map[string]bool, len(catalog))
	for _, l := range catalog {
		known[l.ID] = true
		lp := r.LessonProgress[l.ID]
		out = append(out, Status{ID: l.ID, Title: l.Title, Cards: len(l.Cards), Learned: lp.Learned, Total: lp.Total})
	}
	for _, id := range slices.Sorted(maps.Keys(r.LessonProgress)) {
		if known[id] {
			continue
		}
		lp := r.LessonProgress[id]
		title := id
		if id == SavedID {
			title = "Saved words"
		}
		out = append(out, Status{ID: id, Title: title, Learned: lp.Learned, Total: lp.Total})
	}
	return out
}
