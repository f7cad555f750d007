package session

import (
	"context"
	"time"

	"github.com/kupu-app/kupu/internal/progress"
)

// Recorder persists answers. *progress.Store satisfies it.
type Recorder interface {
	RecordAnswer(ctx context.Context, a progress.Answer) progress.Record
}

// SessionPhase represents the current phase of the session.
type SessionPhase int

const (
	PhaseFront   SessionPhase = iota // Showing the front of the card
	PhaseBack                        // Card revealed, waiting for a verdict
	PhaseSummary                     // Deck finished
)

// CardResult tracks one card's outcome within a session.
type CardResult struct {
	CardID        string
	Front         string
	Attempted     int
	Correct       int
	MasteryBefore int
	MasteryAfter  int
}

// SessionState tracks the runtime state of a practice session.
type SessionState struct {
	Plan           *Plan
	Index          int
	Phase          SessionPhase
	TotalQuestions int
	TotalCorrect   int
	XPGained       int
	StreakAfter    int
	PerCardResults map[string]*CardResult
	StartTime      time.Time
	Elapsed        time.Duration
}

// NewSessionState creates a session over plan. An empty plan starts in the
// summary phase.
func NewSessionState(plan *Plan, now time.Time) *SessionState {
	results := make(map[string]*CardResult, len(plan.Slots))
	for _, slot := range plan.Slots {
		results[slot.Card.ID] = &CardResult{
			CardID:        slot.Card.ID,
			Front:         slot.Card.Front,
			MasteryBefore: slot.Mastery,
			MasteryAfter:  slot.Mastery,
		}
	}
	phase := PhaseFront
	if len(plan.Slots) == 0 {
		phase = PhaseSummary
	}
	return &SessionState{
		Plan:           plan,
		Phase:          phase,
		PerCardResults: results,
		StartTime:      now,
	}
}

// Current returns the slot being shown, or nil once the deck is done.
func (s *SessionState) Current() *PlanSlot {
	if s.Phase == PhaseSummary || s.Index >= len(s.Plan.Slots) {
		return nil
	}
	return &s.Plan.Slots[s.Index]
}

// Remaining returns how many cards are left, including the current one.
func (s *SessionState) Remaining() int {
	return max(0, len(s.Plan.Slots)-s.Index)
}

// Reveal flips the current card.
func (s *SessionState) Reveal() {
	if s.Phase == PhaseFront {
		s.Phase = PhaseBack
	}
}

// HandleAnswer records the learner's verdict on the revealed card and
// advances the deck. It is a no-op unless the card has been revealed.
func HandleAnswer(ctx context.Context, state *SessionState, rec Recorder, correct bool, now time.Time) {
	slot := state.Current()
	if slot == nil || state.Phase != PhaseBack {
		return
	}

	updated := rec.RecordAnswer(ctx, progress.Answer{
		Correct:  correct,
		CardID:   slot.Card.ID,
		LessonID: state.Plan.LessonID,
	})

	state.TotalQuestions++
	state.XPGained += progress.XPFor(correct)
	state.StreakAfter = updated.Streak
	if correct {
		state.TotalCorrect++
	}
	if cr := state.PerCardResults[slot.Card.ID]; cr != nil {
		cr.Attempted++
		if correct {
			cr.Correct++
		}
		cr.MasteryAfter = updated.LearnedByCard[slot.Card.ID]
	}

	state.Index++
	state.Elapsed = now.Sub(state.StartTime)
	if state.Index >= len(state.Plan.Slots) {
		state.Phase = PhaseSummary
		return
	}
	state.Phase = PhaseFront
}

// Finish ends the session early.
func Finish(state *SessionState, now time.Time) {
	state.Phase = PhaseSummary
	state.Elapsed = now.Sub(state.StartTime)
}
