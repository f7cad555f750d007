package session

import "time"

// SessionSummary holds the data displayed on the summary screen.
type SessionSummary struct {
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Accuracy       float64
	XPGained       int
	Streak         int
	CardResults    []CardResult
}

// BuildSummary creates a SessionSummary from the current session state.
// Only cards that were answered are listed, in deck order.
func BuildSummary(state *SessionState) *SessionSummary {
	var results []CardResult
	for _, slot := range state.Plan.Slots {
		if cr, ok := state.PerCardResults[slot.Card.ID]; ok && cr.Attempted > 0 {
			results = append(results, *cr)
		}
	}

	var accuracy float64
	if state.TotalQuestions > 0 {
		accuracy = float64(state.TotalCorrect) / float64(state.TotalQuestions)
	}

	return &SessionSummary{
		Duration:       state.Elapsed,
		TotalQuestions: state.TotalQuestions,
		TotalCorrect:   state.TotalCorrect,
		Accuracy:       accuracy,
		XPGained:       state.XPGained,
		Streak:         state.StreakAfter,
		CardResults:    results,
	}
}
