package practice

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/kupu-app/kupu/internal/lessons"
	"github.com/kupu-app/kupu/internal/router"
	"github.com/kupu-app/kupu/internal/screen"
	"github.com/kupu-app/kupu/internal/screens/summary"
	sess "github.com/kupu-app/kupu/internal/session"
	"github.com/kupu-app/kupu/internal/ui/components"
	"github.com/kupu-app/kupu/internal/ui/layout"
)

// PracticeScreen runs a flashcard session over a lesson deck or the saved
// vocabulary.
type PracticeScreen struct {
	svc         *screen.Services
	title       string
	state       *sess.SessionState
	verdict     components.ButtonRow
	confirmQuit bool
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New builds today's deck from the saved vocabulary.
func New(svc *screen.Services) *PracticeScreen {
	plan := sess.BuildPlan(lessons.SavedID, svc.Vocab.List(), svc.Progress.Record(), sess.DefaultDeckSize)
	return newScreen(svc, "Practice", plan)
}

// NewLesson builds a deck from every card of lesson.
func NewLesson(svc *screen.Services, lesson lessons.Lesson) *PracticeScreen {
	plan := sess.BuildPlan(lesson.ID, lesson.Cards, svc.Progress.Record(), 0)
	return newScreen(svc, lesson.Title, plan)
}

func newScreen(svc *screen.Services, title string, plan *sess.Plan) *PracticeScreen {
	return &PracticeScreen{
		svc:     svc,
		title:   title,
		state:   sess.NewSessionState(plan, svc.Today()),
		verdict: newVerdictRow(),
	}
}

func newVerdictRow() components.ButtonRow {
	return components.NewButtonRow(
		components.NewButton("Knew it", true, func() tea.Cmd {
			return func() tea.Msg { return verdictMsg{Correct: true} }
		}),
		components.NewButton("Missed it", false, func() tea.Cmd {
			return func() tea.Msg { return verdictMsg{Correct: false} }
		}),
	)
}

func (p *PracticeScreen) Init() tea.Cmd {
	return nil
}

func (p *PracticeScreen) Title() string {
	return p.title
}

// State exposes the running session.
func (p *PracticeScreen) State() *sess.SessionState {
	return p.state
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	switch {
	case p.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "End practice"},
			{Key: "N", Description: "Keep going"},
		}
	case p.empty():
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	case p.state.Phase == sess.PhaseBack:
		return []layout.KeyHint{
			{Key: "Y", Description: "Knew it"},
			{Key: "N", Description: "Missed it"},
			{Key: "←/→", Description: "Choose"},
			p.saveHint(),
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Space", Description: "Reveal"},
			p.saveHint(),
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (p *PracticeScreen) saveHint() layout.KeyHint {
	if p.currentSaved() {
		return layout.KeyHint{Key: "S", Description: "Unsave"}
	}
	return layout.KeyHint{Key: "S", Description: "Save"}
}

// currentSaved reports whether the card on screen is in the saved vocabulary.
func (p *PracticeScreen) currentSaved() bool {
	slot := p.state.Current()
	return slot != nil && p.svc.Vocab.IsSaved(slot.Card.ID)
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case verdictMsg:
		return p.answer(msg.Correct)

	case sessionEndMsg:
		return p.handleSessionEnd()

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *PracticeScreen) empty() bool {
	return len(p.state.Plan.Slots) == 0
}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if p.empty() {
		switch key {
		case "esc", "enter", "q":
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return p, nil
	}

	if p.confirmQuit {
		switch key {
		case "y", "Y":
			p.confirmQuit = false
			return p, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			p.confirmQuit = false
		}
		return p, nil
	}

	if key == "s" || key == "S" {
		if slot := p.state.Current(); slot != nil {
			p.svc.Vocab.Toggle(context.Background(), slot.Card)
		}
		return p, nil
	}

	if key == "esc" {
		if p.state.TotalQuestions == 0 {
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
		p.confirmQuit = true
		return p, nil
	}

	switch p.state.Phase {
	case sess.PhaseFront:
		switch key {
		case "space", " ", "enter":
			p.state.Reveal()
			p.verdict = newVerdictRow()
		}
		return p, nil

	case sess.PhaseBack:
		switch key {
		case "y", "Y", "1":
			return p.answer(true)
		case "n", "N", "2":
			return p.answer(false)
		}
		var cmd tea.Cmd
		p.verdict, cmd = p.verdict.Update(msg)
		return p, cmd
	}

	return p, nil
}

// answer records the verdict and moves on, ending the session after the
// last card.
func (p *PracticeScreen) answer(correct bool) (screen.Screen, tea.Cmd) {
	if p.state.Phase != sess.PhaseBack {
		return p, nil
	}
	sess.HandleAnswer(context.Background(), p.state, p.svc.Progress, correct, p.svc.Today())
	if p.state.Phase == sess.PhaseSummary {
		return p, func() tea.Msg { return sessionEndMsg{} }
	}
	return p, nil
}

func (p *PracticeScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	if p.state.TotalQuestions == 0 {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}
	sess.Finish(p.state, p.svc.Today())
	sum := sess.BuildSummary(p.state)
	return p, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}
