package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/kupu-app/kupu/internal/router"
	"github.com/kupu-app/kupu/internal/session"
)

func testSummary() *session.SessionSummary {
	return &session.SessionSummary{
		Duration:       3 * time.Minute,
		TotalQuestions: 4,
		TotalCorrect:   3,
		Accuracy:       0.75,
		XPGained:       38,
		Streak:         2,
		CardResults: []session.CardResult{
			{CardID: "kia-ora", Front: "kia ora", Attempted: 2, Correct: 2, MasteryBefore: 0, MasteryAfter: 2},
			{CardID: "whanau", Front: "whānau", Attempted: 2, Correct: 1, MasteryBefore: 3, MasteryAfter: 1},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Practice Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Practice Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	for _, want := range []string{"kia ora", "whānau", "+38 XP", "2 days", "75%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_NilSummary(t *testing.T) {
	s := New(nil)
	if v := s.View(80, 24); v != "" {
		t.Errorf("View = %q, want empty", v)
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter (pop)")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}

func TestMasteryString(t *testing.T) {
	if got := masteryString(session.CardResult{MasteryBefore: 1, MasteryAfter: 1}); got != "●○○" {
		t.Errorf("unchanged = %q", got)
	}
	if got := masteryString(session.CardResult{MasteryBefore: 0, MasteryAfter: 2}); got != "○○○ > ●●○" {
		t.Errorf("changed = %q", got)
	}
}
