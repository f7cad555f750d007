package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kupu-app/kupu/internal/router"
	"github.com/kupu-app/kupu/internal/screen"
	"github.com/kupu-app/kupu/internal/session"
	"github.com/kupu-app/kupu/internal/ui/layout"
	"github.com/kupu-app/kupu/internal/ui/theme"
)

// SummaryScreen displays the result of a practice session.
type SummaryScreen struct {
	summary *session.SessionSummary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.SessionSummary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Practice Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// The practice screen replaced itself with this one, so a
			// single pop lands back on home.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Ka pai! Practice complete"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Duration: " + layout.Duration(int(sum.Duration.Seconds()))))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Cards: %d        Correct: %d        Accuracy: %.0f%%",
		sum.TotalQuestions, sum.TotalCorrect, sum.Accuracy*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")

	rewards := fmt.Sprintf("✦ +%d XP    🔥 %s", sum.XPGained, layout.Days(sum.Streak))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(rewards))
	b.WriteString("\n\n")

	if len(sum.CardResults) == 0 {
		return b.String()
	}

	b.WriteString(layout.Centered(width, theme.Hint.Render("Cards")))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, layout.Divider(width)))
	b.WriteString("\n\n")

	for _, cr := range sum.CardResults {
		line := fmt.Sprintf("  %s    %d/%d    %s", cr.Front, cr.Correct, cr.Attempted, masteryString(cr))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case cr.MasteryAfter > cr.MasteryBefore:
			style = style.Foreground(theme.Success)
		case cr.MasteryAfter < cr.MasteryBefore:
			style = style.Foreground(theme.Error)
		}
		b.WriteString(layout.Centered(width, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

// masteryString renders mastery as pips, with the change when it moved.
func masteryString(cr session.CardResult) string {
	after := pips(cr.MasteryAfter)
	if cr.MasteryBefore == cr.MasteryAfter {
		return after
	}
	return pips(cr.MasteryBefore) + " > " + after
}

func pips(n int) string {
	return strings.Repeat("●", n) + strings.Repeat("○", max(0, 3-n))
}
