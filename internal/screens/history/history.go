package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kupu-app/kupu/internal/metrics"
	"github.com/kupu-app/kupu/internal/router"
	"github.com/kupu-app/kupu/internal/screen"
	"github.com/kupu-app/kupu/internal/ui/layout"
	"github.com/kupu-app/kupu/internal/ui/theme"
)

// HistoryScreen lists past active days, newest first.
type HistoryScreen struct {
	svc      *screen.Services
	days     []metrics.ActivityDay
	selected int
	expanded map[int]bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)
var _ screen.Refresher = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(svc *screen.Services) *HistoryScreen {
	s := &HistoryScreen{
		svc:      svc,
		expanded: make(map[int]bool),
	}
	s.Refresh()
	return s
}

// Refresh reloads the day list from the progress record.
func (s *HistoryScreen) Refresh() {
	s.days = metrics.ActivityLog(s.svc.Progress.Record())
	s.selected = min(s.selected, max(0, len(s.days)-1))
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.days)-1 {
				s.selected++
			}
		case "enter":
			if len(s.days) > 0 {
				s.expanded[s.selected] = !s.expanded[s.selected]
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if len(s.days) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No activity yet. Start practising!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, d := range s.days {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %3d answered  %3d%%  %4d XP  %s",
			prefix, d.Date, d.Answered, d.Accuracy(), d.XP, layout.Duration(d.WatchedSec))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, detail := range dayDetails(d) {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func dayDetails(d metrics.ActivityDay) []string {
	if d.Answered == 0 {
		return []string{fmt.Sprintf("    Watched %s, no cards answered", layout.Duration(d.WatchedSec))}
	}
	return []string{
		fmt.Sprintf("    %d of %d cards correct", d.Correct, d.Answered),
		fmt.Sprintf("    Watched %s", layout.Duration(d.WatchedSec)),
	}
}
