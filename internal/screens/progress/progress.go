package progress

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kupu-app/kupu/internal/badges"
	"github.com/kupu-app/kupu/internal/lessons"
	"github.com/kupu-app/kupu/internal/metrics"
	kprogress "github.com/kupu-app/kupu/internal/progress"
	"github.com/kupu-app/kupu/internal/router"
	"github.com/kupu-app/kupu/internal/screen"
	"github.com/kupu-app/kupu/internal/ui/components"
	"github.com/kupu-app/kupu/internal/ui/layout"
	"github.com/kupu-app/kupu/internal/ui/theme"
)

type tab int

const (
	tabOverview tab = iota
	tabBadges
	tabCalendar
	tabLessons
	tabCount
)

var tabLabels = [tabCount]string{"Overview", "Badges", "Calendar", "Lessons"}

// ProgressScreen displays stats, level, badges and the activity calendar.
type ProgressScreen struct {
	svc     *screen.Services
	rec     kprogress.Record
	outside float64
	tab     tab
	month   time.Time // first day of the calendar month on display
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)
var _ screen.Refresher = (*ProgressScreen)(nil)

// New creates a ProgressScreen showing the current month.
func New(svc *screen.Services) *ProgressScreen {
	s := &ProgressScreen{svc: svc}
	now := svc.Today()
	s.month = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	s.Refresh()
	return s
}

// Refresh re-reads the record and outside minutes.
func (s *ProgressScreen) Refresh() {
	s.rec = s.svc.Progress.Record()
	s.outside = s.svc.Outside.Minutes()
}

func (s *ProgressScreen) Init() tea.Cmd {
	return nil
}

func (s *ProgressScreen) Title() string {
	return "Progress"
}

func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Tab", Description: "Switch view"}}
	if s.tab == tabCalendar {
		hints = append(hints, layout.KeyHint{Key: "←/→", Description: "Month"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "tab":
		s.tab = (s.tab + 1) % tabCount
	case "shift+tab":
		s.tab = (s.tab - 1 + tabCount) % tabCount
	case "left", "h":
		if s.tab == tabCalendar {
			s.month = s.month.AddDate(0, -1, 0)
		}
	case "right", "l":
		if s.tab == tabCalendar {
			s.month = s.month.AddDate(0, 1, 0)
		}
	}
	return s, nil
}

func (s *ProgressScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, s.renderTabs()))
	b.WriteString("\n")
	b.WriteString(layout.Centered(width, layout.Divider(width)))
	b.WriteString("\n\n")

	cw := components.ContentWidth(width)
	switch s.tab {
	case tabBadges:
		b.WriteString(layout.Centered(width, s.renderBadges(cw)))
	case tabCalendar:
		b.WriteString(layout.Centered(width, s.renderCalendar(cw)))
	case tabLessons:
		b.WriteString(layout.Centered(width, s.renderLessons(cw)))
	default:
		b.WriteString(layout.Centered(width, s.renderOverview(cw)))
	}
	return b.String()
}

func (s *ProgressScreen) renderTabs() string {
	tabs := make([]string, 0, tabCount)
	for i, label := range tabLabels {
		if tab(i) == s.tab {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	return strings.Join(tabs, "     ")
}

func (s *ProgressScreen) renderOverview(cw int) string {
	r := s.rec
	level := metrics.Level(r.XP)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	strong := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	var b strings.Builder
	b.WriteString(strong.Render(fmt.Sprintf("Level %d · %s", level, metrics.LevelTitle(level))))
	b.WriteString("\n")
	bar := components.NewProgressBar("", float64(metrics.LevelProgress(r.XP))/metrics.XPPerLevel, false, cw-8)
	b.WriteString(bar.View())
	b.WriteString("\n")
	b.WriteString(dim.Render(fmt.Sprintf("%d / %d XP to next level", metrics.LevelProgress(r.XP), metrics.XPPerLevel)))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(dim.Render(fmt.Sprintf("%-18s", label)))
		b.WriteString(strong.Render(value))
		b.WriteString("\n")
	}
	row("Total XP", fmt.Sprintf("%d", r.XP))
	row("Streak", layout.Days(r.Streak))
	row("Weeks in a row", fmt.Sprintf("%d", metrics.WeeksInARow(r, s.svc.Today())))
	row("Answered", fmt.Sprintf("%d (%d correct)", r.TotalAnswered, r.TotalCorrect))
	row("Accuracy", fmt.Sprintf("%d%%", metrics.Accuracy(r)))

	hours := metrics.TotalInputHours(r, s.outside)
	input := fmt.Sprintf("%.1f h · level %d", hours, metrics.InputLevel(hours))
	if next, ok := metrics.NextInputThreshold(hours); ok {
		input += fmt.Sprintf(" (next at %.0f h)", next)
	}
	row("Input", input)
	b.WriteString("\n")

	b.WriteString(dim.Render("XP, last 7 days"))
	b.WriteString("\n")
	b.WriteString(components.XPChart(metrics.LastSevenDays(r, s.svc.Today()), cw-8))

	return components.Panel(strings.TrimRight(b.String(), "\n"), cw)
}

func (s *ProgressScreen) renderBadges(cw int) string {
	var b strings.Builder
	all := badges.All(s.rec)
	unlocked := 0
	for _, badge := range all {
		line := fmt.Sprintf("%s  %s", badge.Kind.Icon(), badge.Label)
		if badge.Unlocked {
			unlocked++
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(line))
		} else {
			b.WriteString(theme.Locked.Render(line + "  (locked)"))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d of %d unlocked", unlocked, len(all))))
	if next, ok := badges.NextStreakMilestone(s.rec.Streak); ok {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%s to the %d-day streak badge", layout.Days(next-s.rec.Streak), next)))
	}
	return components.Panel(b.String(), cw)
}

func (s *ProgressScreen) renderCalendar(cw int) string {
	days := metrics.CalendarDays(s.rec, s.month.Year(), s.month.Month())
	today := kprogress.DayKey(s.svc.Today())

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(s.month.Format("January 2006")))
	b.WriteString("\n\n")
	b.WriteString(components.Calendar(days, today))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%s active this month", layout.Days(metrics.ActiveDaysIn(days)))))
	return components.Panel(b.String(), cw)
}

func (s *ProgressScreen) renderLessons(cw int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	strong := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	var b strings.Builder
	for _, st := range lessons.Statuses(s.rec) {
		b.WriteString(strong.Render(st.Title))
		b.WriteString("\n")
		line := fmt.Sprintf("%d/%d learned", st.Learned, st.Total)
		if st.Cards > 0 {
			line += fmt.Sprintf(" · %d cards in deck", st.Cards)
		}
		b.WriteString(dim.Render(line))
		b.WriteString("\n\n")
	}
	b.WriteString(theme.Hint.Render("A card counts as learned after two correct answers in a row"))
	return components.Panel(b.String(), cw)
}
