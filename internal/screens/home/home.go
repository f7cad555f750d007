package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/kupu-app/kupu/internal/badges"
	"github.com/kupu-app/kupu/internal/metrics"
	"github.com/kupu-app/kupu/internal/progress"
	"github.com/kupu-app/kupu/internal/router"
	"github.com/kupu-app/kupu/internal/screen"
	"github.com/kupu-app/kupu/internal/screens/goal"
	"github.com/kupu-app/kupu/internal/screens/history"
	"github.com/kupu-app/kupu/internal/screens/lessons"
	"github.com/kupu-app/kupu/internal/screens/practice"
	progressscreen "github.com/kupu-app/kupu/internal/screens/progress"
	"github.com/kupu-app/kupu/internal/ui/components"
	"github.com/kupu-app/kupu/internal/ui/layout"
)

// stats is the dashboard summary shown above the menu.
type stats struct {
	xp          int
	level       int
	streak      int
	goalPercent int
	saved       int
	queued      int
	nextBadge   int // streak milestone still to reach, 0 when none
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	svc           *screen.Services
	menu          components.Menu
	menuLabels    []string
	stats         stats
	mascotVariant MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Refresher = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc *screen.Services) *HomeScreen {
	menuLabels := []string{"PRACTICE", "LESSONS", "DAILY GOAL", "PROGRESS", "HISTORY", "QUIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: practice.New(svc)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: lessons.New(svc)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: goal.New(svc)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progressscreen.New(svc)}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(svc)}
			}
		}},
		{Label: menuLabels[5], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h := &HomeScreen{
		svc:        svc,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
	h.Refresh()
	return h
}

// Refresh recomputes the dashboard from the stores.
func (h *HomeScreen) Refresh() {
	rec := h.svc.Progress.Record()
	now := h.svc.Today()
	today := progress.DayKey(now)

	h.stats = stats{
		xp:          rec.XP,
		level:       metrics.Level(rec.XP),
		streak:      rec.Streak,
		goalPercent: metrics.DailyGoal(rec, now).Percent,
		saved:       h.svc.Vocab.Len(),
		queued:      h.svc.Queue.Len(),
	}
	if next, ok := badges.NextStreakMilestone(rec.Streak); ok {
		h.stats.nextBadge = next
	}

	h.mascotVariant = MascotIdle
	switch {
	case h.stats.goalPercent >= 100:
		h.mascotVariant = MascotCelebrating
	case rec.Streak > 0 && streakAtRisk(rec, today):
		h.mascotVariant = MascotAlert
	}
}

// streakAtRisk reports whether the learner was last active yesterday, so
// the streak resets unless they practise today.
func streakAtRisk(rec progress.Record, today string) bool {
	if rec.LastActiveDate == nil {
		return false
	}
	diff, ok := progress.DaysBetween(*rec.LastActiveDate, today)
	return ok && diff == 1
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "q" {
		return h, tea.Quit
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Q", Description: "Quit"},
	}
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}
	sections = append(sections, renderStatsBar(h.stats, cw, compact))

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw, nil))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw, nil))
	}
	sections = append(sections, renderNote(h.note(), cw))

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) note() string {
	note := fmt.Sprintf("%d words saved · %d in queue", h.stats.saved, h.stats.queued)
	if h.mascotVariant == MascotAlert {
		return note + " · practise today to keep your streak"
	}
	if h.stats.nextBadge > 0 {
		note += fmt.Sprintf(" · %s to the next streak badge", layout.Days(h.stats.nextBadge-h.stats.streak))
	}
	return note
}

func (h *HomeScreen) Title() string {
	return "Home"
}
