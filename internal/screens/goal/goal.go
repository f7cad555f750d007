package goal

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kupu-app/kupu/internal/metrics"
	"github.com/kupu-app/kupu/internal/progress"
	"github.com/kupu-app/kupu/internal/router"
	"github.com/kupu-app/kupu/internal/screen"
	"github.com/kupu-app/kupu/internal/ui/components"
	"github.com/kupu-app/kupu/internal/ui/layout"
	"github.com/kupu-app/kupu/internal/ui/theme"
)

type preset struct {
	label   string
	minutes int
}

var presets = []preset{
	{"Casual", 15},
	{"Learner", 30},
	{"Serious", 60},
}

type mode int

const (
	modeChoose mode = iota
	modeCustom
	modeWatch
)

// GoalScreen shows today's watch time against the daily goal and lets the
// learner change the goal or log minutes watched elsewhere.
type GoalScreen struct {
	svc     *screen.Services
	choice  components.Choice
	input   components.TextInput
	mode    mode
	message string
}

var _ screen.Screen = (*GoalScreen)(nil)
var _ screen.KeyHintProvider = (*GoalScreen)(nil)

// New creates a GoalScreen.
func New(svc *screen.Services) *GoalScreen {
	options := make([]components.ChoiceOption, 0, len(presets)+1)
	for _, p := range presets {
		options = append(options, components.ChoiceOption{
			Label:  p.label,
			Detail: fmt.Sprintf("%d min/day", p.minutes),
		})
	}
	options = append(options, components.ChoiceOption{
		Label:  "Custom",
		Detail: fmt.Sprintf("%d-%d min", progress.MinGoalMinutes, progress.MaxGoalMinutes),
	})

	return &GoalScreen{
		svc:    svc,
		choice: components.NewChoice(options, presetIndex(svc.Progress.Record().GoalMinutes)),
	}
}

// presetIndex returns the option matching minutes; anything else is the
// custom option.
func presetIndex(minutes int) int {
	for i, p := range presets {
		if p.minutes == minutes {
			return i
		}
	}
	return len(presets)
}

func (g *GoalScreen) Init() tea.Cmd {
	return nil
}

func (g *GoalScreen) Title() string {
	return "Daily Goal"
}

func (g *GoalScreen) KeyHints() []layout.KeyHint {
	if g.mode != modeChoose {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Set goal"},
		{Key: "W", Description: "Log minutes"},
		{Key: "Esc", Description: "Back"},
	}
}

func (g *GoalScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if g.mode != modeChoose {
		return g.updateInput(msg)
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return g, func() tea.Msg { return router.PopScreenMsg{} }
		case "w", "W":
			return g, g.openInput(modeWatch, "minutes watched")
		}
	}

	var cmd tea.Cmd
	g.choice, cmd = g.choice.Update(msg)
	switch chosen := g.choice.TakeChosen(); {
	case chosen < 0:
	case chosen < len(presets):
		g.setGoal(presets[chosen].minutes)
	default:
		return g, g.openInput(modeCustom, "minutes per day")
	}
	return g, cmd
}

func (g *GoalScreen) openInput(m mode, placeholder string) tea.Cmd {
	g.mode = m
	g.message = ""
	g.input = components.NewTextInput(placeholder, true, 3)
	return g.input.Init()
}

func (g *GoalScreen) updateInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			g.mode = modeChoose
			return g, nil
		case "enter":
			n, err := g.input.NumericValue()
			if err != nil || n <= 0 {
				g.input.Submit(false)
				return g, nil
			}
			if g.mode == modeWatch {
				g.logWatch(n)
			} else {
				g.setGoal(n)
			}
			g.mode = modeChoose
			return g, nil
		}
	}

	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	return g, cmd
}

func (g *GoalScreen) setGoal(minutes int) {
	rec := g.svc.Progress.SetGoalMinutes(context.Background(), float64(minutes))
	g.choice.Current = presetIndex(rec.GoalMinutes)
	g.choice.Selected = g.choice.Current
	g.message = fmt.Sprintf("Daily goal set to %d minutes", rec.GoalMinutes)
}

func (g *GoalScreen) logWatch(minutes int) {
	g.svc.Progress.RecordWatch(context.Background(), float64(minutes*60))
	g.message = fmt.Sprintf("Logged %d minutes", minutes)
}

func (g *GoalScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	goal := metrics.DailyGoal(g.svc.Progress.Record(), g.svc.Today())

	var b strings.Builder
	b.WriteString("\n")

	status := fmt.Sprintf("%s of %s watched today",
		layout.Duration(goal.WatchedSec), layout.Duration(goal.GoalSec))
	if goal.Done() {
		status = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("Goal reached! ") + status
	} else {
		status += fmt.Sprintf(" · %s to go", layout.Duration(goal.RemainingSec))
	}

	bar := components.NewProgressBar("Today", float64(goal.Percent)/100, true, cw-8)
	b.WriteString(layout.Centered(width, components.Panel(bar.View()+"\n"+status, cw)))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(width, theme.Hint.Render("Choose a daily goal")))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(width, g.choice.View()))

	if g.mode != modeChoose {
		label := "Goal minutes: "
		if g.mode == modeWatch {
			label = "Minutes watched: "
		}
		b.WriteString("\n")
		b.WriteString(layout.Centered(width, label+g.input.View()))
	}

	if g.message != "" {
		b.WriteString("\n\n")
		b.WriteString(layout.Centered(width, lipgloss.NewStyle().Foreground(theme.Accent).Render(g.message)))
	}
	return b.String()
}
