package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kupu-app/kupu/internal/progress"
	"github.com/kupu-app/kupu/internal/router"
	"github.com/kupu-app/kupu/internal/screen"
	"github.com/kupu-app/kupu/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const kiwiArt = `    ___
   (o  >
   / ) )
  /_/_/
    " "`

// sparkle frames cycle around the kiwi
var sparkleFrames = []string{"✦", "·"}

type tickMsg time.Time

// WelcomeScreen shows a short greeting before handing over to home.
type WelcomeScreen struct {
	svc          *screen.Services
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced
// by homeFactory.
func New(svc *screen.Services, homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		svc:         svc,
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

// Greeting returns a time-of-day greeting in te reo Māori.
func Greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "Mōrena!"
	case h < 18:
		return "Kia ora!"
	default:
		return "Ahiahi mārie!"
	}
}

// Tagline describes the learner's streak for the splash screen.
func Tagline(rec progress.Record, now time.Time) string {
	today := progress.DayKey(now)
	switch {
	case rec.Streak > 0 && rec.IsActiveOn(today):
		return fmt.Sprintf("%d-day streak. Ka pai!", rec.Streak)
	case rec.Streak > 0 && rec.LastActiveDate != nil:
		if diff, ok := progress.DaysBetween(*rec.LastActiveDate, today); ok && diff == 1 {
			return fmt.Sprintf("Practise today to keep your %d-day streak", rec.Streak)
		}
	}
	return "Let's learn some kupu"
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	rendered := lipgloss.NewStyle().Foreground(theme.Primary).Render(kiwiArt)

	// Phase 2+: sparkles beside the kiwi
	if w.elapsed >= phase1End {
		sparkle := sparkleFrames[w.tickCount%len(sparkleFrames)]
		s1 := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)
		s2 := lipgloss.NewStyle().Foreground(theme.Secondary).Render(sparkle)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 1 {
			lines[1] = s1 + "  " + lines[1] + "  " + s2
		}
		if len(lines) > 3 {
			lines[3] = s2 + "  " + lines[3] + "  " + s1
		}
		rendered = strings.Join(lines, "\n")
	}
	sections = append(sections, rendered)

	// Phase 3+: banner, greeting and hint
	if w.elapsed >= phase2End {
		now := w.svc.Today()
		sections = append(sections,
			"",
			RenderBanner(width, false),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(Greeting(now)),
			lipgloss.NewStyle().Foreground(theme.Accent).Render(Tagline(w.svc.Progress.Record(), now)),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to continue"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
