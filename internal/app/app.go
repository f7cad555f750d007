package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/kupu-app/kupu/internal/router"
	"github.com/kupu-app/kupu/internal/screen"
	"github.com/kupu-app/kupu/internal/screens/home"
	"github.com/kupu-app/kupu/internal/screens/welcome"
	"github.com/kupu-app/kupu/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Services *screen.Services
	Logger   *zap.Logger
	// Splash shows the welcome screen before home.
	Splash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	svc    *screen.Services
	width  int
	height int
}

// newAppModel creates a new AppModel starting on home, or on the welcome
// screen when a splash is requested.
func newAppModel(opts Options) AppModel {
	svc := opts.Services
	var first screen.Screen = home.New(svc)
	if opts.Splash {
		first = welcome.New(svc, func() screen.Screen { return home.New(svc) })
	}
	return AppModel{
		router: router.New(first),
		svc:    svc,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc belongs to the screens: practice and goal use it to dismiss
		// dialogs before leaving.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the whole frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	rec := m.svc.Progress.Record()
	header := layout.RenderHeader(title, rec.XP, rec.Streak, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(0, m.height-headerHeight-footerHeight)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		hints = []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Services == nil {
		return fmt.Errorf("app: services are required")
	}

	log.Info("tui started")
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		log.Error("tui exited with error", zap.Error(err))
		return fmt.Errorf("run tui: %w", err)
	}
	log.Info("tui stopped")
	return nil
}
