package lessons

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	klessons "github.com/kupu-app/kupu/internal/lessons"
	"github.com/kupu-app/kupu/internal/router"
	"github.com/kupu-app/kupu/internal/screen"
	"github.com/kupu-app/kupu/internal/screens/practice"
	"github.com/kupu-app/kupu/internal/ui/layout"
	"github.com/kupu-app/kupu/internal/ui/theme"
)

// LessonsScreen lists the built-in lessons and starts a deck for the
// selected one.
type LessonsScreen struct {
	svc      *screen.Services
	lessons  []klessons.Lesson
	statuses map[string]klessons.Status
	selected int
}

var _ screen.Screen = (*LessonsScreen)(nil)
var _ screen.KeyHintProvider = (*LessonsScreen)(nil)
var _ screen.Refresher = (*LessonsScreen)(nil)

// New creates a new LessonsScreen.
func New(svc *screen.Services) *LessonsScreen {
	s := &LessonsScreen{
		svc:     svc,
		lessons: klessons.All(),
	}
	s.Refresh()
	return s
}

// Refresh reloads learned counts after a lesson deck is popped.
func (s *LessonsScreen) Refresh() {
	s.statuses = make(map[string]klessons.Status, len(s.lessons))
	for _, st := range klessons.Statuses(s.svc.Progress.Record()) {
		s.statuses[st.ID] = st
	}
}

func (s *LessonsScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonsScreen) Title() string {
	return "Lessons"
}

func (s *LessonsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LessonsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.lessons)-1 {
				s.selected++
			}
		case "enter":
			if len(s.lessons) == 0 {
				return s, nil
			}
			next := practice.NewLesson(s.svc, s.lessons[s.selected])
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	}
	return s, nil
}

func (s *LessonsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	for i, l := range s.lessons {
		st := s.statuses[l.ID]
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		line := fmt.Sprintf("%s%-28s %2d/%-2d learned", prefix, l.Title, st.Learned, len(l.Cards))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
		if i == s.selected && l.Description != "" {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(l.Description)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
