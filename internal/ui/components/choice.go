package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kupu-app/kupu/internal/ui/theme"
)

// ChoiceOption is one entry of a Choice list.
type ChoiceOption struct {
	Label  string
	Detail string
}

// Choice is a single-select list. Current marks the option already in
// effect; Chosen is set when the learner presses enter.
type Choice struct {
	Options  []ChoiceOption
	Selected int
	Current  int
	Chosen   int
}

// NewChoice creates a Choice with current preselected. Use -1 when no
// option is in effect.
func NewChoice(options []ChoiceOption, current int) Choice {
	return Choice{
		Options:  options,
		Selected: max(current, 0),
		Current:  current,
		Chosen:   -1,
	}
}

// Update handles keyboard navigation and selection.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Chosen = c.Selected
	}

	return c, nil
}

// TakeChosen returns the chosen index and clears it, or -1 when nothing
// has been chosen since the last call.
func (c *Choice) TakeChosen() int {
	i := c.Chosen
	c.Chosen = -1
	return i
}

// View renders the list.
func (c Choice) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}
		mark := " "
		if i == c.Current {
			mark = "●"
		}
		line := fmt.Sprintf("%s%s %s", prefix, mark, opt.Label)

		style := theme.Unselected
		if i == c.Selected {
			style = theme.Selected
		}
		b.WriteString(style.Render(line))
		if opt.Detail != "" {
			b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(opt.Detail))
		}
		b.WriteString("\n")
	}
	return b.String()
}
