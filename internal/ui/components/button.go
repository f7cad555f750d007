package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/kupu-app/kupu/internal/ui/theme"
)

// Button is a styled button component.
type Button struct {
	Label   string
	Active  bool
	OnPress func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label string, active bool, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Active:  active,
		OnPress: onPress,
	}
}

// Update presses an active button on enter.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "enter" && b.OnPress != nil {
			return b, b.OnPress()
		}
	}

	return b, nil
}

// View renders the button.
func (b Button) View() string {
	if b.Active {
		return theme.ButtonActive.Render("▸ " + b.Label)
	}
	return theme.ButtonInactive.Render("  " + b.Label)
}

// ButtonRow is a horizontal group of buttons with one active at a time.
type ButtonRow struct {
	Buttons []Button
	Active  int
}

// NewButtonRow creates a row with the first button active.
func NewButtonRow(buttons ...Button) ButtonRow {
	r := ButtonRow{Buttons: buttons}
	r.setActive(0)
	return r
}

func (r *ButtonRow) setActive(i int) {
	if len(r.Buttons) == 0 {
		return
	}
	r.Active = min(max(i, 0), len(r.Buttons)-1)
	for j := range r.Buttons {
		r.Buttons[j].Active = j == r.Active
	}
}

// Update moves the selection with left/right and forwards enter to the
// active button.
func (r ButtonRow) Update(msg tea.Msg) (ButtonRow, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "left", "h", "shift+tab":
			r.setActive(r.Active - 1)
			return r, nil
		case "right", "l", "tab":
			r.setActive(r.Active + 1)
			return r, nil
		}
	}
	if len(r.Buttons) == 0 {
		return r, nil
	}
	var cmd tea.Cmd
	r.Buttons[r.Active], cmd = r.Buttons[r.Active].Update(msg)
	return r, cmd
}

// View renders the buttons side by side.
func (r ButtonRow) View() string {
	var s string
	for i, b := range r.Buttons {
		if i > 0 {
			s += "   "
		}
		s += b.View()
	}
	return s
}
