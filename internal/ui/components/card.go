package components

import (
	"charm.land/lipgloss/v2"

	"github.com/kupu-app/kupu/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for boxed sections.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 64)
}

// Panel wraps content in a rounded-border box at the given content width.
func Panel(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 1).
		Render(content)
}

// Flashcard renders one side of a card, centred in a tall box. The back
// side is highlighted.
func Flashcard(text, caption string, back bool, cw int) string {
	border := theme.Border
	fg := theme.Text
	if back {
		border = theme.Primary
		fg = theme.Primary
	}
	body := lipgloss.NewStyle().Bold(true).Foreground(fg).Render(text)
	if caption != "" {
		body += "\n\n" + theme.Hint.Render(caption)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(2, 2).
		Render(body)
}
