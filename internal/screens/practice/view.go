package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/kupu-app/kupu/internal/session"
	"github.com/kupu-app/kupu/internal/ui/components"
	"github.com/kupu-app/kupu/internal/ui/layout"
	"github.com/kupu-app/kupu/internal/ui/theme"
)

func (p *PracticeScreen) View(width, height int) string {
	switch {
	case p.empty():
		return renderEmpty(width)
	case p.confirmQuit:
		return renderQuitConfirm(width)
	}
	return p.renderCard(width)
}

// renderCard renders the deck status line and the current card.
func (p *PracticeScreen) renderCard(width int) string {
	slot := p.state.Current()
	if slot == nil {
		return ""
	}
	cw := components.ContentWidth(width)

	var b strings.Builder

	star := lipgloss.NewStyle().Foreground(theme.TextDim).Render("☆")
	if p.currentSaved() {
		star = lipgloss.NewStyle().Foreground(theme.Accent).Render("★")
	}
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Card %d/%d", p.state.Index+1, len(p.state.Plan.Slots))) + "  " + star
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d  %s +%d XP",
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			p.state.TotalCorrect,
			lipgloss.NewStyle().Foreground(theme.Accent).Render("✦"),
			p.state.XPGained,
		))

	infoLine := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4; pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(0, width-4))))
	b.WriteString("\n\n")

	caption := string(slot.Category)
	if p.state.Phase == sess.PhaseBack {
		b.WriteString(layout.Centered(width, components.Flashcard(slot.Card.Back, slot.Card.Front, true, cw)))
		b.WriteString("\n\n")
		b.WriteString(layout.Centered(width, p.verdict.View()))
		return b.String()
	}

	b.WriteString(layout.Centered(width, components.Flashcard(slot.Card.Front, caption, false, cw)))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(width, theme.Hint.Render("Press space to reveal")))
	return b.String()
}

func renderEmpty(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("No saved words yet"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Save some with `kupu vocab save <id> <front> <back>`."))
	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End practice early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answers so far are already saved."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end practice"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}
