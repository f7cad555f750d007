package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/kupu-app/kupu/internal/metrics"
	"github.com/kupu-app/kupu/internal/ui/theme"
)

// XPChart renders one horizontal bar per day, scaled to the largest day.
func XPChart(days []metrics.ChartDay, width int) string {
	peak := 0
	for _, d := range days {
		peak = max(peak, d.XP)
	}

	barMax := max(4, width-16)
	var b strings.Builder
	for _, d := range days {
		label := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(d.Weekday.String()[:3] + " ")
		n := 0
		if peak > 0 {
			n = d.XP * barMax / peak
		}
		bar := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("█", n))
		b.WriteString(fmt.Sprintf("%s%s %d\n", label, bar, d.XP))
	}
	return b.String()
}
