package components

import (
	"fmt"
	"strings"

	"github.com/kupu-app/kupu/internal/metrics"
	"github.com/kupu-app/kupu/internal/ui/theme"
)

var weekdayHeader = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Calendar renders a month grid from metrics.CalendarDays. Active days are
// highlighted and today is underlined.
func Calendar(days []metrics.CalendarDay, today string) string {
	var b strings.Builder
	b.WriteString(theme.Hint.Render(strings.Join(weekdayHeader, " ")))
	b.WriteString("\n")

	for i, d := range days {
		cell := fmt.Sprintf("%2d", d.Day)
		switch {
		case !d.InMonth:
			cell = theme.DayOutside.Render(cell)
		case d.Active:
			cell = theme.DayActive.Render(cell)
		case d.Date == today:
			cell = theme.DayToday.Render(cell)
		default:
			cell = theme.DayIdle.Render(cell)
		}
		b.WriteString(cell)
		if i%7 == 6 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	return b.String()
}
