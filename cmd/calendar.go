package cmd

import (
	"fmt"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/kupu-app/kupu/internal/metrics"
	"github.com/kupu-app/kupu/internal/progress"
	"github.com/kupu-app/kupu/internal/ui/components"
	"github.com/kupu-app/kupu/internal/ui/layout"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar [YYYY-MM]",
	Short: "Show the activity calendar for a month",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var month time.Time
		if len(args) == 1 {
			m, err := time.Parse("2006-01", args[0])
			if err != nil {
				return fmt.Errorf("invalid month %q: want YYYY-MM", args[0])
			}
			month = m
		}

		return withEnv(cmd, func(e *env) error {
			now := e.svc.Today()
			if month.IsZero() {
				month = now
			}
			days := metrics.CalendarDays(e.svc.Progress.Record(), month.Year(), month.Month())

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, month.Format("January 2006"))
			// Fprint strips colour when out is not a terminal.
			lipgloss.Fprint(out, components.Calendar(days, progress.DayKey(now)))
			fmt.Fprintf(out, "%s active\n", layout.Days(metrics.ActiveDaysIn(days)))
			return nil
		})
	},
}
