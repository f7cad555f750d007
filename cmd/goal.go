package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kupu-app/kupu/internal/metrics"
	"github.com/kupu-app/kupu/internal/ui/layout"
)

var goalCmd = &cobra.Command{
	Use:   "goal [minutes]",
	Short: "Show or set the daily watch goal",
	Long:  "Show today's progress toward the daily watch goal, or set the goal. Values are clamped to 5-180 minutes.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var minutes float64
		if len(args) == 1 {
			m, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid minutes %q: %w", args[0], err)
			}
			minutes = m
		}

		return withEnv(cmd, func(e *env) error {
			out := cmd.OutOrStdout()
			rec := e.svc.Progress.Record()
			if len(args) == 1 {
				rec = e.svc.Progress.SetGoalMinutes(cmd.Context(), minutes)
				fmt.Fprintf(out, "Daily goal set to %d minutes\n", rec.GoalMinutes)
			}

			goal := metrics.DailyGoal(rec, e.svc.Today())
			fmt.Fprintf(out, "Today: %s of %d minutes (%d%%)", layout.Duration(goal.WatchedSec), rec.GoalMinutes, goal.Percent)
			if goal.Done() {
				fmt.Fprint(out, " - goal reached")
			} else {
				fmt.Fprintf(out, " - %s to go", layout.Duration(goal.RemainingSec))
			}
			fmt.Fprintln(out)
			return nil
		})
	},
}
