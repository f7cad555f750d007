package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/kupu-app/kupu/internal/metrics"
	"github.com/kupu-app/kupu/internal/ui/layout"
)

var watchCmd = &cobra.Command{
	Use:   "watch <seconds|duration>",
	Short: "Record watch time toward today's goal",
	Long:  "Record watch time toward today's goal. Accepts plain seconds (\"90\") or a duration (\"12m\", \"1h5m\").",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds, err := parseSeconds(args[0])
		if err != nil {
			return err
		}

		return withEnv(cmd, func(e *env) error {
			rec := e.svc.Progress.RecordWatch(cmd.Context(), seconds)
			goal := metrics.DailyGoal(rec, e.svc.Today())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Watched %s of %s today (%d%%)\n",
				layout.Duration(goal.WatchedSec), layout.Duration(goal.GoalSec), goal.Percent)
			if goal.Done() {
				fmt.Fprintln(out, "Daily goal reached!")
			}
			return nil
		})
	},
}

// parseSeconds accepts a number of seconds or a Go duration string.
func parseSeconds(s string) (float64, error) {
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid watch time %q: want seconds or a duration like 5m", s)
	}
	return d.Seconds(), nil
}
