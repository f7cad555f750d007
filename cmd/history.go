package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kupu-app/kupu/internal/metrics"
	"github.com/kupu-app/kupu/internal/ui/layout"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past active days, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyLimit < 0 {
			return fmt.Errorf("--limit must not be negative")
		}
		return withEnv(cmd, func(e *env) error {
			days := metrics.ActivityLog(e.svc.Progress.Record())
			out := cmd.OutOrStdout()
			if len(days) == 0 {
				fmt.Fprintln(out, "No activity yet.")
				return nil
			}
			if historyLimit > 0 && len(days) > historyLimit {
				days = days[:historyLimit]
			}
			for _, d := range days {
				fmt.Fprintf(out, "%s  %3d answered  %3d%%  %4d XP  watched %s\n",
					d.Date, d.Answered, d.Accuracy(), d.XP, layout.Duration(d.WatchedSec))
			}
			return nil
		})
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "show at most n days (0 shows all)")
}
