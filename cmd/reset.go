package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner data",
	Long: "Reset the progress record to its defaults. A snapshot is written first; " +
		"use `kupu backups list` and `kupu backups restore <id>` to undo.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		return withEnv(cmd, func(e *env) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if all {
				snaps, err := e.backup.Snapshot(ctx, "reset")
				if err != nil {
					return fmt.Errorf("snapshot before reset: %w", err)
				}
				e.svc.Progress.Reset(ctx)
				e.svc.Vocab.Clear(ctx)
				e.svc.Queue.Clear(ctx)
				e.svc.Outside.Clear(ctx)
				fmt.Fprintf(out, "All data reset (%d snapshots saved)\n", len(snaps))
				return nil
			}

			if _, err := e.backup.ResetProgress(ctx); err != nil {
				return fmt.Errorf("reset progress: %w", err)
			}
			fmt.Fprintln(out, "Progress reset")
			return nil
		})
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Also clear saved vocabulary, the queue and outside minutes")
}
