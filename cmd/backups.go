package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var backupsCmd = &cobra.Command{
	Use:   "backups",
	Short: "List and restore snapshots taken before resets and imports",
}

var backupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List snapshots, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(e *env) error {
			out := cmd.OutOrStdout()
			snaps, err := e.backup.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(snaps) == 0 {
				fmt.Fprintln(out, "No backups")
				return nil
			}
			fmt.Fprintf(out, "%-36s  %-20s  %-24s  %s\n", "ID", "Created", "Key", "Reason")
			fmt.Fprintln(out, strings.Repeat("─", 94))
			for _, s := range snaps {
				fmt.Fprintf(out, "%-36s  %-20s  %-24s  %s\n",
					s.ID, s.CreatedAt.Local().Format("2006-01-02 15:04:05"), s.Key, s.Reason)
			}
			return nil
		})
	},
}

var restoreLatest bool

var backupsRestoreCmd = &cobra.Command{
	Use:   "restore <id> | --latest",
	Short: "Restore a snapshot over its storage entry",
	Args: func(cmd *cobra.Command, args []string) error {
		if restoreLatest {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(e *env) error {
			if restoreLatest {
				snaps, err := e.backup.RestoreLatest(cmd.Context())
				if err != nil {
					return err
				}
				for _, snap := range snaps {
					fmt.Fprintf(cmd.OutOrStdout(), "Restored %s from %s\n",
						snap.Key, snap.CreatedAt.Local().Format("2006-01-02 15:04:05"))
				}
				return nil
			}

			snap, err := e.backup.Restore(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored %s from %s\n",
				snap.Key, snap.CreatedAt.Local().Format("2006-01-02 15:04:05"))
			return nil
		})
	},
}

func init() {
	backupsCmd.AddCommand(backupsListCmd)
	backupsCmd.AddCommand(backupsRestoreCmd)

	backupsRestoreCmd.Flags().BoolVar(&restoreLatest, "latest", false, "restore the most recent snapshot of each store")
}
