package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Manage the watch queue",
}

var queueListCmd = &cobra.Command{
	Use:   "list",
	Short: "List queued media ids in the order they were added",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(e *env) error {
			out := cmd.OutOrStdout()
			ids := e.svc.Queue.List()
			if len(ids) == 0 {
				fmt.Fprintln(out, "Queue is empty")
				return nil
			}
			for i, id := range ids {
				fmt.Fprintf(out, "%3d. %s\n", i+1, id)
			}
			return nil
		})
	},
}

var queueAddCmd = &cobra.Command{
	Use:   "add <id>...",
	Short: "Queue media ids",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(e *env) error {
			for _, id := range args {
				e.svc.Queue.Add(cmd.Context(), id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d queued\n", e.svc.Queue.Len())
			return nil
		})
	},
}

var queueRemoveCmd = &cobra.Command{
	Use:   "remove <id>...",
	Short: "Remove media ids from the queue",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(e *env) error {
			for _, id := range args {
				e.svc.Queue.Remove(cmd.Context(), id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d queued\n", e.svc.Queue.Len())
			return nil
		})
	},
}

var queueToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Queue an id if absent, remove it otherwise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(e *env) error {
			if e.svc.Queue.Toggle(cmd.Context(), args[0]) {
				fmt.Fprintf(cmd.OutOrStdout(), "Queued %s\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			}
			return nil
		})
	},
}

var queueClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the queue",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(e *env) error {
			e.svc.Queue.Clear(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Queue cleared")
			return nil
		})
	},
}

func init() {
	queueCmd.AddCommand(queueListCmd)
	queueCmd.AddCommand(queueAddCmd)
	queueCmd.AddCommand(queueRemoveCmd)
	queueCmd.AddCommand(queueToggleCmd)
	queueCmd.AddCommand(queueClearCmd)
}
