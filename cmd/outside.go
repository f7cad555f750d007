package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kupu-app/kupu/internal/metrics"
)

var outsideCmd = &cobra.Command{
	Use:   "outside",
	Short: "Show or change minutes of input logged outside the app",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(e *env) error {
			printOutside(cmd, e)
			return nil
		})
	},
}

var outsideAddCmd = &cobra.Command{
	Use:   "add <minutes>",
	Short: "Add outside minutes",
	Long:  "Add outside minutes. Negative values subtract (pass them after --), and the total never drops below zero.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, err := parseMinutes(args[0])
		if err != nil {
			return err
		}
		return withEnv(cmd, func(e *env) error {
			e.svc.Outside.Add(cmd.Context(), minutes)
			printOutside(cmd, e)
			return nil
		})
	},
}

var outsideSetCmd = &cobra.Command{
	Use:   "set <minutes>",
	Short: "Set the outside minutes total",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, err := parseMinutes(args[0])
		if err != nil {
			return err
		}
		return withEnv(cmd, func(e *env) error {
			e.svc.Outside.Set(cmd.Context(), minutes)
			printOutside(cmd, e)
			return nil
		})
	},
}

var outsideClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset outside minutes to zero",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(e *env) error {
			e.svc.Outside.Clear(cmd.Context())
			printOutside(cmd, e)
			return nil
		})
	},
}

func init() {
	outsideCmd.AddCommand(outsideAddCmd)
	outsideCmd.AddCommand(outsideSetCmd)
	outsideCmd.AddCommand(outsideClearCmd)
}

func parseMinutes(s string) (float64, error) {
	m, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid minutes %q: %w", s, err)
	}
	return m, nil
}

func printOutside(cmd *cobra.Command, e *env) {
	minutes := e.svc.Outside.Minutes()
	hours := metrics.TotalInputHours(e.svc.Progress.Record(), minutes)
	fmt.Fprintf(cmd.OutOrStdout(), "Outside: %g min · total input %.1f h (level %d)\n",
		minutes, hours, metrics.InputLevel(hours))
}
