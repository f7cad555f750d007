package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace every store with the contents of an exported bundle",
	Long: "Validate a bundle written by `kupu export` and replace every store with it. " +
		"Current data is snapshotted first. Use - to read from stdin.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(cmd, args[0])
		if err != nil {
			return err
		}
		return withEnv(cmd, func(e *env) error {
			b, err := e.backup.Import(cmd.Context(), raw)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d cards, %d queued, %g outside minutes\n",
				len(b.Vocab), len(b.Queue), b.OutsideMinutes)
			return nil
		})
	},
}

func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return raw, nil
	}
	raw, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read bundle: %w", err)
	}
	return raw, nil
}
