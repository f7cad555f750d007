package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kupu-app/kupu/internal/vocab"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Manage saved vocabulary",
}

var vocabListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved cards with their mastery",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(e *env) error {
			out := cmd.OutOrStdout()
			cards := e.svc.Vocab.List()
			if len(cards) == 0 {
				fmt.Fprintln(out, "No saved cards")
				return nil
			}

			mastery := e.svc.Progress.Record().LearnedByCard
			fmt.Fprintf(out, "%-24s  %-24s  %-24s  %s\n", "ID", "Front", "Back", "Mastery")
			fmt.Fprintln(out, strings.Repeat("─", 84))
			for _, c := range cards {
				fmt.Fprintf(out, "%-24s  %-24s  %-24s  %d/3\n", c.ID, c.Front, c.Back, mastery[c.ID])
			}
			fmt.Fprintf(out, "\n%d cards\n", len(cards))
			return nil
		})
	},
}

var vocabSaveCmd = &cobra.Command{
	Use:   "save <id> <front> [back]",
	Short: "Save a card, replacing any card with the same id",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		card, err := cardFromArgs(args)
		if err != nil {
			return err
		}
		return withEnv(cmd, func(e *env) error {
			e.svc.Vocab.Save(cmd.Context(), card)
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", card.ID)
			return nil
		})
	},
}

var vocabUnsaveCmd = &cobra.Command{
	Use:   "unsave <id>",
	Short: "Remove a saved card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(e *env) error {
			card, ok := e.svc.Vocab.Get(args[0])
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is not saved\n", args[0])
				return nil
			}
			e.svc.Vocab.Unsave(cmd.Context(), card.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s (%s)\n", card.ID, card.Front)
			return nil
		})
	},
}

var vocabToggleCmd = &cobra.Command{
	Use:   "toggle <id> <front> [back]",
	Short: "Save a card if it is not saved, remove it otherwise",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		card, err := cardFromArgs(args)
		if err != nil {
			return err
		}
		return withEnv(cmd, func(e *env) error {
			if e.svc.Vocab.Toggle(cmd.Context(), card) {
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", card.ID)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", card.ID)
			}
			return nil
		})
	},
}

var vocabClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every saved card",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(e *env) error {
			n := e.svc.Vocab.Len()
			e.svc.Vocab.Clear(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cards\n", n)
			return nil
		})
	},
}

func init() {
	vocabCmd.AddCommand(vocabListCmd)
	vocabCmd.AddCommand(vocabSaveCmd)
	vocabCmd.AddCommand(vocabUnsaveCmd)
	vocabCmd.AddCommand(vocabToggleCmd)
	vocabCmd.AddCommand(vocabClearCmd)
}

func cardFromArgs(args []string) (vocab.Card, error) {
	card := vocab.Card{ID: strings.TrimSpace(args[0]), Front: strings.TrimSpace(args[1])}
	if len(args) == 3 {
		card.Back = strings.TrimSpace(args[2])
	}
	if err := card.Validate(); err != nil {
		return vocab.Card{}, err
	}
	return card, nil
}
