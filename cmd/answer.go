package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kupu-app/kupu/internal/badges"
	"github.com/kupu-app/kupu/internal/progress"
)

var answerCmd = &cobra.Command{
	Use:       "answer correct|wrong",
	Short:     "Record one flashcard answer",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"correct", "wrong"},
	RunE: func(cmd *cobra.Command, args []string) error {
		card, _ := cmd.Flags().GetString("card")
		lesson, _ := cmd.Flags().GetString("lesson")
		if lesson != "" && card == "" {
			return fmt.Errorf("--lesson needs --card")
		}

		return withEnv(cmd, func(e *env) error {
			a := progress.Answer{Correct: args[0] == "correct", CardID: card, LessonID: lesson}
			before := e.svc.Progress.Record()
			rec := e.svc.Progress.RecordAnswer(cmd.Context(), a)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "+%d XP  (total %d XP, streak %d)\n", progress.XPFor(a.Correct), rec.XP, rec.Streak)
			if card != "" {
				fmt.Fprintf(out, "%s mastery %d/%d\n", card, rec.LearnedByCard[card], progress.MaxCardMastery)
			}
			if lesson != "" {
				lp := rec.LessonProgress[lesson]
				fmt.Fprintf(out, "lesson %s: %d/%d learned\n", lesson, lp.Learned, lp.Total)
			}
			for _, b := range badges.Earned(before, rec) {
				fmt.Fprintf(out, "%s Badge unlocked: %s\n", b.Kind.Icon(), b.Label)
			}
			return nil
		})
	},
}

func init() {
	answerCmd.Flags().String("card", "", "Card id the answer belongs to")
	answerCmd.Flags().String("lesson", "", "Lesson id the card belongs to")
}
