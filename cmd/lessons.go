package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kupu-app/kupu/internal/lessons"
	"github.com/kupu-app/kupu/internal/progress"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons [lesson-id]",
	Short: "List built-in lessons, or the cards of one lesson",
	Long: `Without an argument, list every built-in lesson with its learned count.
With a lesson id, list that lesson's cards and their mastery. Answers are
recorded with: kupu answer correct --lesson <lesson-id> --card <card-id>`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var lesson lessons.Lesson
		if len(args) == 1 {
			l, ok := lessons.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown lesson %q", args[0])
			}
			lesson = l
		}

		return withEnv(cmd, func(e *env) error {
			rec := e.svc.Progress.Record()
			out := cmd.OutOrStdout()
			if lesson.ID == "" {
				for _, l := range lessons.All() {
					lp := rec.LessonProgress[l.ID]
					fmt.Fprintf(out, "%-10s %-28s %d/%d learned\n", l.ID, l.Title, lp.Learned, len(l.Cards))
				}
				return nil
			}

			fmt.Fprintln(out, lesson.Title)
			for _, c := range lesson.Cards {
				mark := " "
				if rec.LearnedByCard[c.ID] >= progress.LearnedThreshold {
					mark = "✓"
				}
				fmt.Fprintf(out, "%s %-12s %-14s %s\n", mark, c.ID, c.Front, c.Back)
			}
			return nil
		})
	},
}
