package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kupu-app/kupu/internal/badges"
	"github.com/kupu-app/kupu/internal/lessons"
	"github.com/kupu-app/kupu/internal/metrics"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(e *env) error {
			rec := e.svc.Progress.Record()
			now := e.svc.Today()
			out := cmd.OutOrStdout()

			level := metrics.Level(rec.XP)
			fmt.Fprintf(out, "%-16s %d (%s) · %d/%d XP to next\n", "Level", level, metrics.LevelTitle(level),
				metrics.LevelProgress(rec.XP), metrics.XPPerLevel)
			fmt.Fprintf(out, "%-16s %d\n", "XP", rec.XP)
			fmt.Fprintf(out, "%-16s %d\n", "Streak", rec.Streak)
			fmt.Fprintf(out, "%-16s %d\n", "Weeks in a row", metrics.WeeksInARow(rec, now))
			fmt.Fprintf(out, "%-16s %d\n", "Answered", rec.TotalAnswered)
			fmt.Fprintf(out, "%-16s %d\n", "Correct", rec.TotalCorrect)
			fmt.Fprintf(out, "%-16s %d%%\n", "Accuracy", metrics.Accuracy(rec))

			goal := metrics.DailyGoal(rec, now)
			fmt.Fprintf(out, "%-16s %d%% of %d min\n", "Daily goal", goal.Percent, rec.GoalMinutes)

			hours := metrics.TotalInputHours(rec, e.svc.Outside.Minutes())
			fmt.Fprintf(out, "%-16s %.1f h (level %d)\n", "Input", hours, metrics.InputLevel(hours))

			fmt.Fprintf(out, "%-16s %d saved · %d queued\n", "Collections", e.svc.Vocab.Len(), e.svc.Queue.Len())

			var unlocked []string
			for _, b := range badges.Unlocked(rec) {
				unlocked = append(unlocked, b.Label)
			}
			if len(unlocked) == 0 {
				unlocked = []string{"none yet"}
			}
			fmt.Fprintf(out, "%-16s %s\n", "Badges", strings.Join(unlocked, ", "))

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Lessons")
			fmt.Fprintln(out, strings.Repeat("─", 30))
			for _, st := range lessons.Statuses(rec) {
				fmt.Fprintf(out, "%-28s %d/%d learned\n", st.Title, st.Learned, st.Total)
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Last 7 days")
			fmt.Fprintln(out, strings.Repeat("─", 30))
			for _, d := range metrics.LastSevenDays(rec, now) {
				fmt.Fprintf(out, "%s %s  %4d XP  %3d answered\n", d.Date, d.Weekday.String()[:3], d.XP, d.Answered)
			}
			return nil
		})
	},
}
