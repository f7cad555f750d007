package metrics

import (
	"math"
	"time"

	"github.com/kupu-app/kupu/internal/progress"
)

// ChartDay is one bar of the weekly XP chart.
type ChartDay struct {
	Date     string
	Weekday  time.Weekday
	XP       int
	Answered int
}

// LastSevenDays returns the seven days ending today, oldest first, with
// days missing from history reported as zero.
func LastSevenDays(r progress.Record, now time.Time) []ChartDay {
	byDate := make(map[string]progress.DayStat, len(r.History))
	for _, d := range r.History {
		s := byDate[d.Date]
		s.Answered += d.Answered
		s.XP += d.XP
		byDate[d.Date] = s
	}

	today, _ := time.Parse(progress.DateLayout, progress.DayKey(now))
	out := make([]ChartDay, 0, 7)
	for i := 6; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		key := d.Format(progress.DateLayout)
		out = append(out, ChartDay{
			Date:     key,
			Weekday:  d.Weekday(),
			XP:       byDate[key].XP,
			Answered: byDate[key].Answered,
		})
	}
	return out
}

// Goal summarises today's watch time against the daily goal.
type Goal struct {
	GoalSec      int
	WatchedSec   int
	Percent      int
	RemainingSec int
}

// Done reports whether the goal has been met.
func (g Goal) Done() bool {
	return g.RemainingSec == 0
}

// DailyGoal reports progress toward today's goal. Watch time from an
// earlier day counts as nothing.
func DailyGoal(r progress.Record, now time.Time) Goal {
	goal := max(1, r.GoalMinutes) * 60
	watched := 0
	if r.IsActiveOn(progress.DayKey(now)) {
		watched = max(0, r.WatchedTodaySec)
	}
	pct := int(math.Round(float64(min(watched, goal)) / float64(goal) * 100))
	return Goal{
		GoalSec:      goal,
		WatchedSec:   watched,
		Percent:      min(100, pct),
		RemainingSec: max(0, goal-watched),
	}
}
