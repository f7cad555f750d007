package metrics

import (
	"fmt"
	"time"

	"github.com/kupu-app/kupu/internal/progress"
)

// WeekKey returns the ISO-8601 week label ("2020-W53") for a stored date,
// or "" when date cannot be parsed.
func WeekKey(date string) string {
	t, err := time.Parse(progress.DateLayout, date)
	if err != nil {
		return ""
	}
	return weekKeyOf(t)
}

func weekKeyOf(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// ActiveWeeks returns the week keys with any answer or watch activity.
func ActiveWeeks(r progress.Record) map[string]bool {
	weeks := make(map[string]bool)
	for _, d := range r.History {
		if k := WeekKey(d.Date); k != "" {
			weeks[k] = true
		}
	}
	for _, w := range r.WatchHistory {
		if k := WeekKey(w.Date); k != "" {
			weeks[k] = true
		}
	}
	return weeks
}

// WeeksInARow counts consecutive active weeks walking back from the week
// containing now. An inactive current week yields 0.
func WeeksInARow(r progress.Record, now time.Time) int {
	weeks := ActiveWeeks(r)
	if len(weeks) == 0 {
		return 0
	}
	day, _ := time.Parse(progress.DateLayout, progress.DayKey(now))
	count := 0
	for weeks[weekKeyOf(day)] {
		count++
		day = day.AddDate(0, 0, -7)
	}
	return count
}
