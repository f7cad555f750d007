package metrics

import (
	"cmp"
	"slices"

	"github.com/kupu-app/kupu/internal/progress"
)

// ActivityDay merges the practice and watch entries recorded for one date.
type ActivityDay struct {
	Date       string
	Answered   int
	Correct    int
	XP         int
	WatchedSec int
}

// Accuracy returns the day's correct percentage rounded down.
func (d ActivityDay) Accuracy() int {
	if d.Answered == 0 {
		return 0
	}
	return d.Correct * 100 / d.Answered
}

// ActivityLog returns every active day, newest first. Duplicate entries for
// a date are summed.
func ActivityLog(r progress.Record) []ActivityDay {
	byDate := make(map[string]*ActivityDay)
	get := func(date string) *ActivityDay {
		d, ok := byDate[date]
		if !ok {
			d = &ActivityDay{Date: date}
			byDate[date] = d
		}
		return d
	}
	for _, h := range r.History {
		d := get(h.Date)
		d.Answered += h.Answered
		d.Correct += h.Correct
		d.XP += h.XP
	}
	for _, w := range r.WatchHistory {
		get(w.Date).WatchedSec += w.Seconds
	}

	out := make([]ActivityDay, 0, len(byDate))
	for _, d := range byDate {
		out = append(out, *d)
	}
	slices.SortFunc(out, func(a, b ActivityDay) int {
		return cmp.Compare(b.Date, a.Date)
	})
	return out
}
