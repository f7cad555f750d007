package metrics

import (
	"time"

	"github.com/kupu-app/kupu/internal/progress"
)

// CalendarDay is one cell of a month grid.
type CalendarDay struct {
	Date    string
	Day     int
	InMonth bool
	Active  bool
}

// CalendarDays returns a Sunday-to-Saturday grid covering month, padded
// with days from the neighbouring months. Its length is always a multiple
// of seven.
func CalendarDays(r progress.Record, year int, month time.Month) []CalendarDay {
	active := activeDates(r)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))

	var days []CalendarDay
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(progress.DateLayout)
		days = append(days, CalendarDay{
			Date:    key,
			Day:     d.Day(),
			InMonth: d.Month() == first.Month(),
			Active:  active[key],
		})
	}
	return days
}

// ActiveDaysIn counts the active in-month days of a grid.
func ActiveDaysIn(days []CalendarDay) int {
	n := 0
	for _, d := range days {
		if d.InMonth && d.Active {
			n++
		}
	}
	return n
}

func activeDates(r progress.Record) map[string]bool {
	dates := make(map[string]bool, len(r.History)+len(r.WatchHistory))
	for _, d := range r.History {
		dates[d.Date] = true
	}
	for _, w := range r.WatchHistory {
		dates[w.Date] = true
	}
	return dates
}
