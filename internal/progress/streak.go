package progress

import "time"

// DateLayout is the calendar-day format used for every stored date.
const DateLayout = "2006-01-02"

// DayKey returns the calendar day of t in t's own location.
func DayKey(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween returns the number of calendar days from a to b.
// ok is false when either date cannot be parsed.
func DaysBetween(a, b string) (days int, ok bool) {
	from, err := time.Parse(DateLayout, a)
	if err != nil {
		return 0, false
	}
	to, err := time.Parse(DateLayout, b)
	if err != nil {
		return 0, false
	}
	// Both parse as UTC midnight, so the difference is a whole number of days.
	return int(to.Sub(from).Hours() / 24), true
}

// AdvanceStreak applies the day-rollover rule shared by every activity
// and returns the streak to store for today.
func AdvanceStreak(r Record, today string) int {
	if r.LastActiveDate == nil {
		return 1
	}
	diff, ok := DaysBetween(*r.LastActiveDate, today)
	if !ok {
		return 1
	}
	switch {
	case diff == 1:
		return r.Streak + 1
	case diff > 1:
		return 1
	default:
		// Same day, or the clock moved backwards.
		return r.Streak
	}
}
