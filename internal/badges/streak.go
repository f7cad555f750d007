package badges

var streakMilestones = []int{3, 7, 30}

// NextStreakMilestone returns the next streak badge threshold above current.
// ok is false once every streak badge has been earned.
func NextStreakMilestone(current int) (next int, ok bool) {
	for _, m := range streakMilestones {
		if m > current {
			return m, true
		}
	}
	return 0, false
}
