package metrics

import "github.com/kupu-app/kupu/internal/progress"

// InputThresholds are the hour marks at which each input level begins.
var InputThresholds = []float64{0, 50, 150, 300, 600}

// TotalInputHours sums watched media and manually logged outside minutes.
func TotalInputHours(r progress.Record, outsideMinutes float64) float64 {
	secs := 0
	for _, w := range r.WatchHistory {
		secs += w.Seconds
	}
	return (float64(secs) + max(0, outsideMinutes)*60) / 3600
}

// InputLevel returns the highest level whose threshold hours have been
// reached. It is always at least 1.
func InputLevel(hours float64) int {
	level := 1
	for i, t := range InputThresholds {
		if hours >= t {
			level = i + 1
		}
	}
	return level
}

// NextInputThreshold returns the hours needed for the next input level and
// false when the top level has been reached.
func NextInputThreshold(hours float64) (float64, bool) {
	lvl := InputLevel(hours)
	if lvl >= len(InputThresholds) {
		return 0, false
	}
	return InputThresholds[lvl], true
}
