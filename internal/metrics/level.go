// Package metrics derives read-only figures from a progress record. Nothing
// here is persisted; every value is recomputed on read.
package metrics

import (
	"math"

	"github.com/kupu-app/kupu/internal/progress"
)

// XPPerLevel is the XP needed to advance one level.
const XPPerLevel = 200

var levelTitles = []string{"Kākano", "Akonga", "Kaiako", "Pouako", "Tohunga"}

// Accuracy returns the rounded percentage of correct answers, 0 when
// nothing has been answered.
func Accuracy(r progress.Record) int {
	if r.TotalAnswered <= 0 {
		return 0
	}
	pct := int(math.Round(100 * float64(r.TotalCorrect) / float64(r.TotalAnswered)))
	return min(max(pct, 0), 100)
}

// Level returns the 1-based level for xp.
func Level(xp int) int {
	return max(0, xp)/XPPerLevel + 1
}

// LevelProgress returns the XP earned inside the current level.
func LevelProgress(xp int) int {
	return max(0, xp) % XPPerLevel
}

// LevelTitle names a level. Levels past the last title keep the last title.
func LevelTitle(level int) string {
	i := min(max(level, 1), len(levelTitles)) - 1
	return levelTitles[i]
}
