package progress

// Goal bounds for the daily watch goal, in minutes.
const (
	MinGoalMinutes     = 5
	MaxGoalMinutes     = 180
	DefaultGoalMinutes = 15
)

// MaxCardMastery is the saturation point of the per-card mastery counter.
const MaxCardMastery = 3

// LearnedThreshold is the mastery level at which a card counts as learned
// for its lesson.
const LearnedThreshold = 2

// DayStat aggregates answer activity for one calendar day.
type DayStat struct {
	Date     string `json:"date"`
	Answered int    `json:"answered"`
	Correct  int    `json:"correct"`
	XP       int    `json:"xp"`
}

// WatchDay aggregates watch time for one calendar day.
type WatchDay struct {
	Date    string `json:"date"`
	Seconds int    `json:"seconds"`
}

// LessonProgress counts learned cards for a lesson. Total is a best-effort
// count of distinct cards answered and may drift; see RecordAnswer.
type LessonProgress struct {
	Learned int `json:"learned"`
	Total   int `json:"total"`
}

// Record is the single persisted progress document for a learner.
type Record struct {
	TotalAnswered   int                       `json:"totalAnswered"`
	TotalCorrect    int                       `json:"totalCorrect"`
	XP              int                       `json:"xp"`
	Streak          int                       `json:"streak"`
	LastActiveDate  *string                   `json:"lastActiveDate"`
	LastUpdated     *string                   `json:"lastUpdated"`
	History         []DayStat                 `json:"history"`
	WatchHistory    []WatchDay                `json:"watchHistory"`
	LearnedByCard   map[string]int            `json:"learnedByCard"`
	LessonProgress  map[string]LessonProgress `json:"lessonProgress"`
	GoalMinutes     int                       `json:"goalMinutes"`
	WatchedTodaySec int                       `json:"watchedTodaySec"`
}

// Default returns the all-zero record a learner starts with.
func Default() Record {
	return Record{
		History:        []DayStat{},
		WatchHistory:   []WatchDay{},
		LearnedByCard:  map[string]int{},
		LessonProgress: map[string]LessonProgress{},
		GoalMinutes:    DefaultGoalMinutes,
	}
}

// IsActiveOn reports whether the record's last active day is date.
func (r Record) IsActiveOn(date string) bool {
	return r.LastActiveDate != nil && *r.LastActiveDate == date
}

// Clone returns a deep copy so transitions never alias the caller's data.
func (r Record) Clone() Record {
	out := r
	if r.LastActiveDate != nil {
		d := *r.LastActiveDate
		out.LastActiveDate = &d
	}
	if r.LastUpdated != nil {
		u := *r.LastUpdated
		out.LastUpdated = &u
	}
	out.History = append(make([]DayStat, 0, len(r.History)+1), r.History...)
	out.WatchHistory = append(make([]WatchDay, 0, len(r.WatchHistory)+1), r.WatchHistory...)
	out.LearnedByCard = make(map[string]int, len(r.LearnedByCard))
	for k, v := range r.LearnedByCard {
		out.LearnedByCard[k] = v
	}
	out.LessonProgress = make(map[string]LessonProgress, len(r.LessonProgress))
	for k, v := range r.LessonProgress {
		out.LessonProgress[k] = v
	}
	return out
}

// Normalize back-fills fields an older schema did not write and repairs
// values outside their documented ranges.
func (r Record) Normalize() Record {
	out := r.Clone()
	out.TotalAnswered = max(0, out.TotalAnswered)
	out.TotalCorrect = min(max(0, out.TotalCorrect), out.TotalAnswered)
	out.XP = max(0, out.XP)
	out.Streak = max(0, out.Streak)
	out.WatchedTodaySec = max(0, out.WatchedTodaySec)
	out.GoalMinutes = clampGoal(out.GoalMinutes)
	if out.LastActiveDate != nil && *out.LastActiveDate == "" {
		out.LastActiveDate = nil
	}
	if out.LastUpdated != nil && *out.LastUpdated == "" {
		out.LastUpdated = nil
	}
	for card, n := range out.LearnedByCard {
		out.LearnedByCard[card] = min(max(0, n), MaxCardMastery)
	}
	return out
}

func clampGoal(minutes int) int {
	return min(max(minutes, MinGoalMinutes), MaxGoalMinutes)
}
