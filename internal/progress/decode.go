package progress

import (
	"encoding/json"
	"math"
)

// Decode parses a stored record. Each field is decoded on its own: a field
// with the wrong type falls back to its default while the rest of the
// record is kept. Missing fields are back-filled and unknown fields are
// ignored. An error is returned only when raw is not a JSON object.
func Decode(raw []byte) (Record, error) {
	rec, _, err := decodeRecord(raw)
	return rec, err
}

// decodeRecord is Decode that also reports the fields it had to drop.
func decodeRecord(raw []byte) (Record, []string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Default(), nil, err
	}

	rec := Default()
	var skipped []string
	ints := map[string]*int{
		"totalAnswered":   &rec.TotalAnswered,
		"totalCorrect":    &rec.TotalCorrect,
		"xp":              &rec.XP,
		"streak":          &rec.Streak,
		"goalMinutes":     &rec.GoalMinutes,
		"watchedTodaySec": &rec.WatchedTodaySec,
	}
	for name, dst := range ints {
		v, ok := fields[name]
		if !ok {
			continue
		}
		if n, ok := decodeInt(v); ok {
			*dst = n
		} else {
			skipped = append(skipped, name)
		}
	}

	for name, dst := range map[string]**string{
		"lastActiveDate": &rec.LastActiveDate,
		"lastUpdated":    &rec.LastUpdated,
	} {
		v, ok := fields[name]
		if !ok {
			continue
		}
		var s *string
		if err := json.Unmarshal(v, &s); err != nil {
			skipped = append(skipped, name)
			continue
		}
		*dst = s
	}

	if v, ok := fields["history"]; ok {
		if !decodeList(v, &rec.History) {
			skipped = append(skipped, "history")
		}
	}
	if v, ok := fields["watchHistory"]; ok {
		if !decodeList(v, &rec.WatchHistory) {
			skipped = append(skipped, "watchHistory")
		}
	}

	if v, ok := fields["learnedByCard"]; ok {
		var m map[string]json.RawMessage
		if err := json.Unmarshal(v, &m); err != nil {
			skipped = append(skipped, "learnedByCard")
		}
		for card, mv := range m {
			if n, ok := decodeInt(mv); ok {
				rec.LearnedByCard[card] = n
			}
		}
	}
	if v, ok := fields["lessonProgress"]; ok {
		var m map[string]json.RawMessage
		if err := json.Unmarshal(v, &m); err != nil {
			skipped = append(skipped, "lessonProgress")
		}
		for lesson, lv := range m {
			var lp LessonProgress
			if err := json.Unmarshal(lv, &lp); err == nil {
				rec.LessonProgress[lesson] = lp
			}
		}
	}

	return rec.Normalize(), skipped, nil
}

// decodeInt accepts any JSON number and rounds it down. null, strings and
// other types are rejected.
func decodeInt(raw json.RawMessage) (int, bool) {
	var f *float64
	if err := json.Unmarshal(raw, &f); err != nil || f == nil {
		return 0, false
	}
	if math.IsNaN(*f) || math.IsInf(*f, 0) || math.Abs(*f) > math.MaxInt32 {
		return 0, false
	}
	return int(math.Floor(*f)), true
}

// decodeList decodes a JSON array element by element into dst, dropping
// elements that do not match. It reports false when raw is not an array.
func decodeList[T any](raw json.RawMessage, dst *[]T) bool {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return false
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		var v T
		if err := json.Unmarshal(item, &v); err == nil {
			out = append(out, v)
		}
	}
	*dst = out
	return true
}
