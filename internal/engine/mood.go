package engine

import "wellquest/internal/storage"

const (
	MoodMin = 1
	MoodMax = 5

	// MoodNeutral stands in whenever no rating exists.
	MoodNeutral = 3

	// MoodWindow is how many recorded entries feed the rolling average.
	MoodWindow = 7
)

// ClampMood forces a rating into [MoodMin, MoodMax].
func ClampMood(mood int) int {
	if mood < MoodMin {
		return MoodMin
	}
	if mood > MoodMax {
		return MoodMax
	}
	return mood
}

// RecordMood returns the log with the given day's entry set. An existing
// entry for the date is replaced (last write wins per day); otherwise the
// entry is appended. Out-of-range moods are clamped rather than rejected,
// so the ledger never holds a value outside [MoodMin, MoodMax].
func RecordMood(log []storage.MoodEntry, date string, mood int, notes string) []storage.MoodEntry {
	out := make([]storage.MoodEntry, 0, len(log)+1)
	for _, e := range log {
		if e.Date != date {
			out = append(out, e)
		}
	}
	return append(out, storage.MoodEntry{Date: date, Mood: ClampMood(mood), Notes: notes})
}

// RecentAverage averages the mood of the last window *recorded* entries
// (not calendar days; unlogged days are skipped). An empty log averages
// to MoodNeutral.
func RecentAverage(log []storage.MoodEntry, window int) float64 {
	if len(log) == 0 || window <= 0 {
		return float64(MoodNeutral)
	}
	start := len(log) - window
	if start < 0 {
		start = 0
	}
	recent := log[start:]
	sum := 0
	for _, e := range recent {
		sum += e.Mood
	}
	return float64(sum) / float64(len(recent))
}

// MoodOn returns the rating recorded for the date, or MoodNeutral when
// the day has no entry.
func MoodOn(log []storage.MoodEntry, date string) int {
	for _, e := range log {
		if e.Date == date {
			return e.Mood
		}
	}
	return MoodNeutral
}
