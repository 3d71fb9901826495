package engine

import "wellquest/internal/storage"

// MoodBand buckets the recent mood average into a suggestion pool.
type MoodBand string

const (
	BandLow    MoodBand = "low"
	BandSteady MoodBand = "steady"
	BandHigh   MoodBand = "high"
)

// MaxSuggestions caps how many bonus quests are offered per day.
const MaxSuggestions = 3

// Band thresholds: below lowCutoff is the low band, at or above
// highCutoff is the high band, everything between is steady.
const (
	lowCutoff  = 3.0
	highCutoff = 3.5
)

// MiniGameQuest is the breathing mini-game's quest. It lives in the
// low-mood pool and is also completed directly when the mini-game ends.
var MiniGameQuest = Quest{
	ID:          "mini-arcade",
	Title:       "Play the bubble-breath mini-game",
	Description: "Tap to pace your breath with bubbles.",
	Tag:         TagMiniGame,
	XP:          20,
}

// The three suggestion pools are fixed, hand-authored sets. Ids are
// disjoint from each other and from the daily catalog.
var (
	lowPool = []Quest{
		{ID: "dance", Title: "2-song dance break", Description: "Pick two upbeat songs and move!", Tag: "movement", XP: 15},
		MiniGameQuest,
		{ID: "grat3", Title: "3 tiny wins list", Description: "Write three small wins from today.", Tag: "gratitude", XP: 18},
	}
	highPool = []Quest{
		{ID: "focus10", Title: "10-minute pomodoro", Description: "Push a focused mini sprint.", Tag: "focus", XP: 12},
		{ID: "walk-view", Title: "Scenery walk pic", Description: "Walk 10 minutes and snap a sky/plant pic.", Tag: "movement", XP: 15},
		{ID: "kindness", Title: "Send a kind text", Description: "Cheer someone on today.", Tag: "connection", XP: 10},
	}
	steadyPool = []Quest{
		{ID: "box-breath", Title: "Box breathing 4x4", Description: "Inhale-hold-exhale-hold, 4 counts each.", Tag: "breathing", XP: 15},
		{ID: "hydrate2", Title: "Two glasses of water", Description: "Hydrate and log it.", Tag: TagHydration, XP: 10},
		{ID: "grat-snap", Title: "Photo gratitude", Description: "Capture one thing you appreciate.", Tag: "gratitude", XP: 12},
	}
)

// BandForAverage maps a recent mood average to its band.
func BandForAverage(avg float64) MoodBand {
	switch {
	case avg < lowCutoff:
		return BandLow
	case avg >= highCutoff:
		return BandHigh
	default:
		return BandSteady
	}
}

// PoolForBand returns the fixed candidate pool for a band.
func PoolForBand(b MoodBand) []Quest {
	switch b {
	case BandLow:
		return lowPool
	case BandHigh:
		return highPool
	default:
		return steadyPool
	}
}

// SuggestQuests picks up to MaxSuggestions bonus quests for today: the
// pool for the recent-mood band, minus anything already completed today,
// pool order preserved. Purely rule-based; the same mood log and
// completed set always yield the same sequence.
func SuggestQuests(log []storage.MoodEntry, completedToday map[string]bool) []Quest {
	pool := PoolForBand(BandForAverage(RecentAverage(log, MoodWindow)))

	var out []Quest
	for _, q := range pool {
		if completedToday[q.ID] {
			continue
		}
		out = append(out, q)
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}
