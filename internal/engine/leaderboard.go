package engine

import "sort"

// LeaderboardSize caps the displayed board.
const LeaderboardSize = 5

// LeaderboardRow is one ranked line of the board, computed at display
// time and never persisted. You marks the live player's row.
type LeaderboardRow struct {
	Rank int
	Name string
	XP   int
	You  bool
}

// Leaderboard merges the static peers with the live player entry, ranks
// by XP descending and truncates to LeaderboardSize. The sort is stable:
// ties keep their original relative order, with the player's row last
// among equals.
func Leaderboard(peers []Peer, name string, xp int) []LeaderboardRow {
	rows := make([]LeaderboardRow, 0, len(peers)+1)
	for _, p := range peers {
		rows = append(rows, LeaderboardRow{Name: p.Name, XP: p.XP})
	}
	rows = append(rows, LeaderboardRow{Name: name, XP: xp, You: true})

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].XP > rows[j].XP })
	if len(rows) > LeaderboardSize {
		rows = rows[:LeaderboardSize]
	}
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}
