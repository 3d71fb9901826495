package engine

import "wellquest/internal/storage"

// Badge names. Badges are one-way grants: once in the state they are
// never removed.
const (
	BadgeLevelThree    = "Level 3 Achiever"
	BadgeDailyTrio     = "Daily Trio"
	BadgeHydrationHero = "Hydration Hero"
)

// grantBadges evaluates the badge rules after a completion and appends
// any newly earned badges to the state. doneToday is the size of today's
// completed set counted after the just-finished quest was inserted, so
// the third completion of a day is the one that earns the trio badge.
// Returns the badges granted by this call.
func grantBadges(s *storage.ProgressState, q Quest, level, doneToday int) []string {
	var granted []string
	grant := func(name string) {
		if s.HasBadge(name) {
			return
		}
		s.Badges = append(s.Badges, name)
		granted = append(granted, name)
	}

	if level >= 3 {
		grant(BadgeLevelThree)
	}
	if doneToday >= 3 {
		grant(BadgeDailyTrio)
	}
	if q.Tag == TagHydration {
		grant(BadgeHydrationHero)
	}
	return granted
}

// BadgeInfo describes one badge for display, with its earned status.
type BadgeInfo struct {
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// BadgeCatalog returns every badge the player can earn, marked with
// whether this player has it.
func BadgeCatalog(s *storage.ProgressState) []BadgeInfo {
	defs := []BadgeInfo{
		{Name: BadgeLevelThree, Description: "Reach level 3", Icon: "⭐"},
		{Name: BadgeDailyTrio, Description: "Complete 3 quests in one day", Icon: "🎯"},
		{Name: BadgeHydrationHero, Description: "Complete a hydration quest", Icon: "💧"},
	}
	for i := range defs {
		defs[i].Earned = s.HasBadge(defs[i].Name)
	}
	return defs
}
