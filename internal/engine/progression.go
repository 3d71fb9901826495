package engine

// XPPerLevel is the flat XP cost of every level.
const XPPerLevel = 100

// LevelFromXP returns the level for a cumulative XP total. Level 1 begins
// at 0 XP; every XPPerLevel is one level, with no upper bound.
func LevelFromXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// XPToNextLevel returns how much XP remains until the next level.
// Always in [1, XPPerLevel].
func XPToNextLevel(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return XPPerLevel - xp%XPPerLevel
}

// LevelProgress returns the XP earned within the current level, in
// [0, XPPerLevel). Used for progress bars.
func LevelProgress(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp % XPPerLevel
}
