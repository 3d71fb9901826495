package engine

// Quest is one completable wellness activity. A quest comes either from
// the fixed daily catalog or from the mood-driven suggestion pools; ids
// are unique across both.
type Quest struct {
	ID          string `toml:"id"`
	Title       string `toml:"title"`
	XP          int    `toml:"xp"`
	Tag         string `toml:"tag"`
	Description string `toml:"description,omitempty"`
}

// Tags the workflow branches on. The remaining tags (movement, gratitude,
// sleep, ...) are display labels only.
const (
	TagHydration = "hydration"
	TagMiniGame  = "mini-game"
)

// DefaultQuestXP is awarded when a quest carries no XP value.
const DefaultQuestXP = 12

// Avatar is a selectable player glyph, unlocked at MinLevel.
type Avatar struct {
	ID       string `toml:"id"`
	Name     string `toml:"name"`
	MinLevel int    `toml:"min_level"`
	Emoji    string `toml:"emoji"`
}

// Peer is a static leaderboard entry merged with the live player row.
type Peer struct {
	Name string `toml:"name"`
	XP   int    `toml:"xp"`
}

// Catalog bundles the static configuration the engine runs against.
type Catalog struct {
	Quests  []Quest
	Avatars []Avatar
	Peers   []Peer
}

// Quest returns the catalog quest with the given id, or nil.
func (c Catalog) Quest(id string) *Quest {
	for i := range c.Quests {
		if c.Quests[i].ID == id {
			return &c.Quests[i]
		}
	}
	return nil
}

// Avatar returns the avatar with the given id, or nil.
func (c Catalog) Avatar(id string) *Avatar {
	for i := range c.Avatars {
		if c.Avatars[i].ID == id {
			return &c.Avatars[i]
		}
	}
	return nil
}

// UnlockedAvatars returns the avatars available at the given level,
// catalog order preserved.
func (c Catalog) UnlockedAvatars(level int) []Avatar {
	var out []Avatar
	for _, a := range c.Avatars {
		if a.MinLevel <= level {
			out = append(out, a)
		}
	}
	return out
}
