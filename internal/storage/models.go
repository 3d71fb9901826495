package storage

// DefaultDisplayName is used when the player never set a name (or blanked it).
const DefaultDisplayName = "You"

// DefaultAvatarID is the starting avatar, unlocked at level 1.
const DefaultAvatarID = "sprout"

// MoodEntry is one day's mood rating. At most one entry exists per date;
// recording again for the same date replaces the earlier entry.
type MoodEntry struct {
	Date  string `json:"date"`
	Mood  int    `json:"mood"`
	Notes string `json:"notes,omitempty"`
}

// ProgressState is the whole persisted player record, stored as a single
// JSON blob under StateKey. The JSON field names are the on-disk format;
// do not rename them without a migration.
type ProgressState struct {
	XP             int                 `json:"xp"`
	Completed      map[string][]string `json:"completed"`
	MoodLog        []MoodEntry         `json:"moodLog"`
	SelectedAvatar string              `json:"selectedAvatar"`
	Badges         []string            `json:"badges"`
	WeeklyProgress int                 `json:"weeklyProgress"`
	DisplayName    string              `json:"displayName"`
}

// DefaultState returns a fresh ProgressState for first use.
func DefaultState() *ProgressState {
	return &ProgressState{
		Completed:      map[string][]string{},
		MoodLog:        []MoodEntry{},
		SelectedAvatar: DefaultAvatarID,
		Badges:         []string{},
		DisplayName:    DefaultDisplayName,
	}
}

// normalize repairs fields that older or hand-edited blobs may leave unset.
func (s *ProgressState) normalize() {
	if s.Completed == nil {
		s.Completed = map[string][]string{}
	}
	if s.DisplayName == "" {
		s.DisplayName = DefaultDisplayName
	}
	if s.SelectedAvatar == "" {
		s.SelectedAvatar = DefaultAvatarID
	}
}

// CompletedOn returns the quest ids completed on the given date, in
// completion order.
func (s *ProgressState) CompletedOn(date string) []string {
	return s.Completed[date]
}

// IsCompleted reports whether the quest was already completed on the date.
func (s *ProgressState) IsCompleted(date, questID string) bool {
	for _, id := range s.Completed[date] {
		if id == questID {
			return true
		}
	}
	return false
}

// HasBadge reports whether the badge was already granted.
func (s *ProgressState) HasBadge(name string) bool {
	for _, b := range s.Badges {
		if b == name {
			return true
		}
	}
	return false
}
