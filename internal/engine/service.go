package engine

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"wellquest/internal/storage"
)

// DateLayout is the calendar-day key format used throughout the state.
const DateLayout = "2006-01-02"

// Service is the single entry point for every state transition. All
// mutations flow through it, are applied to the loaded ProgressState and
// written back before returning.
type Service struct {
	states  *storage.StateRepo
	catalog Catalog

	// now is swappable so tests can pin the current day.
	now func() time.Time
}

func NewService(db *sql.DB, cat Catalog) *Service {
	return &Service{
		states:  storage.NewStateRepo(db),
		catalog: cat,
		now:     time.Now,
	}
}

func (s *Service) States() *storage.StateRepo { return s.states }
func (s *Service) Catalog() Catalog           { return s.catalog }

// Today returns the current calendar day in DateLayout.
func (s *Service) Today() string {
	return s.now().UTC().Format(DateLayout)
}

// saveState persists the state best-effort. A failed write is logged and
// otherwise ignored: the in-memory state stays correct for this session
// and the next successful save reconciles.
func (s *Service) saveState(ctx context.Context, st *storage.ProgressState) {
	if err := s.states.Save(ctx, st); err != nil {
		slog.Error("persist state", slog.Any("error", err))
	}
}

// LogMood records today's mood (clamped into [MoodMin, MoodMax]) with an
// optional note, replacing any earlier entry for today. Returns the
// recorded value.
func (s *Service) LogMood(ctx context.Context, mood int, notes string) (int, error) {
	st, err := s.states.Load(ctx)
	if err != nil {
		return 0, err
	}
	recorded := ClampMood(mood)
	st.MoodLog = RecordMood(st.MoodLog, s.Today(), recorded, notes)
	s.saveState(ctx, st)
	return recorded, nil
}

// Suggestions returns today's mood-banded bonus quests, minus anything
// already completed today.
func (s *Service) Suggestions(ctx context.Context) ([]Quest, error) {
	st, err := s.states.Load(ctx)
	if err != nil {
		return nil, err
	}
	return SuggestQuests(st.MoodLog, s.completedSet(st)), nil
}

// FindQuest resolves an id against the daily catalog, then against
// today's suggestions. Returns nil when the id matches neither.
func (s *Service) FindQuest(ctx context.Context, id string) (*Quest, error) {
	if q := s.catalog.Quest(id); q != nil {
		return q, nil
	}
	suggested, err := s.Suggestions(ctx)
	if err != nil {
		return nil, err
	}
	for i := range suggested {
		if suggested[i].ID == id {
			return &suggested[i], nil
		}
	}
	return nil, nil
}

// SetAvatar selects an avatar. The avatar must exist and its unlock
// level must be at or below the player's current level.
func (s *Service) SetAvatar(ctx context.Context, id string) (*Avatar, error) {
	a := s.catalog.Avatar(id)
	if a == nil {
		return nil, fmt.Errorf("unknown avatar %q", id)
	}
	st, err := s.states.Load(ctx)
	if err != nil {
		return nil, err
	}
	if LevelFromXP(st.XP) < a.MinLevel {
		return nil, LockedError{AvatarID: a.ID, RequiredLevel: a.MinLevel}
	}
	st.SelectedAvatar = a.ID
	s.saveState(ctx, st)
	return a, nil
}

// SetDisplayName updates the name shown on the leaderboard. Blank input
// falls back to the placeholder name.
func (s *Service) SetDisplayName(ctx context.Context, name string) (string, error) {
	st, err := s.states.Load(ctx)
	if err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = storage.DefaultDisplayName
	}
	st.DisplayName = name
	s.saveState(ctx, st)
	return name, nil
}

// Leaderboard ranks the static peers against the live player entry.
func (s *Service) Leaderboard(ctx context.Context) ([]LeaderboardRow, error) {
	st, err := s.states.Load(ctx)
	if err != nil {
		return nil, err
	}
	return Leaderboard(s.catalog.Peers, st.DisplayName, st.XP), nil
}

// completedSet returns today's completed quest ids as a lookup set.
func (s *Service) completedSet(st *storage.ProgressState) map[string]bool {
	done := map[string]bool{}
	for _, id := range st.CompletedOn(s.Today()) {
		done[id] = true
	}
	return done
}
