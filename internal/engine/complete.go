package engine

import (
	"context"
	"fmt"
)

// CompleteResult reports what a completion changed, for user feedback.
type CompleteResult struct {
	QuestID     string
	Title       string
	XPGained    int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	NewBadges   []string
	AlreadyDone bool // true when the quest was already completed today; nothing changed
}

// CompleteQuest applies a completed quest to the progress state:
// at-most-once per quest per day, XP award (DefaultQuestXP when the quest
// carries none), badge evaluation, weekly meter bump, persist. Completing
// the same quest again on the same day is a silent no-op.
func (s *Service) CompleteQuest(ctx context.Context, q Quest) (*CompleteResult, error) {
	st, err := s.states.Load(ctx)
	if err != nil {
		return nil, err
	}

	today := s.Today()
	if st.IsCompleted(today, q.ID) {
		level := LevelFromXP(st.XP)
		return &CompleteResult{
			QuestID:     q.ID,
			Title:       q.Title,
			LevelBefore: level,
			LevelAfter:  level,
			AlreadyDone: true,
		}, nil
	}

	levelBefore := LevelFromXP(st.XP)

	st.Completed[today] = append(st.Completed[today], q.ID)

	gained := q.XP
	if gained <= 0 {
		gained = DefaultQuestXP
	}
	st.XP += gained

	levelAfter := LevelFromXP(st.XP)
	newBadges := grantBadges(st, q, levelAfter, len(st.Completed[today]))

	st.WeeklyProgress = clampInt(st.WeeklyProgress+WeeklyIncrement, 0, WeeklyTarget)

	s.saveState(ctx, st)

	return &CompleteResult{
		QuestID:     q.ID,
		Title:       q.Title,
		XPGained:    gained,
		LevelBefore: levelBefore,
		LevelAfter:  levelAfter,
		LevelUp:     levelAfter > levelBefore,
		NewBadges:   newBadges,
	}, nil
}

// CompleteByID completes a quest looked up in the catalog or today's
// suggestions.
func (s *Service) CompleteByID(ctx context.Context, id string) (*CompleteResult, error) {
	q, err := s.FindQuest(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, fmt.Errorf("no quest %q in the catalog or today's suggestions", id)
	}
	return s.CompleteQuest(ctx, *q)
}

// Weekly progress meter: each completion adds WeeklyIncrement, saturating
// at WeeklyTarget.
const (
	WeeklyIncrement = 5
	WeeklyTarget    = 100
)

func clampInt(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
