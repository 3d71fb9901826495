package engine

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"wellquest/internal/storage"
)

var testCatalog = Catalog{
	Quests: []Quest{
		{ID: "walk10", Title: "Go for a 10-minute walk", XP: 15, Tag: "movement"},
		{ID: "grat1", Title: "Write one good thing", XP: 10, Tag: "gratitude"},
		{ID: "water", Title: "Drink a tall glass of water", XP: 8, Tag: TagHydration},
		{ID: "sleep", Title: "Lights out 30 min earlier", XP: 20, Tag: "sleep"},
	},
	Avatars: []Avatar{
		{ID: "sprout", Name: "Sprout", MinLevel: 1, Emoji: "🌱"},
		{ID: "spark", Name: "Spark", MinLevel: 3, Emoji: "✨"},
	},
	Peers: testPeers,
}

func newTestService(t *testing.T) (*Service, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	svc := NewService(db, testCatalog)
	svc.now = func() time.Time {
		return time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)
	}
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup
}

func setXP(t *testing.T, svc *Service, xp int) {
	t.Helper()
	ctx := context.Background()
	st, err := svc.States().Load(ctx)
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	st.XP = xp
	if err := svc.States().Save(ctx, st); err != nil {
		t.Fatalf("save state: %v", err)
	}
}

func TestCompleteQuestFreshState(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	res, err := svc.CompleteByID(ctx, "walk10")
	if err != nil {
		t.Fatalf("CompleteByID: %v", err)
	}
	if res.XPGained != 15 {
		t.Fatalf("XPGained=%d, want 15", res.XPGained)
	}

	st, err := svc.States().Load(ctx)
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	if st.XP != 15 {
		t.Fatalf("xp=%d, want 15", st.XP)
	}
	done := st.CompletedOn("2024-03-14")
	if len(done) != 1 || done[0] != "walk10" {
		t.Fatalf("completed=%v, want [walk10]", done)
	}
	if len(st.Badges) != 0 {
		t.Fatalf("badges=%v, want none", st.Badges)
	}
	if st.WeeklyProgress != 5 {
		t.Fatalf("weeklyProgress=%d, want 5", st.WeeklyProgress)
	}
}

func TestCompleteQuestIdempotentPerDay(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.CompleteByID(ctx, "water"); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	before, err := svc.States().Load(ctx)
	if err != nil {
		t.Fatalf("load state: %v", err)
	}

	res, err := svc.CompleteByID(ctx, "water")
	if err != nil {
		t.Fatalf("second complete: %v", err)
	}
	if !res.AlreadyDone {
		t.Fatalf("expected AlreadyDone on duplicate completion")
	}
	if res.XPGained != 0 {
		t.Fatalf("duplicate XPGained=%d, want 0", res.XPGained)
	}

	after, err := svc.States().Load(ctx)
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	if after.XP != before.XP {
		t.Fatalf("xp changed on duplicate: %d -> %d", before.XP, after.XP)
	}
	if after.WeeklyProgress != before.WeeklyProgress {
		t.Fatalf("weeklyProgress changed on duplicate: %d -> %d", before.WeeklyProgress, after.WeeklyProgress)
	}
	if len(after.CompletedOn("2024-03-14")) != 1 {
		t.Fatalf("completed set grew on duplicate: %v", after.CompletedOn("2024-03-14"))
	}
	if len(after.Badges) != len(before.Badges) {
		t.Fatalf("badges changed on duplicate: %v -> %v", before.Badges, after.Badges)
	}
}

func TestLevelThreeBadge(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	setXP(t, svc, 285) // level 3

	res, err := svc.CompleteByID(ctx, "grat1")
	if err != nil {
		t.Fatalf("CompleteByID: %v", err)
	}
	if res.LevelAfter != 3 {
		t.Fatalf("LevelAfter=%d, want 3", res.LevelAfter)
	}
	if res.LevelUp {
		t.Fatalf("did not expect a level up at 285+10")
	}

	st, err := svc.States().Load(ctx)
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	if st.XP != 295 {
		t.Fatalf("xp=%d, want 295", st.XP)
	}
	if !st.HasBadge(BadgeLevelThree) {
		t.Fatalf("badges=%v, want %q granted", st.Badges, BadgeLevelThree)
	}
}

func TestDailyTrioOnThirdCompletion(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	for i, id := range []string{"walk10", "grat1", "sleep"} {
		res, err := svc.CompleteByID(ctx, id)
		if err != nil {
			t.Fatalf("complete %s: %v", id, err)
		}
		st, err := svc.States().Load(ctx)
		if err != nil {
			t.Fatalf("load state: %v", err)
		}
		if i < 2 && st.HasBadge(BadgeDailyTrio) {
			t.Fatalf("trio badge granted after %d completions", i+1)
		}
		if i == 2 {
			if !st.HasBadge(BadgeDailyTrio) {
				t.Fatalf("trio badge missing after third completion")
			}
			found := false
			for _, b := range res.NewBadges {
				if b == BadgeDailyTrio {
					found = true
				}
			}
			if !found {
				t.Fatalf("NewBadges=%v, want %q reported on the triggering completion", res.NewBadges, BadgeDailyTrio)
			}
		}
	}
}

func TestHydrationHeroBadge(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	res, err := svc.CompleteByID(ctx, "water")
	if err != nil {
		t.Fatalf("CompleteByID: %v", err)
	}
	granted := false
	for _, b := range res.NewBadges {
		if b == BadgeHydrationHero {
			granted = true
		}
	}
	if !granted {
		t.Fatalf("NewBadges=%v, want %q", res.NewBadges, BadgeHydrationHero)
	}
}

func TestCompleteQuestDefaultsMissingXP(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	res, err := svc.CompleteQuest(ctx, Quest{ID: "mystery", Title: "Mystery"})
	if err != nil {
		t.Fatalf("CompleteQuest: %v", err)
	}
	if res.XPGained != DefaultQuestXP {
		t.Fatalf("XPGained=%d, want default %d", res.XPGained, DefaultQuestXP)
	}
}

func TestMonotonicityAndWeeklyCap(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	prevXP := 0
	prevWeekly := 0
	prevBadges := 0
	for i := 0; i < 25; i++ {
		q := Quest{ID: fmt.Sprintf("synthetic-%d", i), Title: "Synthetic", XP: 10, Tag: "focus"}
		if _, err := svc.CompleteQuest(ctx, q); err != nil {
			t.Fatalf("complete #%d: %v", i, err)
		}
		st, err := svc.States().Load(ctx)
		if err != nil {
			t.Fatalf("load state: %v", err)
		}
		if st.XP < prevXP {
			t.Fatalf("xp decreased: %d -> %d", prevXP, st.XP)
		}
		if st.WeeklyProgress < prevWeekly {
			t.Fatalf("weeklyProgress decreased: %d -> %d", prevWeekly, st.WeeklyProgress)
		}
		if st.WeeklyProgress > WeeklyTarget {
			t.Fatalf("weeklyProgress=%d exceeds cap %d", st.WeeklyProgress, WeeklyTarget)
		}
		if len(st.Badges) < prevBadges {
			t.Fatalf("badges shrank: %d -> %d", prevBadges, len(st.Badges))
		}
		prevXP = st.XP
		prevWeekly = st.WeeklyProgress
		prevBadges = len(st.Badges)
	}
	st, err := svc.States().Load(ctx)
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	if st.WeeklyProgress != WeeklyTarget {
		t.Fatalf("weeklyProgress=%d after 25 completions, want saturated %d", st.WeeklyProgress, WeeklyTarget)
	}
}

func TestLogMoodAndSuggestionsLowBand(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	// Backfill a week of low moods, then complete one low-pool quest.
	st, err := svc.States().Load(ctx)
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	for day := 7; day >= 1; day-- {
		date := fmt.Sprintf("2024-03-%02d", day)
		st.MoodLog = RecordMood(st.MoodLog, date, 2, "")
	}
	if err := svc.States().Save(ctx, st); err != nil {
		t.Fatalf("save state: %v", err)
	}
	if _, err := svc.CompleteQuest(ctx, MiniGameQuest); err != nil {
		t.Fatalf("complete mini-game: %v", err)
	}

	suggested, err := svc.Suggestions(ctx)
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}
	ids := suggestedIDs(suggested)
	want := []string{"dance", "grat3"}
	if len(ids) != len(want) || ids[0] != want[0] || ids[1] != want[1] {
		t.Fatalf("suggestions=%v, want %v", ids, want)
	}
}

func TestLogMoodReplacesToday(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.LogMood(ctx, 2, "meh"); err != nil {
		t.Fatalf("LogMood: %v", err)
	}
	if _, err := svc.LogMood(ctx, 5, "great actually"); err != nil {
		t.Fatalf("LogMood: %v", err)
	}

	st, err := svc.States().Load(ctx)
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	if len(st.MoodLog) != 1 {
		t.Fatalf("len(moodLog)=%d, want 1", len(st.MoodLog))
	}
	if got := MoodOn(st.MoodLog, svc.Today()); got != 5 {
		t.Fatalf("mood today=%d, want 5", got)
	}
}

func TestSetAvatarLocked(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	_, err := svc.SetAvatar(ctx, "spark")
	var locked LockedError
	if !errors.As(err, &locked) {
		t.Fatalf("err=%v, want LockedError", err)
	}
	if locked.RequiredLevel != 3 {
		t.Fatalf("RequiredLevel=%d, want 3", locked.RequiredLevel)
	}

	setXP(t, svc, 200) // level 3
	a, err := svc.SetAvatar(ctx, "spark")
	if err != nil {
		t.Fatalf("SetAvatar after leveling: %v", err)
	}
	if a.ID != "spark" {
		t.Fatalf("avatar=%q, want spark", a.ID)
	}

	st, err := svc.States().Load(ctx)
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	if st.SelectedAvatar != "spark" {
		t.Fatalf("selectedAvatar=%q, want spark", st.SelectedAvatar)
	}
}

func TestSetDisplayNameBlankFallsBack(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	name, err := svc.SetDisplayName(ctx, "  ")
	if err != nil {
		t.Fatalf("SetDisplayName: %v", err)
	}
	if name != storage.DefaultDisplayName {
		t.Fatalf("name=%q, want %q", name, storage.DefaultDisplayName)
	}

	name, err = svc.SetDisplayName(ctx, "Robin")
	if err != nil {
		t.Fatalf("SetDisplayName: %v", err)
	}
	if name != "Robin" {
		t.Fatalf("name=%q, want Robin", name)
	}
}

func TestServiceLeaderboardUsesLiveEntry(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	setXP(t, svc, 700)
	rows, err := svc.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if rows[0].Name != storage.DefaultDisplayName || !rows[0].You {
		t.Fatalf("rows[0]=%+v, want the player on top with 700 xp", rows[0])
	}
}

func TestFindQuestUnknownID(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	q, err := svc.FindQuest(ctx, "nope")
	if err != nil {
		t.Fatalf("FindQuest: %v", err)
	}
	if q != nil {
		t.Fatalf("q=%+v, want nil for unknown id", q)
	}
	if _, err := svc.CompleteByID(ctx, "nope"); err == nil {
		t.Fatalf("expected error completing unknown quest id")
	}
}
