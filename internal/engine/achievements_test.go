package engine

import (
	"testing"
	"time"

	"gitbuddy/internal/gitrepo"
	"gitbuddy/internal/storage"
)

// noon on a Wednesday, to keep time-of-day and weekend predicates out
// of unrelated tests
var wednesdayNoon = time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)

func containsID(defs []AchievementDef, id string) bool {
	for _, d := range defs {
		if d.ID == id {
			return true
		}
	}
	return false
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, def := range AchievementCatalog() {
		if seen[def.ID] {
			t.Fatalf("duplicate achievement id %q", def.ID)
		}
		seen[def.ID] = true
		if def.Unlocked == nil {
			t.Fatalf("achievement %q has no predicate", def.ID)
		}
		if def.XPReward < 0 {
			t.Fatalf("achievement %q has negative reward", def.ID)
		}
	}
}

func TestStreak7UnlocksOnce(t *testing.T) {
	p := storage.NewPetState("Byte", wednesdayNoon)
	data := gitrepo.RepoData{IsRepo: true, StreakDays: 7}

	first := CheckAchievements(p, data, wednesdayNoon)
	if !containsID(first, "streak_7") {
		t.Fatalf("expected streak_7 in %v", first)
	}
	if !containsID(first, "streak_3") {
		t.Fatalf("expected streak_3 to unlock alongside streak_7")
	}

	for _, def := range first {
		p.Unlock(def.ID)
	}

	second := CheckAchievements(p, data, wednesdayNoon)
	if containsID(second, "streak_7") {
		t.Fatalf("streak_7 returned again after being recorded")
	}
}

func TestCheckAchievementsIdempotent(t *testing.T) {
	p := storage.NewPetState("Byte", wednesdayNoon)
	p.TotalFeeds = 30
	p.TotalScans = 25
	data := gitrepo.RepoData{IsRepo: true}

	first := CheckAchievements(p, data, wednesdayNoon)
	if len(first) == 0 {
		t.Fatalf("expected unlocks for feed/scan counters")
	}
	for _, def := range first {
		p.Unlock(def.ID)
	}

	if again := CheckAchievements(p, data, wednesdayNoon); len(again) != 0 {
		t.Fatalf("second call returned %d achievements, want 0", len(again))
	}
}

func TestCheckAchievementsDeterministic(t *testing.T) {
	p := storage.NewPetState("Byte", wednesdayNoon)
	p.TotalFeeds = 1
	p.TotalSmartCommits = 1
	data := gitrepo.RepoData{IsRepo: true, StreakDays: 3}

	a := CheckAchievements(p, data, wednesdayNoon)
	b := CheckAchievements(p, data, wednesdayNoon)
	if len(a) != len(b) {
		t.Fatalf("non-deterministic result: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("order changed between calls: %s vs %s", a[i].ID, b[i].ID)
		}
	}
}

func TestSessionScopedAchievements(t *testing.T) {
	p := storage.NewPetState("Byte", wednesdayNoon)
	data := gitrepo.RepoData{IsRepo: true}

	// Weekend commit, 2am.
	saturdayNight := time.Date(2024, 3, 9, 2, 0, 0, 0, time.UTC)
	p.MarkSessionAction("commit")

	unlocked := CheckAchievements(p, data, saturdayNight)
	if !containsID(unlocked, "night_owl") {
		t.Fatalf("expected night_owl at 2am with a session commit")
	}
	if !containsID(unlocked, "weekend_warrior") {
		t.Fatalf("expected weekend_warrior on a Saturday")
	}

	// Same state at Wednesday noon: neither applies.
	calm := CheckAchievements(p, data, wednesdayNoon)
	if containsID(calm, "night_owl") || containsID(calm, "weekend_warrior") {
		t.Fatalf("time-scoped achievements unlocked at the wrong time: %v", calm)
	}
}

func TestComboRequiresThreeActions(t *testing.T) {
	p := storage.NewPetState("Byte", wednesdayNoon)
	data := gitrepo.RepoData{}

	p.MarkSessionAction("feed")
	p.MarkSessionAction("play")
	if containsID(CheckAchievements(p, data, wednesdayNoon), "combo") {
		t.Fatalf("combo unlocked with only 2 actions")
	}

	p.MarkSessionAction("scan")
	if !containsID(CheckAchievements(p, data, wednesdayNoon), "combo") {
		t.Fatalf("combo did not unlock with 3 actions")
	}
}

func TestLevelAchievements(t *testing.T) {
	p := storage.NewPetState("Byte", wednesdayNoon)
	p.XP = 1000
	data := gitrepo.RepoData{}

	unlocked := CheckAchievements(p, data, wednesdayNoon)
	for _, id := range []string{"level_2", "level_3", "level_4", "level_5"} {
		if !containsID(unlocked, id) {
			t.Fatalf("expected %s at 1000 XP", id)
		}
	}
}
