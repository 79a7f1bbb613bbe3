package engine

import (
	"time"

	"gitbuddy/internal/gitrepo"
	"gitbuddy/internal/storage"
)

// AchievementDef keeps a catalog entry and its unlock predicate in one
// record, so an id without logic cannot exist.
type AchievementDef struct {
	ID          string
	Name        string
	Description string
	Icon        string
	XPReward    int

	// Unlocked reports whether the condition currently holds. It must
	// be pure: same state, repo data and clock, same answer.
	Unlocked func(p *storage.PetState, data gitrepo.RepoData, now time.Time) bool
}

// AchievementCatalog returns the fixed achievement registry in display
// order. Predicates only read; persisting unlocked ids and granting
// rewards is the caller's job.
func AchievementCatalog() []AchievementDef {
	return []AchievementDef{
		{
			ID: "first_feed", Name: "First Bite", Icon: "🍖", XPReward: 10,
			Description: "Feed your pet for the first time",
			Unlocked: func(p *storage.PetState, _ gitrepo.RepoData, _ time.Time) bool {
				return p.TotalFeeds >= 1
			},
		},
		{
			ID: "well_fed", Name: "Well Fed", Icon: "🍱", XPReward: 25,
			Description: "Feed your pet 25 times",
			Unlocked: func(p *storage.PetState, _ gitrepo.RepoData, _ time.Time) bool {
				return p.TotalFeeds >= 25
			},
		},
		{
			ID: "gourmet", Name: "Gourmet", Icon: "👨‍🍳", XPReward: 50,
			Description: "Feed your pet 100 times",
			Unlocked: func(p *storage.PetState, _ gitrepo.RepoData, _ time.Time) bool {
				return p.TotalFeeds >= 100
			},
		},
		{
			ID: "first_scan", Name: "Checkup", Icon: "🩺", XPReward: 5,
			Description: "Run your first health scan",
			Unlocked: func(p *storage.PetState, _ gitrepo.RepoData, _ time.Time) bool {
				return p.TotalScans >= 1
			},
		},
		{
			ID: "regular", Name: "Regular", Icon: "📋", XPReward: 20,
			Description: "Run 20 health scans",
			Unlocked: func(p *storage.PetState, _ gitrepo.RepoData, _ time.Time) bool {
				return p.TotalScans >= 20
			},
		},
		{
			ID: "streak_3", Name: "Warming Up", Icon: "🔥", XPReward: 15,
			Description: "Commit 3 days in a row",
			Unlocked: func(p *storage.PetState, data gitrepo.RepoData, _ time.Time) bool {
				return data.StreakDays >= 3 || p.LongestStreak >= 3
			},
		},
		{
			ID: "streak_7", Name: "On Fire", Icon: "🔥", XPReward: 50,
			Description: "Commit 7 days in a row",
			Unlocked: func(p *storage.PetState, data gitrepo.RepoData, _ time.Time) bool {
				return data.StreakDays >= 7 || p.LongestStreak >= 7
			},
		},
		{
			ID: "streak_30", Name: "Unstoppable", Icon: "☄️", XPReward: 200,
			Description: "Commit 30 days in a row",
			Unlocked: func(p *storage.PetState, data gitrepo.RepoData, _ time.Time) bool {
				return data.StreakDays >= 30 || p.LongestStreak >= 30
			},
		},
		{
			ID: "level_2", Name: "Growing Up", Icon: "🌿", XPReward: 0,
			Description: "Reach level 2",
			Unlocked: func(p *storage.PetState, _ gitrepo.RepoData, _ time.Time) bool {
				return LevelForXP(p.XP) >= 2
			},
		},
		{
			ID: "level_3", Name: "Adolescent", Icon: "🌳", XPReward: 0,
			Description: "Reach level 3",
			Unlocked: func(p *storage.PetState, _ gitrepo.RepoData, _ time.Time) bool {
				return LevelForXP(p.XP) >= 3
			},
		},
		{
			ID: "level_4", Name: "Seasoned", Icon: "⭐", XPReward: 0,
			Description: "Reach level 4",
			Unlocked: func(p *storage.PetState, _ gitrepo.RepoData, _ time.Time) bool {
				return LevelForXP(p.XP) >= 4
			},
		},
		{
			ID: "level_5", Name: "Fully Evolved", Icon: "💫", XPReward: 0,
			Description: "Reach level 5",
			Unlocked: func(p *storage.PetState, _ gitrepo.RepoData, _ time.Time) bool {
				return LevelForXP(p.XP) >= MaxLevel
			},
		},
		{
			ID: "first_commit", Name: "Ship It", Icon: "🚢", XPReward: 15,
			Description: "Make your first smart commit",
			Unlocked: func(p *storage.PetState, _ gitrepo.RepoData, _ time.Time) bool {
				return p.TotalSmartCommits >= 1
			},
		},
		{
			ID: "committed", Name: "Committed", Icon: "📦", XPReward: 40,
			Description: "Make 10 smart commits",
			Unlocked: func(p *storage.PetState, _ gitrepo.RepoData, _ time.Time) bool {
				return p.TotalSmartCommits >= 10
			},
		},
		{
			ID: "clean_machine", Name: "Clean Machine", Icon: "🧹", XPReward: 30,
			Description: "Scan a clean working tree 10 times",
			Unlocked: func(p *storage.PetState, _ gitrepo.RepoData, _ time.Time) bool {
				return p.CleanTreeCount >= 10
			},
		},
		{
			ID: "night_owl", Name: "Night Owl", Icon: "🦉", XPReward: 20,
			Description: "Commit between midnight and 4am",
			Unlocked: func(p *storage.PetState, _ gitrepo.RepoData, now time.Time) bool {
				return p.SessionActions["commit"] && now.Hour() < 4
			},
		},
		{
			ID: "early_bird", Name: "Early Bird", Icon: "🐓", XPReward: 20,
			Description: "Commit between 5am and 7am",
			Unlocked: func(p *storage.PetState, _ gitrepo.RepoData, now time.Time) bool {
				return p.SessionActions["commit"] && now.Hour() >= 5 && now.Hour() < 7
			},
		},
		{
			ID: "weekend_warrior", Name: "Weekend Warrior", Icon: "🛡️", XPReward: 20,
			Description: "Commit on a weekend",
			Unlocked: func(p *storage.PetState, _ gitrepo.RepoData, now time.Time) bool {
				wd := now.Weekday()
				return p.SessionActions["commit"] && (wd == time.Saturday || wd == time.Sunday)
			},
		},
		{
			ID: "first_focus", Name: "In the Zone", Icon: "🎯", XPReward: 15,
			Description: "Finish a focus session",
			Unlocked: func(p *storage.PetState, _ gitrepo.RepoData, _ time.Time) bool {
				return p.Focus.Count >= 1
			},
		},
		{
			ID: "deep_work", Name: "Deep Work", Icon: "🧘", XPReward: 60,
			Description: "Accumulate 300 focus minutes",
			Unlocked: func(p *storage.PetState, _ gitrepo.RepoData, _ time.Time) bool {
				return p.Focus.TotalMinutes >= 300
			},
		},
		{
			ID: "combo", Name: "Combo", Icon: "🎮", XPReward: 25,
			Description: "Do 3 different things in one sitting",
			Unlocked: func(p *storage.PetState, _ gitrepo.RepoData, _ time.Time) bool {
				return len(p.SessionActions) >= 3
			},
		},
	}
}

// CheckAchievements returns the achievements that are newly true for
// this state and repo snapshot, in catalog order. Already-unlocked ids
// are skipped, so persisting the returned ids makes the call
// idempotent. No side effects.
func CheckAchievements(p *storage.PetState, data gitrepo.RepoData, now time.Time) []AchievementDef {
	var unlocked []AchievementDef
	for _, def := range AchievementCatalog() {
		if p.HasAchievement(def.ID) {
			continue
		}
		if def.Unlocked(p, data, now) {
			unlocked = append(unlocked, def)
		}
	}
	return unlocked
}

// AchievementByID looks up a catalog entry.
func AchievementByID(id string) (AchievementDef, bool) {
	for _, def := range AchievementCatalog() {
		if def.ID == id {
			return def, true
		}
	}
	return AchievementDef{}, false
}
