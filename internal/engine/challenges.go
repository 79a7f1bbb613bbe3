package engine

import (
	"hash/fnv"
	"math/rand"
	"time"

	"gitbuddy/internal/gitrepo"
	"gitbuddy/internal/storage"
)

// SeedMode controls how the daily challenge is picked.
type SeedMode string

const (
	// SeedDaily hashes the calendar day, so everyone (and every test)
	// gets the same challenge on the same day.
	SeedDaily SeedMode = "daily"
	// SeedRandom picks freshly at each day rollover.
	SeedRandom SeedMode = "random"
)

func ParseSeedMode(s string) SeedMode {
	if SeedMode(s) == SeedRandom {
		return SeedRandom
	}
	return SeedDaily
}

// ChallengeDef couples a challenge with its progress tracker, the same
// registry shape as the achievement catalog.
type ChallengeDef struct {
	ID          string
	Name        string
	Description string
	Goal        int
	XPReward    int

	// Track maps current state and repo data to a progress number.
	Track func(p *storage.PetState, data gitrepo.RepoData) int
}

// ChallengeCatalog returns the fixed challenge registry.
func ChallengeCatalog() []ChallengeDef {
	return []ChallengeDef{
		{
			ID: "commit_3", Name: "Shipping Day", Goal: 3, XPReward: 40,
			Description: "Make 3 commits today",
			Track: func(p *storage.PetState, _ gitrepo.RepoData) int {
				return p.Daily.Commits
			},
		},
		{
			ID: "feed_2", Name: "Feeding Time", Goal: 2, XPReward: 20,
			Description: "Feed your pet twice today",
			Track: func(p *storage.PetState, _ gitrepo.RepoData) int {
				return p.Daily.Feeds
			},
		},
		{
			ID: "scan_2", Name: "Health Conscious", Goal: 2, XPReward: 15,
			Description: "Run 2 health scans today",
			Track: func(p *storage.PetState, _ gitrepo.RepoData) int {
				return p.Daily.Scans
			},
		},
		{
			ID: "clean_tree", Name: "Spotless", Goal: 1, XPReward: 30,
			Description: "Leave the working tree clean",
			Track: func(_ *storage.PetState, data gitrepo.RepoData) int {
				if data.IsRepo && data.DirtyFiles == 0 {
					return 1
				}
				return 0
			},
		},
		{
			ID: "focus_25", Name: "Pomodoro", Goal: 25, XPReward: 35,
			Description: "Focus for 25 minutes today",
			Track: func(p *storage.PetState, _ gitrepo.RepoData) int {
				return p.Daily.FocusMinutes
			},
		},
		{
			ID: "keep_streak", Name: "Keep It Alive", Goal: 1, XPReward: 25,
			Description: "Commit at least once today",
			Track: func(p *storage.PetState, data gitrepo.RepoData) int {
				if p.Daily.Commits > 0 {
					return 1
				}
				return 0
			},
		},
	}
}

// ChallengeByID looks up a catalog entry.
func ChallengeByID(id string) (ChallengeDef, bool) {
	for _, def := range ChallengeCatalog() {
		if def.ID == id {
			return def, true
		}
	}
	return ChallengeDef{}, false
}

// DailyChallengeFor returns the active challenge record for today,
// selecting a new one when there is none or the stored one is stale.
// The returned record is fresh state; the caller persists it.
func DailyChallengeFor(p *storage.PetState, now time.Time, seed SeedMode) storage.DailyChallengeState {
	today := now.Format(storage.DayFormat)
	if p.DailyChallenge != nil && p.DailyChallenge.Date == today {
		if _, ok := ChallengeByID(p.DailyChallenge.ChallengeID); ok {
			return *p.DailyChallenge
		}
		// Stored id no longer in the catalog; reselect.
	}

	catalog := ChallengeCatalog()
	var idx int
	switch seed {
	case SeedRandom:
		idx = rand.Intn(len(catalog))
	default:
		h := fnv.New32a()
		_, _ = h.Write([]byte(today))
		idx = int(h.Sum32() % uint32(len(catalog)))
	}

	return storage.DailyChallengeState{
		Date:        today,
		ChallengeID: catalog[idx].ID,
		Progress:    0,
		Completed:   false,
	}
}

// ChallengeResult reports tracker progress for the active challenge.
// JustCompleted fires only on the incomplete-to-complete edge, so the
// reward is granted exactly once per day.
type ChallengeResult struct {
	Def           ChallengeDef
	Progress      int
	Completed     bool
	JustCompleted bool
}

// CheckChallengeProgress evaluates the active challenge tracker. It
// reads p.DailyChallenge but does not mutate it; the caller applies
// the returned progress/completed values before persisting.
func CheckChallengeProgress(p *storage.PetState, data gitrepo.RepoData) (ChallengeResult, bool) {
	if p.DailyChallenge == nil {
		return ChallengeResult{}, false
	}
	def, ok := ChallengeByID(p.DailyChallenge.ChallengeID)
	if !ok {
		return ChallengeResult{}, false
	}

	progress := def.Track(p, data)
	if progress < 0 {
		progress = 0
	}
	if progress > def.Goal {
		progress = def.Goal
	}
	completed := progress >= def.Goal
	return ChallengeResult{
		Def:           def,
		Progress:      progress,
		Completed:     completed,
		JustCompleted: completed && !p.DailyChallenge.Completed,
	}, true
}
