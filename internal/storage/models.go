package storage

import "time"

// CurrentSchemaVersion is the pet record schema written by this build.
const CurrentSchemaVersion = 1

// DayFormat is the ISO calendar-day key used for all day-scoped state.
const DayFormat = "2006-01-02"

// PetState is the single persisted record for a user's pet. It is the
// source of truth across runs; everything derived from the repository
// itself is recomputed per scan and lives elsewhere.
type PetState struct {
	SchemaVersion int    `json:"schemaVersion"`
	Name          string `json:"name"`

	XP    int `json:"xp"`
	Level int `json:"level"`
	HP    int `json:"hp"`

	CreatedAt time.Time `json:"createdAt"`
	LastVisit time.Time `json:"lastVisit"`

	TotalFeeds        int `json:"totalFeeds"`
	TotalPlays        int `json:"totalPlays"`
	TotalScans        int `json:"totalScans"`
	TotalSmartCommits int `json:"totalSmartCommits"`
	CleanTreeCount    int `json:"cleanTreeCount"`
	LongestStreak     int `json:"longestStreak"`

	Achievements []string `json:"achievements"`

	Focus FocusStats    `json:"focus"`
	Daily DailyCounters `json:"daily"`

	DailyChallenge *DailyChallengeState `json:"dailyChallenge,omitempty"`

	// SessionActions is the set of distinct actions taken this process
	// lifetime. Session-scoped achievement predicates read it; it never
	// touches disk.
	SessionActions map[string]bool `json:"-"`
}

// FocusStats aggregates completed focus sessions.
type FocusStats struct {
	Count        int        `json:"count"`
	TotalMinutes int        `json:"totalMinutes"`
	Best         *BestFocus `json:"best,omitempty"`
}

// BestFocus is the longest single session on record.
type BestFocus struct {
	Minutes int    `json:"minutes"`
	Date    string `json:"date"`
}

// DailyCounters are reset whenever Date falls behind the calendar.
type DailyCounters struct {
	Date         string `json:"date"`
	Feeds        int    `json:"feeds"`
	Commits      int    `json:"commits"`
	Scans        int    `json:"scans"`
	FocusMinutes int    `json:"focusMinutes"`
}

// DailyChallengeState is the at-most-one active challenge per day.
type DailyChallengeState struct {
	Date        string `json:"date"`
	ChallengeID string `json:"challengeId"`
	Progress    int    `json:"progress"`
	Completed   bool   `json:"completed"`
}

// NewPetState creates a first-run record with full HP.
func NewPetState(name string, now time.Time) *PetState {
	return &PetState{
		SchemaVersion:  CurrentSchemaVersion,
		Name:           name,
		XP:             0,
		Level:          1,
		HP:             100,
		CreatedAt:      now,
		LastVisit:      now,
		Achievements:   []string{},
		Daily:          DailyCounters{Date: now.Format(DayFormat)},
		SessionActions: map[string]bool{},
	}
}

// HasAchievement reports whether id is already unlocked.
func (p *PetState) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// Unlock records an achievement id. Duplicates are ignored so the
// unlocked set only ever grows.
func (p *PetState) Unlock(id string) {
	if p.HasAchievement(id) {
		return
	}
	p.Achievements = append(p.Achievements, id)
}

// MarkSessionAction records a distinct action for this process run.
func (p *PetState) MarkSessionAction(kind string) {
	if p.SessionActions == nil {
		p.SessionActions = map[string]bool{}
	}
	p.SessionActions[kind] = true
}

// RolloverDaily resets the day-scoped counters when the calendar has
// moved past the recorded date. The challenge record is left alone;
// challenge selection handles its own day boundary.
func (p *PetState) RolloverDaily(now time.Time) bool {
	today := now.Format(DayFormat)
	if p.Daily.Date == today {
		return false
	}
	p.Daily = DailyCounters{Date: today}
	return true
}
