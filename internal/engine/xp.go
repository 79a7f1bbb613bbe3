package engine

import (
	"time"

	"gitbuddy/internal/storage"
)

// levelThresholds[i] is the total XP required to be at level i+1.
// Highest threshold at or below the XP wins, so 100 XP is level 2.
var levelThresholds = [...]int{0, 100, 300, 600, 1000}

const MaxLevel = len(levelThresholds)

// XP grants per action.
const (
	XPFeed           = 10
	XPPlay           = 5
	XPScan           = 5
	XPSmartCommit    = 25
	XPPerFocusMinute = 1
)

// HP decay constants: a day of grace, then 5 HP per absent day up to
// 30, never below the floor.
const (
	HPFloor      = 10
	decayGrace   = 24 * time.Hour
	decayPerDay  = 5
	decayMaximum = 30
)

// LevelForXP returns the level (1..MaxLevel) for a total XP value.
func LevelForXP(xp int) int {
	level := 1
	for i, threshold := range levelThresholds {
		if xp >= threshold {
			level = i + 1
		}
	}
	return level
}

// AddXP grants XP to the pet and re-derives its level. Negative
// amounts are clamped to zero. The returned flag is true exactly when
// this grant crossed at least one threshold, regardless of how many.
func AddXP(p *storage.PetState, amount int) (leveledUp bool) {
	if amount < 0 {
		amount = 0
	}
	before := LevelForXP(p.XP)
	p.XP += amount
	p.Level = LevelForXP(p.XP)
	return p.Level > before
}

// LevelProgress describes progress through the current level.
type LevelProgress struct {
	Current int
	Max     int
	Percent float64
}

// ProgressForXP computes the position inside the current level's XP
// band. At max level there is no next threshold; the bar is full.
func ProgressForXP(xp int) LevelProgress {
	level := LevelForXP(xp)
	if level >= MaxLevel {
		return LevelProgress{Current: xp - levelThresholds[MaxLevel-1], Max: 0, Percent: 100}
	}
	start := levelThresholds[level-1]
	next := levelThresholds[level]
	current := xp - start
	max := next - start
	pct := float64(current) / float64(max) * 100
	if pct > 100 {
		pct = 100
	}
	return LevelProgress{Current: current, Max: max, Percent: pct}
}

// XPToNextLevel returns how much XP is missing for the next level, or
// 0 at max level.
func XPToNextLevel(xp int) int {
	level := LevelForXP(xp)
	if level >= MaxLevel {
		return 0
	}
	return levelThresholds[level] - xp
}

// HPDecay computes how much HP an absence costs. The first 24h are
// free; beyond that each whole day costs decayPerDay, capped at
// decayMaximum. Pure; the caller applies it with ApplyDecay.
func HPDecay(elapsed time.Duration) int {
	if elapsed <= decayGrace {
		return 0
	}
	days := int((elapsed - decayGrace).Hours() / 24)
	decay := days * decayPerDay
	if decay > decayMaximum {
		decay = decayMaximum
	}
	return decay
}

// ApplyDecay subtracts absence decay from HP, respecting the floor,
// and returns the amount actually removed.
func ApplyDecay(p *storage.PetState, now time.Time) int {
	decay := HPDecay(now.Sub(p.LastVisit))
	if decay == 0 {
		return 0
	}
	before := p.HP
	p.HP -= decay
	if p.HP < HPFloor {
		p.HP = HPFloor
	}
	return before - p.HP
}

// RaiseHP adds to HP, capped at 100.
func RaiseHP(p *storage.PetState, amount int) {
	p.HP += amount
	if p.HP > 100 {
		p.HP = 100
	}
}
