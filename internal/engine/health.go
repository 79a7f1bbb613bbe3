package engine

import (
	"fmt"
	"math"
	"time"

	"gitbuddy/internal/gitrepo"
)

// CheckStatus is the display tier of a single health check.
type CheckStatus string

const (
	StatusGreat   CheckStatus = "great"
	StatusOK      CheckStatus = "ok"
	StatusWarning CheckStatus = "warning"
	StatusBad     CheckStatus = "bad"
)

func (s CheckStatus) IsValid() bool {
	switch s {
	case StatusGreat, StatusOK, StatusWarning, StatusBad:
		return true
	default:
		return false
	}
}

// Tier scores, in [0,100]. Each check maps its raw metric onto one of
// these (or a continuous value for the working tree) before weighting.
const (
	tierGreat   = 100.0
	tierOK      = 70.0
	tierWarning = 40.0
	tierBad     = 0.0
)

// Check weights. They must sum to 1.0 so the weighted contributions
// land in [0,100] without renormalizing.
const (
	weightCommitFreq  = 0.30
	weightStreak      = 0.15
	weightWorkingTree = 0.20
	weightTests       = 0.15
	weightReadme      = 0.05
	weightRecency     = 0.15
)

// HealthCheck is one scored metric. Score is already pre-multiplied by
// Weight, so summing Score across checks yields the total directly.
type HealthCheck struct {
	Name   string
	Status CheckStatus
	Value  string
	Weight float64
	Score  float64
}

// RepoHealth is the full scan result. IsRepo=false is a sentinel
// distinct from a genuinely unhealthy repo: no checks, zero score.
type RepoHealth struct {
	IsRepo      bool
	Checks      []HealthCheck
	TotalScore  float64
	CommitCount int
	LastCommit  time.Time
	Streak      int
}

// ScoreRepo converts a repository snapshot into a weighted 0-100
// health report with a per-check breakdown.
func ScoreRepo(data gitrepo.RepoData) RepoHealth {
	if !data.IsRepo {
		return RepoHealth{IsRepo: false}
	}

	checks := []HealthCheck{
		commitFrequencyCheck(data.CommitsThisWeek),
		streakCheck(data.StreakDays),
		workingTreeCheck(data.DirtyFiles),
		boolCheck("Test Files", "tests found", "no tests", weightTests, data.HasTests),
		boolCheck("README", "present", "missing", weightReadme, data.HasReadme),
		recencyCheck(data.HoursSinceCommit),
	}

	total := 0.0
	for _, c := range checks {
		total += c.Score
	}
	total = math.Max(0, math.Min(100, total))

	return RepoHealth{
		IsRepo:      true,
		Checks:      checks,
		TotalScore:  total,
		CommitCount: data.CommitCount,
		LastCommit:  data.LastCommit,
		Streak:      data.StreakDays,
	}
}

func commitFrequencyCheck(commitsThisWeek int) HealthCheck {
	var status CheckStatus
	var tier float64
	switch {
	case commitsThisWeek >= 7:
		status, tier = StatusGreat, tierGreat
	case commitsThisWeek >= 3:
		status, tier = StatusOK, tierOK
	case commitsThisWeek >= 1:
		status, tier = StatusWarning, tierWarning
	default:
		status, tier = StatusBad, tierBad
	}
	return HealthCheck{
		Name:   "Commit Frequency",
		Status: status,
		Value:  fmt.Sprintf("%d commits/week", commitsThisWeek),
		Weight: weightCommitFreq,
		Score:  weightCommitFreq * tier,
	}
}

func streakCheck(days int) HealthCheck {
	var status CheckStatus
	var tier float64
	switch {
	case days >= 7:
		status, tier = StatusGreat, tierGreat
	case days >= 3:
		status, tier = StatusOK, tierOK
	case days >= 1:
		status, tier = StatusWarning, tierWarning
	default:
		status, tier = StatusBad, tierBad
	}
	return HealthCheck{
		Name:   "Commit Streak",
		Status: status,
		Value:  fmt.Sprintf("%d day streak", days),
		Weight: weightStreak,
		Score:  weightStreak * tier,
	}
}

// workingTreeCheck scores continuously: a clean tree is perfect and
// every dirty file costs 15 points down to a floor of 0.
func workingTreeCheck(dirtyFiles int) HealthCheck {
	tier := math.Max(0, 100.0-15.0*float64(dirtyFiles))
	var status CheckStatus
	switch {
	case dirtyFiles == 0:
		status = StatusGreat
	case dirtyFiles <= 3:
		status = StatusOK
	case dirtyFiles <= 7:
		status = StatusWarning
	default:
		status = StatusBad
	}
	value := "clean"
	if dirtyFiles > 0 {
		value = fmt.Sprintf("%d dirty files", dirtyFiles)
	}
	return HealthCheck{
		Name:   "Working Tree",
		Status: status,
		Value:  value,
		Weight: weightWorkingTree,
		Score:  weightWorkingTree * tier,
	}
}

func boolCheck(name, yes, no string, weight float64, present bool) HealthCheck {
	if present {
		return HealthCheck{Name: name, Status: StatusGreat, Value: yes, Weight: weight, Score: weight * tierGreat}
	}
	return HealthCheck{Name: name, Status: StatusBad, Value: no, Weight: weight, Score: weight * tierBad}
}

func recencyCheck(hoursSince float64) HealthCheck {
	var status CheckStatus
	var tier float64
	switch {
	case hoursSince <= 24:
		status, tier = StatusGreat, tierGreat
	case hoursSince <= 72:
		status, tier = StatusOK, tierOK
	case hoursSince <= 168:
		status, tier = StatusWarning, tierWarning
	default:
		status, tier = StatusBad, tierBad
	}
	var value string
	switch {
	case hoursSince < 1:
		value = "just now"
	case hoursSince < 48:
		value = fmt.Sprintf("%.0fh ago", hoursSince)
	default:
		value = fmt.Sprintf("%.0fd ago", hoursSince/24)
	}
	return HealthCheck{
		Name:   "Recent Activity",
		Status: status,
		Value:  value,
		Weight: weightRecency,
		Score:  weightRecency * tier,
	}
}
