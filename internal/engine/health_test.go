package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitbuddy/internal/gitrepo"
)

func TestScoreRepoWeightsSumToOne(t *testing.T) {
	health := ScoreRepo(gitrepo.RepoData{IsRepo: true})
	total := 0.0
	for _, c := range health.Checks {
		total += c.Weight
	}
	assert.InDelta(t, 1.0, total, 0.0001)
}

func TestScoreRepoBounds(t *testing.T) {
	inputs := []gitrepo.RepoData{
		{IsRepo: true},
		{IsRepo: true, CommitsThisWeek: 100, StreakDays: 100, HasTests: true, HasReadme: true},
		{IsRepo: true, DirtyFiles: 500, HoursSinceCommit: 10000},
	}
	for _, data := range inputs {
		health := ScoreRepo(data)
		require.GreaterOrEqual(t, health.TotalScore, 0.0)
		require.LessOrEqual(t, health.TotalScore, 100.0)
	}
}

func TestScoreRepoHealthyRepoScoresHigh(t *testing.T) {
	data := gitrepo.RepoData{
		IsRepo:           true,
		CommitsThisWeek:  8,
		StreakDays:       7,
		DirtyFiles:       0,
		HasTests:         true,
		HasReadme:        true,
		HoursSinceCommit: 2,
		LastCommit:       time.Now().Add(-2 * time.Hour),
		CommitCount:      250,
	}
	health := ScoreRepo(data)
	assert.GreaterOrEqual(t, health.TotalScore, 80.0)
	for _, c := range health.Checks {
		assert.Equal(t, StatusGreat, c.Status, c.Name)
	}
}

func TestScoreRepoPerfect(t *testing.T) {
	data := gitrepo.RepoData{
		IsRepo:          true,
		CommitsThisWeek: 10,
		StreakDays:      10,
		HasTests:        true,
		HasReadme:       true,
	}
	health := ScoreRepo(data)
	assert.InDelta(t, 100.0, health.TotalScore, 0.0001)
}

func TestScoreRepoNotARepoSentinel(t *testing.T) {
	health := ScoreRepo(gitrepo.RepoData{IsRepo: false})

	require.False(t, health.IsRepo)
	assert.Empty(t, health.Checks)
	assert.Zero(t, health.TotalScore)

	// Distinct from a genuinely unhealthy repo, which still has checks.
	unhealthy := ScoreRepo(gitrepo.RepoData{IsRepo: true, DirtyFiles: 50, HoursSinceCommit: 999})
	require.True(t, unhealthy.IsRepo)
	assert.NotEmpty(t, unhealthy.Checks)
}

func TestCommitFrequencyTiers(t *testing.T) {
	cases := []struct {
		commits int
		status  CheckStatus
	}{
		{0, StatusBad},
		{1, StatusWarning},
		{2, StatusWarning},
		{3, StatusOK},
		{6, StatusOK},
		{7, StatusGreat},
	}
	for _, tc := range cases {
		c := commitFrequencyCheck(tc.commits)
		assert.Equal(t, tc.status, c.Status, "commits=%d", tc.commits)
	}
}

func TestWorkingTreeCheckDegrades(t *testing.T) {
	clean := workingTreeCheck(0)
	assert.Equal(t, StatusGreat, clean.Status)
	assert.InDelta(t, weightWorkingTree*100, clean.Score, 0.0001)

	prev := clean.Score
	for _, dirty := range []int{1, 3, 5, 7} {
		c := workingTreeCheck(dirty)
		assert.Less(t, c.Score, prev, "dirty=%d", dirty)
		prev = c.Score
	}

	// Floor at zero even for absurd counts.
	assert.Zero(t, workingTreeCheck(1000).Score)
}
