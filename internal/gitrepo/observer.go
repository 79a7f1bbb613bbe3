package gitrepo

import (
	"context"
	"time"
)

// RepoData is a flat snapshot of the repository signals the engine
// consumes. It is recomputed on every scan and never persisted.
type RepoData struct {
	IsRepo           bool
	CommitCount      int
	CommitsThisWeek  int
	StreakDays       int
	DirtyFiles       int
	HasTests         bool
	HasReadme        bool
	HoursSinceCommit float64
	LastCommit       time.Time
	MarkedComments   int
}

// FileChange is one staged file in a diff summary.
type FileChange struct {
	Path    string
	Added   int
	Deleted int
}

// DiffSummary describes the currently staged changes.
type DiffSummary struct {
	Files        []FileChange
	TotalAdded   int
	TotalDeleted int
}

// Empty reports whether nothing is staged.
func (d DiffSummary) Empty() bool { return len(d.Files) == 0 }

// Observer queries a repository for health signals. Implementations
// must tolerate "not a repository" and "git unavailable" by returning
// zero values, never errors: a broken repo degrades the pet, it does
// not crash it.
type Observer interface {
	IsRepo(ctx context.Context) bool
	CommitCountSince(ctx context.Context, since time.Time) int
	TotalCommits(ctx context.Context) int
	StreakDays(ctx context.Context) int
	DirtyFileCount(ctx context.Context) int
	HasTestFiles(ctx context.Context) bool
	HasReadme(ctx context.Context) bool
	LastCommitTime(ctx context.Context) (time.Time, bool)
	FindMarkedComments(ctx context.Context, patterns []string) int
	StagedDiffSummary(ctx context.Context) DiffSummary
}

// Committer performs the one write the pet ever does to a repository.
type Committer interface {
	Commit(ctx context.Context, message string) error
}

// DefaultMarkers are the comment markers counted for the code-smell line.
var DefaultMarkers = []string{"TODO", "FIXME", "console.log", "fmt.Println"}

// Collect gathers a full RepoData snapshot from an observer.
func Collect(ctx context.Context, obs Observer) RepoData {
	data := RepoData{IsRepo: obs.IsRepo(ctx)}
	if !data.IsRepo {
		return data
	}

	now := time.Now()
	data.CommitCount = obs.TotalCommits(ctx)
	data.CommitsThisWeek = obs.CommitCountSince(ctx, now.AddDate(0, 0, -7))
	data.StreakDays = obs.StreakDays(ctx)
	data.DirtyFiles = obs.DirtyFileCount(ctx)
	data.HasTests = obs.HasTestFiles(ctx)
	data.HasReadme = obs.HasReadme(ctx)
	data.MarkedComments = obs.FindMarkedComments(ctx, DefaultMarkers)

	if last, ok := obs.LastCommitTime(ctx); ok {
		data.LastCommit = last
		data.HoursSinceCommit = now.Sub(last).Hours()
	}
	return data
}
