package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// LocalObserver reads repository signals by executing the local 'git'
// binary, scoped to a single working directory. Every query fails soft:
// a missing repo or a failed command yields zero values.
type LocalObserver struct {
	dir     string
	timeout time.Duration
}

var _ Observer = &LocalObserver{}
var _ Committer = &LocalObserver{}

// NewLocalObserver creates an observer rooted at dir. A non-positive
// timeout falls back to 5 seconds per git invocation.
func NewLocalObserver(dir string, timeout time.Duration) *LocalObserver {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &LocalObserver{dir: dir, timeout: timeout}
}

// run executes a git command in the observer's directory and returns
// trimmed stdout. Stderr is folded into the error.
func (o *LocalObserver) run(ctx context.Context, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	fullArgs := append([]string{"-C", o.dir}, args...)
	cmd := exec.CommandContext(ctx, "git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return "", fmt.Errorf("git %s: %s", strings.Join(args, " "), strings.TrimSpace(string(exitErr.Stderr)))
	}
	if err != nil {
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}

func (o *LocalObserver) IsRepo(ctx context.Context) bool {
	out, err := o.run(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

func (o *LocalObserver) TotalCommits(ctx context.Context) int {
	out, err := o.run(ctx, "rev-list", "--count", "HEAD")
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(out)
	if err != nil {
		return 0
	}
	return n
}

func (o *LocalObserver) CommitCountSince(ctx context.Context, since time.Time) int {
	out, err := o.run(ctx, "rev-list", "--count", "HEAD", "--since="+since.Format(time.RFC3339))
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(out)
	if err != nil {
		return 0
	}
	return n
}

func (o *LocalObserver) StreakDays(ctx context.Context) int {
	// One author-date per commit over the last 90 days is plenty for a
	// consecutive-day streak.
	out, err := o.run(ctx, "log", "--since=90.days", "--pretty=format:%ad", "--date=short")
	if err != nil || out == "" {
		return 0
	}
	return streakFromDates(strings.Split(out, "\n"), time.Now())
}

// streakFromDates counts consecutive calendar days with at least one
// commit, walking back from today. A streak that ended yesterday still
// counts; a gap before yesterday ends it.
func streakFromDates(dates []string, now time.Time) int {
	seen := make(map[string]bool, len(dates))
	for _, d := range dates {
		seen[strings.TrimSpace(d)] = true
	}

	day := now
	if !seen[day.Format("2006-01-02")] {
		// No commit yet today; the streak may still be alive from yesterday.
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for seen[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func (o *LocalObserver) DirtyFileCount(ctx context.Context) int {
	out, err := o.run(ctx, "status", "--porcelain")
	if err != nil || out == "" {
		return 0
	}
	return len(strings.Split(out, "\n"))
}

func (o *LocalObserver) HasTestFiles(ctx context.Context) bool {
	out, err := o.run(ctx, "ls-files", "*_test.go", "*test*", "*spec*")
	return err == nil && out != ""
}

func (o *LocalObserver) HasReadme(ctx context.Context) bool {
	out, err := o.run(ctx, "ls-files", "README*", "readme*", "docs/*")
	return err == nil && out != ""
}

func (o *LocalObserver) LastCommitTime(ctx context.Context) (time.Time, bool) {
	out, err := o.run(ctx, "log", "-n", "1", "--pretty=format:%ct")
	if err != nil || out == "" {
		return time.Time{}, false
	}
	ts, err := strconv.ParseInt(out, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(ts, 0), true
}

func (o *LocalObserver) FindMarkedComments(ctx context.Context, patterns []string) int {
	if len(patterns) == 0 {
		return 0
	}
	args := []string{"grep", "-c"}
	for _, p := range patterns {
		args = append(args, "-e", p)
	}
	out, err := o.run(ctx, args...)
	if err != nil || out == "" {
		// git grep exits 1 when nothing matches; that is a clean zero.
		return 0
	}
	total := 0
	for _, line := range strings.Split(out, "\n") {
		if idx := strings.LastIndex(line, ":"); idx >= 0 {
			if n, err := strconv.Atoi(line[idx+1:]); err == nil {
				total += n
			}
		}
	}
	return total
}

func (o *LocalObserver) StagedDiffSummary(ctx context.Context) DiffSummary {
	out, err := o.run(ctx, "diff", "--cached", "--numstat")
	if err != nil || out == "" {
		return DiffSummary{}
	}
	return parseNumstat(out)
}

// parseNumstat parses 'git diff --numstat' output. Binary files report
// "-" for both columns and count as zero-line changes.
func parseNumstat(out string) DiffSummary {
	var sum DiffSummary
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		added, _ := strconv.Atoi(fields[0])
		deleted, _ := strconv.Atoi(fields[1])
		sum.Files = append(sum.Files, FileChange{
			Path:    strings.Join(fields[2:], " "),
			Added:   added,
			Deleted: deleted,
		})
		sum.TotalAdded += added
		sum.TotalDeleted += deleted
	}
	return sum
}

// Commit commits the staged changes with the given message.
func (o *LocalObserver) Commit(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("commit message is required")
	}
	_, err := o.run(ctx, "commit", "-m", message)
	return err
}
