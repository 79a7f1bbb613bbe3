package gitrepo

import (
	"context"
	"testing"
	"time"
)

func TestStreakFromDates(t *testing.T) {
	now := time.Date(2024, 3, 6, 15, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		dates []string
		want  int
	}{
		{"empty", nil, 0},
		{"today only", []string{"2024-03-06"}, 1},
		{"three consecutive through today", []string{"2024-03-06", "2024-03-05", "2024-03-04"}, 3},
		{"yesterday keeps streak alive", []string{"2024-03-05", "2024-03-04"}, 2},
		{"gap before yesterday ends it", []string{"2024-03-04", "2024-03-03"}, 0},
		{"gap in middle stops the walk", []string{"2024-03-06", "2024-03-05", "2024-03-03"}, 2},
		{"duplicate days count once", []string{"2024-03-06", "2024-03-06", "2024-03-05"}, 2},
		{"future-free, old burst ignored", []string{"2024-02-01", "2024-01-31"}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := streakFromDates(tc.dates, now); got != tc.want {
				t.Fatalf("streakFromDates(%v)=%d, want %d", tc.dates, got, tc.want)
			}
		})
	}
}

func TestParseNumstat(t *testing.T) {
	out := "12\t3\tinternal/engine/xp.go\n" +
		"5\t0\tREADME.md\n" +
		"-\t-\tassets/pet.png\n" +
		"1\t1\tdocs/my notes.md"

	sum := parseNumstat(out)

	if len(sum.Files) != 4 {
		t.Fatalf("got %d files, want 4", len(sum.Files))
	}
	if sum.TotalAdded != 18 || sum.TotalDeleted != 4 {
		t.Fatalf("totals +%d/-%d, want +18/-4", sum.TotalAdded, sum.TotalDeleted)
	}

	first := sum.Files[0]
	if first.Path != "internal/engine/xp.go" || first.Added != 12 || first.Deleted != 3 {
		t.Fatalf("first file parsed wrong: %+v", first)
	}

	// Binary rows keep the path but contribute no line counts.
	binary := sum.Files[2]
	if binary.Path != "assets/pet.png" || binary.Added != 0 || binary.Deleted != 0 {
		t.Fatalf("binary file parsed wrong: %+v", binary)
	}

	// Paths with spaces survive field splitting.
	if sum.Files[3].Path != "docs/my notes.md" {
		t.Fatalf("spaced path parsed wrong: %q", sum.Files[3].Path)
	}
}

func TestParseNumstatEmpty(t *testing.T) {
	sum := parseNumstat("")
	if len(sum.Files) != 0 || sum.TotalAdded != 0 || sum.TotalDeleted != 0 {
		t.Fatalf("empty input produced %+v", sum)
	}
}

func TestCollectFillsDerivedFields(t *testing.T) {
	// Collect on a directory that is not a repo returns the sentinel.
	obs := NewLocalObserver(t.TempDir(), time.Second)
	data := Collect(context.Background(), obs)
	if data.IsRepo {
		t.Fatalf("temp dir reported as a repo")
	}
	if data.CommitCount != 0 || data.StreakDays != 0 {
		t.Fatalf("sentinel carried repo data: %+v", data)
	}
}
