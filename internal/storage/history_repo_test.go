package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHistory(t *testing.T) *HistoryRepo {
	t.Helper()
	ctx := context.Background()

	db, err := Open(ctx, filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewHistoryRepo(db)
}

func TestHistoryInsertAndListRecent(t *testing.T) {
	r := newTestHistory(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)

	id1, err := r.Insert(ctx, EventFeed, base, 10, "fed on 3 staged files")
	require.NoError(t, err)
	id2, err := r.Insert(ctx, EventScan, base.Add(time.Hour), 5, "")
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	events, err := r.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, EventScan, events[0].Kind)
	assert.Equal(t, EventFeed, events[1].Kind)
	assert.Equal(t, 10, events[1].XPAwarded)
	assert.Equal(t, "fed on 3 staged files", events[1].Detail)
	assert.True(t, events[1].OccurredAt.Equal(base), "occurred_at %s, want %s", events[1].OccurredAt, base)
}

func TestHistoryListRecentLimit(t *testing.T) {
	r := newTestHistory(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		_, err := r.Insert(ctx, EventPlay, base.Add(time.Duration(i)*time.Minute), 5, "")
		require.NoError(t, err)
	}

	events, err := r.ListRecent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestHistoryCountByDay(t *testing.T) {
	r := newTestHistory(t)
	ctx := context.Background()

	day1 := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC)

	for _, ts := range []time.Time{day1, day1.Add(time.Hour), day2} {
		_, err := r.Insert(ctx, EventCommit, ts, 25, "")
		require.NoError(t, err)
	}

	counts, err := r.CountByDay(ctx, day1.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2024-03-05": 2, "2024-03-06": 1}, counts)

	// The window boundary excludes older events.
	counts, err = r.CountByDay(ctx, day2)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2024-03-06": 1}, counts)
}

func TestHistoryCountByDayNormalizesZones(t *testing.T) {
	r := newTestHistory(t)
	ctx := context.Background()

	// 02:30 on March 7th at UTC+5 is still March 6th in UTC; the
	// heatmap keys days in UTC on both write and read.
	east := time.FixedZone("UTC+5", 5*3600)
	ts := time.Date(2024, 3, 7, 2, 30, 0, 0, east)
	_, err := r.Insert(ctx, EventFeed, ts, 10, "")
	require.NoError(t, err)

	counts, err := r.CountByDay(ctx, ts.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2024-03-06": 1}, counts)
}

func TestHistoryCountSinceFiltersKind(t *testing.T) {
	r := newTestHistory(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)

	_, err := r.Insert(ctx, EventFeed, base, 10, "")
	require.NoError(t, err)
	_, err = r.Insert(ctx, EventFeed, base.Add(time.Hour), 10, "")
	require.NoError(t, err)
	_, err = r.Insert(ctx, EventScan, base, 5, "")
	require.NoError(t, err)

	n, err := r.CountSince(ctx, EventFeed, base)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = r.CountSince(ctx, EventFocus, base)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestHistoryTotalXPSince(t *testing.T) {
	r := newTestHistory(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)

	_, err := r.Insert(ctx, EventCommit, base.Add(-48*time.Hour), 25, "")
	require.NoError(t, err)
	_, err = r.Insert(ctx, EventFeed, base, 10, "")
	require.NoError(t, err)
	_, err = r.Insert(ctx, EventScan, base.Add(time.Hour), 5, "")
	require.NoError(t, err)

	total, err := r.TotalXPSince(ctx, base)
	require.NoError(t, err)
	assert.Equal(t, 15, total)

	total, err = r.TotalXPSince(ctx, base.Add(-72*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 40, total)
}

func TestHistoryEmptyQueries(t *testing.T) {
	r := newTestHistory(t)
	ctx := context.Background()

	counts, err := r.CountByDay(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Empty(t, counts)

	total, err := r.TotalXPSince(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, total)

	events, err := r.ListRecent(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, events)
}
