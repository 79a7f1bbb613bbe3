package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "pet.json"))
}

func TestLoadMissingFileIsFirstRun(t *testing.T) {
	s := newTestStore(t)
	p, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	s := newTestStore(t)
	now := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)

	p := NewPetState("Byte", now)
	p.XP = 150
	p.Level = 2
	p.HP = 85
	p.TotalFeeds = 3
	p.Unlock("first_feed")
	p.Focus = FocusStats{Count: 2, TotalMinutes: 50, Best: &BestFocus{Minutes: 30, Date: "2024-03-05"}}
	p.DailyChallenge = &DailyChallengeState{Date: "2024-03-06", ChallengeID: "feed_2", Progress: 1}
	p.MarkSessionAction("feed")

	require.NoError(t, s.Save(p))

	got, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "Byte", got.Name)
	assert.Equal(t, 150, got.XP)
	assert.Equal(t, 2, got.Level)
	assert.Equal(t, 85, got.HP)
	assert.Equal(t, 3, got.TotalFeeds)
	assert.True(t, got.HasAchievement("first_feed"))
	require.NotNil(t, got.Focus.Best)
	assert.Equal(t, 30, got.Focus.Best.Minutes)
	require.NotNil(t, got.DailyChallenge)
	assert.Equal(t, "feed_2", got.DailyChallenge.ChallengeID)

	// Session actions are process-scoped and never persist.
	assert.Empty(t, got.SessionActions)
	assert.NotNil(t, got.SessionActions)
}

func TestSaveIsPrettyPrinted(t *testing.T) {
	s := newTestStore(t)
	p := NewPetState("Byte", time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC))
	require.NoError(t, s.Save(p))

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(raw), "{\n  \"schemaVersion\": 1,"))
	assert.True(t, strings.HasSuffix(string(raw), "}\n"))
	assert.True(t, json.Valid(raw))

	// Saving the same record twice produces identical bytes.
	require.NoError(t, s.Save(p))
	again, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, raw, again)
}

func TestLoadCorruptFileIsFirstRun(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o644))

	p, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestMigrateVersionZero(t *testing.T) {
	s := newTestStore(t)
	legacy := `{"name":"Byte","xp":250,"totalFeeds":4}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(legacy), 0o644))

	p, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, CurrentSchemaVersion, p.SchemaVersion)
	assert.Equal(t, 250, p.XP)
	assert.Equal(t, 4, p.TotalFeeds)
	assert.Equal(t, 100, p.HP)
	assert.Equal(t, 1, p.Level)
	assert.NotNil(t, p.Achievements)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestLoadFutureVersionIsFirstRun(t *testing.T) {
	s := newTestStore(t)
	future := `{"schemaVersion":99,"name":"Byte"}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(future), 0o644))

	p, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestReset(t *testing.T) {
	s := newTestStore(t)

	existed, err := s.Reset()
	require.NoError(t, err)
	assert.False(t, existed)

	require.NoError(t, s.Save(NewPetState("Byte", time.Now())))

	existed, err = s.Reset()
	require.NoError(t, err)
	assert.True(t, existed)

	p, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestRolloverDaily(t *testing.T) {
	now := time.Date(2024, 3, 6, 23, 50, 0, 0, time.UTC)
	p := NewPetState("Byte", now)
	p.Daily.Feeds = 2
	p.Daily.Scans = 1

	assert.False(t, p.RolloverDaily(now.Add(5*time.Minute)))
	assert.Equal(t, 2, p.Daily.Feeds)

	assert.True(t, p.RolloverDaily(now.Add(time.Hour)))
	assert.Equal(t, "2024-03-07", p.Daily.Date)
	assert.Zero(t, p.Daily.Feeds)
	assert.Zero(t, p.Daily.Scans)
}

func TestUnlockIgnoresDuplicates(t *testing.T) {
	p := NewPetState("Byte", time.Now())
	p.Unlock("first_feed")
	p.Unlock("first_feed")
	assert.Equal(t, []string{"first_feed"}, p.Achievements)
}
