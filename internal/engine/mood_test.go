package engine

import (
	"testing"
	"time"
)

func TestMoodForTiers(t *testing.T) {
	cases := []struct {
		hp   int
		idle time.Duration
		want Mood
	}{
		{100, 0, MoodExcited},
		{90, 0, MoodExcited}, // boundary belongs to the upper tier
		{89, 0, MoodHappy},
		{70, 0, MoodHappy},
		{69, 0, MoodNeutral},
		{50, 0, MoodNeutral},
		{49, 0, MoodSad},
		{25, 0, MoodSad},
		{24, 0, MoodSick},
		{0, 0, MoodSick},
		{50, 61 * time.Second, MoodSleeping}, // idle overrides HP
		{100, 60 * time.Second, MoodSleeping},
		{100, 59 * time.Second, MoodExcited},
	}
	for _, tc := range cases {
		if got := MoodFor(tc.hp, tc.idle); got != tc.want {
			t.Fatalf("MoodFor(%d, %s)=%s, want %s", tc.hp, tc.idle, got, tc.want)
		}
	}
}

func TestMoodForTotalOverRange(t *testing.T) {
	for hp := -10; hp <= 110; hp++ {
		m := MoodFor(hp, 0)
		if !m.IsValid() {
			t.Fatalf("MoodFor(%d, 0) returned invalid mood %q", hp, m)
		}
	}
}
