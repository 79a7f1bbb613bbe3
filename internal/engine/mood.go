package engine

import "time"

type Mood string

const (
	MoodSleeping Mood = "sleeping"
	MoodExcited  Mood = "excited"
	MoodHappy    Mood = "happy"
	MoodNeutral  Mood = "neutral"
	MoodSad      Mood = "sad"
	MoodSick     Mood = "sick"
)

func (m Mood) IsValid() bool {
	switch m {
	case MoodSleeping, MoodExcited, MoodHappy, MoodNeutral, MoodSad, MoodSick:
		return true
	default:
		return false
	}
}

// IdleSleepAfter is how long without input before the pet dozes off.
const IdleSleepAfter = 60 * time.Second

// MoodFor maps HP and idle time onto a discrete mood. Idle wins over
// every HP tier; boundary HP values belong to the upper tier.
func MoodFor(hp int, idle time.Duration) Mood {
	if idle >= IdleSleepAfter {
		return MoodSleeping
	}
	switch {
	case hp >= 90:
		return MoodExcited
	case hp >= 70:
		return MoodHappy
	case hp >= 50:
		return MoodNeutral
	case hp >= 25:
		return MoodSad
	default:
		return MoodSick
	}
}
