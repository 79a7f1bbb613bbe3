package ui

import "gitbuddy/internal/engine"

// PetArt returns the ASCII pet for a mood. The level adds accessories
// once the pet has evolved a bit.
func PetArt(mood engine.Mood, level int) string {
	face := petFace(mood)
	crown := ""
	if level >= 5 {
		crown = "     👑\n"
	} else if level >= 3 {
		crown = "     ⭐\n"
	}
	return crown + face
}

func petFace(mood engine.Mood) string {
	switch mood {
	case engine.MoodExcited:
		return `  /\_/\
 ( ^o^ )
  > ♥ <`
	case engine.MoodHappy:
		return `  /\_/\
 ( ^.^ )
  > ^ <`
	case engine.MoodNeutral:
		return `  /\_/\
 ( o.o )
  > - <`
	case engine.MoodSad:
		return `  /\_/\
 ( ;_; )
  > . <`
	case engine.MoodSick:
		return `  /\_/\
 ( x_x )
  > ~ <`
	case engine.MoodSleeping:
		return `  /\_/\
 ( -.- ) zZ
  > _ <`
	default:
		return `  /\_/\
 ( ?.? )
  > ? <`
	}
}

// MoodLine is the pet's one-liner for the current mood.
func MoodLine(mood engine.Mood, name string) string {
	switch mood {
	case engine.MoodExcited:
		return name + " is bouncing off the walls!"
	case engine.MoodHappy:
		return name + " purrs contentedly."
	case engine.MoodNeutral:
		return name + " is doing fine."
	case engine.MoodSad:
		return name + " misses your commits..."
	case engine.MoodSick:
		return name + " needs urgent care! Check your repo."
	case engine.MoodSleeping:
		return name + " fell asleep waiting for you."
	default:
		return name + " stares into the void."
	}
}
