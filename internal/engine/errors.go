package engine

import "errors"

// Expected conditions that the command layer turns into in-character
// pet messages instead of technical errors.
var (
	ErrNothingStaged = errors.New("nothing staged")
	ErrNotARepo      = errors.New("not a git repository")
)

// PetSpeak returns the pet's in-character line for an expected error,
// or "" when the error is a real failure that should surface as-is.
func PetSpeak(err error) string {
	switch {
	case errors.Is(err, ErrNothingStaged):
		return "I don't smell any staged changes! (git add something first)"
	case errors.Is(err, ErrNotARepo):
		return "This doesn't look like a git repository... I have nowhere to live!"
	default:
		return ""
	}
}
