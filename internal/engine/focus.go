package engine

import "time"

// FocusSession is a pause-exact wall-clock timer. The elapsed time is
// always now - start - pausedTotal, so pausing and resuming never
// drifts. The session is a plain value owned by whoever started it;
// there is no ambient current-session global.
type FocusSession struct {
	start       time.Time
	target      time.Duration
	pausedTotal time.Duration
	pausedAt    time.Time
}

// NewFocusSession starts a session aiming for the given number of
// minutes.
func NewFocusSession(now time.Time, minutes int) *FocusSession {
	if minutes < 1 {
		minutes = 1
	}
	return &FocusSession{start: now, target: time.Duration(minutes) * time.Minute}
}

func (f *FocusSession) Target() time.Duration { return f.target }

func (f *FocusSession) Paused() bool { return !f.pausedAt.IsZero() }

// Pause freezes the clock. Pausing twice is a no-op.
func (f *FocusSession) Pause(now time.Time) {
	if f.Paused() {
		return
	}
	f.pausedAt = now
}

// Resume accumulates the paused interval into the running total.
func (f *FocusSession) Resume(now time.Time) {
	if !f.Paused() {
		return
	}
	f.pausedTotal += now.Sub(f.pausedAt)
	f.pausedAt = time.Time{}
}

// Elapsed returns active (non-paused) time since the session began.
func (f *FocusSession) Elapsed(now time.Time) time.Duration {
	end := now
	if f.Paused() {
		end = f.pausedAt
	}
	elapsed := end.Sub(f.start) - f.pausedTotal
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Remaining returns time left toward the target, never negative.
func (f *FocusSession) Remaining(now time.Time) time.Duration {
	remaining := f.target - f.Elapsed(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Done reports whether the target has been reached.
func (f *FocusSession) Done(now time.Time) bool {
	return f.Elapsed(now) >= f.target
}

// Minutes returns whole elapsed minutes, for XP and the session log.
func (f *FocusSession) Minutes(now time.Time) int {
	return int(f.Elapsed(now).Minutes())
}
