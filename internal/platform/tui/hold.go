package tui

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// holdTracker turns the press-only key stream of a terminal into press and
// release edges. A key counts as held while its auto-repeat keeps arriving;
// once no press has been seen for releaseAfter the key is released.
//
// Fire is edge-triggered on release, so one held space bar fires once.
type holdTracker struct {
	releaseAfter time.Duration
	dirs         [2]time.Time // Indexed by core.Direction; zero means up
	fire         time.Time
}

func newHoldTracker(releaseAfter time.Duration) *holdTracker {
	if releaseAfter <= 0 {
		releaseAfter = core.DefaultConfig().ReleaseAfter
	}
	return &holdTracker{releaseAfter: releaseAfter}
}

// press records a direction key press at now.
// Only the first press of a hold reaches the input state.
func (h *holdTracker) press(in *core.InputState, d core.Direction, now time.Time) {
	if h.dirs[d].IsZero() {
		in.Press(d)
	}
	h.dirs[d] = now
}

// pressFire records a fire key press at now.
func (h *holdTracker) pressFire(now time.Time) {
	h.fire = now
}

// expire releases every key whose last press is older than releaseAfter.
func (h *holdTracker) expire(in *core.InputState, now time.Time) {
	for d := range h.dirs {
		last := h.dirs[d]
		if !last.IsZero() && now.Sub(last) >= h.releaseAfter {
			in.Release(core.Direction(d))
			h.dirs[d] = time.Time{}
		}
	}
	if !h.fire.IsZero() && now.Sub(h.fire) >= h.releaseAfter {
		in.ReleaseFire()
		h.fire = time.Time{}
	}
}

// held reports whether d is currently held.
func (h *holdTracker) held(d core.Direction) bool {
	return !h.dirs[d].IsZero()
}
