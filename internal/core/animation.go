package core

import "errors"

// ErrAnimationExhausted is returned when a finished, non-looping animation
// is asked for a frame.
var ErrAnimationExhausted = errors.New("core: animation exhausted")

// Animation is a tick-driven clock over a sequence of shared sprite frames.
// The frames are borrowed: the animation never modifies them and they must
// outlive it.
//
// While running, elapsed stays in [0, len(frames)*frameDuration). Reaching
// the bound either wraps to 0 (loop) or moves to the terminal exhausted state.
type Animation struct {
	frames        []*Sprite
	frameDuration int
	elapsed       int
	loop          bool
	exhausted     bool
}

// NewAnimation creates an animation over frames, showing each one for
// frameDuration ticks. A non-positive frameDuration is treated as 1.
func NewAnimation(frames []*Sprite, frameDuration int, loop bool) *Animation {
	if frameDuration < 1 {
		frameDuration = 1
	}
	return &Animation{
		frames:        frames,
		frameDuration: frameDuration,
		loop:          loop,
		exhausted:     len(frames) == 0,
	}
}

// Tick advances the clock by one tick. It does not change which frame is
// being rendered this tick; that is read before Tick is called.
func (a *Animation) Tick() {
	if a.exhausted {
		return
	}
	a.elapsed++
	if a.elapsed == a.Period() {
		if a.loop {
			a.elapsed = 0
		} else {
			a.exhausted = true
		}
	}
}

// FrameIndex returns elapsed / frameDuration, or -1 once exhausted.
func (a *Animation) FrameIndex() int {
	if a.exhausted {
		return -1
	}
	return a.elapsed / a.frameDuration
}

// Frame returns the sprite for the current tick.
func (a *Animation) Frame() (*Sprite, error) {
	if a.exhausted {
		return nil, ErrAnimationExhausted
	}
	return a.frames[a.elapsed/a.frameDuration], nil
}

// Period is the number of ticks in one full pass over the frames.
func (a *Animation) Period() int {
	return len(a.frames) * a.frameDuration
}

// Elapsed returns the tick counter within the current pass.
func (a *Animation) Elapsed() int {
	return a.elapsed
}

// Exhausted reports whether a non-looping animation has finished.
func (a *Animation) Exhausted() bool {
	return a.exhausted
}

// Loop reports whether the animation wraps around.
func (a *Animation) Loop() bool {
	return a.loop
}

// FrameDuration returns the number of ticks each frame is shown.
func (a *Animation) FrameDuration() int {
	return a.frameDuration
}

// NumFrames returns the number of frames.
func (a *Animation) NumFrames() int {
	return len(a.frames)
}
