package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestHoldTrackerDirection(t *testing.T) {
	in := core.NewInputState()
	h := newHoldTracker(120 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.press(in, core.DirLeft, t0)
	if in.Move() != -1 {
		t.Fatalf("Move() after press = %d, expected -1", in.Move())
	}

	// Auto-repeat must not press twice
	h.press(in, core.DirLeft, t0.Add(50*time.Millisecond))
	if in.Move() != -1 {
		t.Errorf("Move() after repeat = %d, expected -1", in.Move())
	}

	h.expire(in, t0.Add(100*time.Millisecond))
	if !h.held(core.DirLeft) || in.Move() != -1 {
		t.Errorf("key released too early")
	}

	h.expire(in, t0.Add(170*time.Millisecond))
	if h.held(core.DirLeft) || in.Move() != 0 {
		t.Errorf("Move() after timeout = %d, expected 0", in.Move())
	}
}

func TestHoldTrackerBothDirectionsCancel(t *testing.T) {
	in := core.NewInputState()
	h := newHoldTracker(120 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.press(in, core.DirLeft, t0)
	h.press(in, core.DirRight, t0.Add(10*time.Millisecond))
	if in.Move() != 0 {
		t.Errorf("Move() with both held = %d, expected 0", in.Move())
	}

	// Left expires first, right is still held
	h.expire(in, t0.Add(125*time.Millisecond))
	if in.Move() != 1 {
		t.Errorf("Move() after left release = %d, expected 1", in.Move())
	}
}

func TestHoldTrackerFireOnRelease(t *testing.T) {
	in := core.NewInputState()
	h := newHoldTracker(120 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.pressFire(t0)
	h.pressFire(t0.Add(60 * time.Millisecond))

	h.expire(in, t0.Add(100*time.Millisecond))
	if in.Take().Fire {
		t.Error("fire triggered while still held")
	}

	h.expire(in, t0.Add(180*time.Millisecond))
	if !in.Take().Fire {
		t.Error("fire not triggered on release")
	}
	if in.Take().Fire {
		t.Error("fire edge consumed more than once")
	}

	// Nothing held, nothing to release
	h.expire(in, t0.Add(time.Second))
	if in.Take().Fire {
		t.Error("fire triggered without a press")
	}
}

func TestHoldTrackerDefaultDelay(t *testing.T) {
	h := newHoldTracker(0)
	if h.releaseAfter != core.DefaultConfig().ReleaseAfter {
		t.Errorf("releaseAfter = %v, expected default", h.releaseAfter)
	}
}
