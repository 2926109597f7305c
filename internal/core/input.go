package core

// Direction is a horizontal movement key.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// InputSnapshot is the input handed to one simulation tick.
type InputSnapshot struct {
	Move int  // Net horizontal intent: +1 right, -1 left, 0 none or both
	Fire bool // A fire edge was seen since the previous tick
	Quit bool // Quit was requested
}

// InputState accumulates raw press/release edges between ticks.
// Presenters feed it from their event source and the loop calls Take once
// per tick. It is owned by the loop goroutine and is not safe for
// concurrent use.
type InputState struct {
	move int
	fire bool
	quit bool
}

// NewInputState creates an empty input accumulator.
func NewInputState() *InputState {
	return &InputState{}
}

// Press records a direction key going down.
// Right adds +1, left adds -1, so opposite holds cancel.
func (s *InputState) Press(d Direction) {
	switch d {
	case DirRight:
		s.move++
	case DirLeft:
		s.move--
	}
}

// Release records a direction key coming up.
func (s *InputState) Release(d Direction) {
	switch d {
	case DirRight:
		s.move--
	case DirLeft:
		s.move++
	}
}

// ReleaseFire records the fire trigger's release edge.
func (s *InputState) ReleaseFire() {
	s.fire = true
}

// Quit records a quit request.
func (s *InputState) Quit() {
	s.quit = true
}

// Move returns the current net horizontal intent.
func (s *InputState) Move() int {
	return s.move
}

// Take returns the input for this tick and consumes the fire edge.
// The directional accumulator is level state and is left untouched.
func (s *InputState) Take() InputSnapshot {
	snap := InputSnapshot{
		Move: s.move,
		Fire: s.fire,
		Quit: s.quit,
	}
	s.fire = false
	return snap
}

// Reset clears all accumulated input.
func (s *InputState) Reset() {
	*s = InputState{}
}
