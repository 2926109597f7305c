package invaders

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ScriptStep holds an input for a number of ticks.
type ScriptStep struct {
	Ticks int  `yaml:"ticks"`
	Move  int  `yaml:"move"` // -1 left, 0 none, +1 right
	Fire  bool `yaml:"fire"` // One fire edge before the first tick of the step
}

// Script is a sequence of input steps for headless runs.
type Script []ScriptStep

// ParseScript decodes a YAML list of steps.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("script: cannot parse: %w", err)
	}
	for i, step := range s {
		if step.Ticks < 0 {
			return nil, fmt.Errorf("script: step %d has negative ticks", i)
		}
		if step.Move < -1 || step.Move > 1 {
			return nil, fmt.Errorf("script: step %d move must be -1, 0 or 1, got %d", i, step.Move)
		}
	}
	return s, nil
}

// TotalTicks returns the number of ticks the script runs.
func (s Script) TotalTicks() int {
	n := 0
	for _, step := range s {
		n += step.Ticks
	}
	return n
}

// RunScript drives g through the script the same way a presenter would:
// key edges go into an InputState and each tick consumes one snapshot.
func RunScript(g *Game, s Script, r Renderer) Snapshot {
	in := core.NewInputState()
	held := 0

	for _, step := range s {
		held = setHeld(in, held, step.Move)
		if step.Fire {
			in.ReleaseFire()
		}
		for i := 0; i < step.Ticks; i++ {
			g.Step(in.Take(), r)
		}
	}
	return g.Snapshot()
}

// setHeld emits release/press edges to move from one held direction to another.
func setHeld(in *core.InputState, from, to int) int {
	if from == to {
		return to
	}
	switch from {
	case 1:
		in.Release(core.DirRight)
	case -1:
		in.Release(core.DirLeft)
	}
	switch to {
	case 1:
		in.Press(core.DirRight)
	case -1:
		in.Press(core.DirLeft)
	}
	return to
}

// PatternScript builds a script that holds right for the first right ticks,
// then left for the next left ticks, then idles until ticks have run.
// With fireEvery > 0 a fire edge is queued before every fireEvery-th tick,
// starting with the first.
func PatternScript(ticks, right, left, fireEvery int) Script {
	var s Script
	for i := 0; i < ticks; i++ {
		move := 0
		switch {
		case i < right:
			move = 1
		case i < right+left:
			move = -1
		}
		fire := fireEvery > 0 && i%fireEvery == 0

		// Extend the previous step unless this tick needs a fresh fire edge
		if n := len(s); n > 0 && !fire && s[n-1].Move == move {
			s[n-1].Ticks++
			continue
		}
		s = append(s, ScriptStep{Ticks: 1, Move: move, Fire: fire})
	}
	return s
}
