package core

import "time"

// RuntimeConfig contains settings passed from the CLI to a presenter.
// They affect pacing and display only, never simulation results.
type RuntimeConfig struct {
	TickRate     int           // Simulation ticks per second (default 60)
	Scale        int           // Window pixel scale (window presenter)
	CellStep     int           // Buffer pixels per terminal column (terminal presenter)
	ReleaseAfter time.Duration // Synthesized key release delay (terminal presenter)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate:     60,
		Scale:        2,
		CellStep:     1,
		ReleaseAfter: 120 * time.Millisecond,
	}
}

// TickInterval returns the wall-clock duration of one tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}
