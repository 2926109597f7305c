// Package config provides YAML-based game configuration loading and
// validation for the invaders game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// InvadersConfig contains all configuration for the invaders game.
type InvadersConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Aliens    AliensConfig    `yaml:"aliens"`
	Player    PlayerConfig    `yaml:"player"`
	Bullets   BulletsConfig   `yaml:"bullets"`
	Animation AnimationConfig `yaml:"animation"`
	Colors    ColorsConfig    `yaml:"colors"`
}

// PlayfieldConfig defines the fixed size of the pixel buffer.
type PlayfieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// AliensConfig defines the alien grid layout.
type AliensConfig struct {
	Rows     int `yaml:"rows"`
	Cols     int `yaml:"cols"`
	StartX   int `yaml:"start_x"`
	StartY   int `yaml:"start_y"`
	SpacingX int `yaml:"spacing_x"`
	SpacingY int `yaml:"spacing_y"`
}

// PlayerConfig defines the player's starting state.
type PlayerConfig struct {
	X     int `yaml:"x"`
	Y     int `yaml:"y"`
	Life  int `yaml:"life"`
	Speed int `yaml:"speed"` // Pixels per tick per unit of horizontal intent
}

// BulletsConfig defines bullet capacity and speed.
type BulletsConfig struct {
	Capacity int `yaml:"capacity"`
	Speed    int `yaml:"speed"` // Vertical pixels per tick, positive = up
}

// AnimationConfig defines the alien animation clock.
type AnimationConfig struct {
	FrameDuration int  `yaml:"frame_duration"` // Ticks per frame
	Loop          bool `yaml:"loop"`
}

// ColorsConfig defines the palette as "#rrggbb" strings.
type ColorsConfig struct {
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
}

// Validate checks the config for values the simulation cannot run with.
func (c InvadersConfig) Validate() error {
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		return fmt.Errorf("%w: playfield must be positive, got %dx%d",
			ErrInvalidConfig, c.Playfield.Width, c.Playfield.Height)
	}
	if c.Aliens.Rows < 0 || c.Aliens.Cols < 0 {
		return fmt.Errorf("%w: alien grid must not be negative, got %dx%d",
			ErrInvalidConfig, c.Aliens.Rows, c.Aliens.Cols)
	}
	if c.Bullets.Capacity <= 0 {
		return fmt.Errorf("%w: bullet capacity must be positive, got %d",
			ErrInvalidConfig, c.Bullets.Capacity)
	}
	if c.Animation.FrameDuration <= 0 {
		return fmt.Errorf("%w: frame duration must be positive, got %d",
			ErrInvalidConfig, c.Animation.FrameDuration)
	}
	if _, err := core.ParseColor(c.Colors.Background); err != nil {
		return fmt.Errorf("%w: background: %w", ErrInvalidConfig, err)
	}
	if _, err := core.ParseColor(c.Colors.Foreground); err != nil {
		return fmt.Errorf("%w: foreground: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Palette returns the parsed background and foreground colors.
// Unparseable values fall back to the default palette.
func (c InvadersConfig) Palette() (bg, fg core.Color) {
	bg, err := core.ParseColor(c.Colors.Background)
	if err != nil {
		bg = core.ColorField
	}
	fg, err = core.ParseColor(c.Colors.Foreground)
	if err != nil {
		fg = core.ColorInk
	}
	return bg, fg
}
