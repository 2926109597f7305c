package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Playfield: PlayfieldConfig{
			Width:  224,
			Height: 256,
		},
		Aliens: AliensConfig{
			Rows:     5,
			Cols:     11,
			StartX:   20,
			StartY:   128,
			SpacingX: 16,
			SpacingY: 17,
		},
		Player: PlayerConfig{
			X:     117, // Centered: 122 minus half the sprite width
			Y:     32,
			Life:  3,
			Speed: 2,
		},
		Bullets: BulletsConfig{
			Capacity: 128,
			Speed:    2,
		},
		Animation: AnimationConfig{
			FrameDuration: 10,
			Loop:          true,
		},
		Colors: ColorsConfig{
			Background: "#008000",
			Foreground: "#800000",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
