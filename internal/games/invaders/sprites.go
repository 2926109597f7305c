package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Sprite assets. Row 0 is the top visual row.
var (
	alienFrame0 = core.MustParseSprite(
		"..@.....@..",
		"...@...@...",
		"..@@@@@@@..",
		".@@.@@@.@@.",
		"@@@@@@@@@@@",
		"@.@@@@@@@.@",
		"@.@.....@.@",
		"...@@.@@...",
	)

	alienFrame1 = core.MustParseSprite(
		"..@.....@..",
		"@..@...@..@",
		"@.@@@@@@@.@",
		"@@@.@@@.@@@",
		"@@@@@@@@@@@",
		".@@@@@@@@@.",
		"..@.....@..",
		".@.......@.",
	)

	playerSprite = core.MustParseSprite(
		".....@.....",
		"....@@@....",
		"....@@@....",
		".@@@@@@@@@.",
		"@@@@@@@@@@@",
		"@@@@@@@@@@@",
		"@@@@@@@@@@@",
	)

	bulletSprite = core.MustParseSprite(
		"@",
		"@",
		"@",
	)

	alienFrames = []*core.Sprite{alienFrame0, alienFrame1}
)

// AlienFrames returns the shared alien animation frames.
func AlienFrames() []*core.Sprite {
	return alienFrames
}

// PlayerSprite returns the player sprite.
func PlayerSprite() *core.Sprite {
	return playerSprite
}

// BulletSprite returns the bullet sprite.
func BulletSprite() *core.Sprite {
	return bulletSprite
}
