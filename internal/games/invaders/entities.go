package invaders

// AlienType tags an alien for future skinning. The simulation never reads it.
type AlienType uint8

// Alien is a stationary enemy in the grid.
type Alien struct {
	X, Y int
	Type AlienType
}

// Player is the ship controlled by the input source.
type Player struct {
	X, Y int
	Life int // Tracked but never decremented
}

// Bullet is a player projectile.
type Bullet struct {
	X, Y int
	Dir  int // Vertical pixels per tick, positive = up
}
