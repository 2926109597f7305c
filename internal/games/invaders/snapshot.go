package invaders

// Snapshot is a plain-data copy of the game state for printing and
// comparison. It holds no references into the live game.
type Snapshot struct {
	Tick       int              `yaml:"tick"`
	Player     PlayerSnapshot   `yaml:"player"`
	Aliens     int              `yaml:"aliens"`
	Bullets    []BulletSnapshot `yaml:"bullets"`
	Animation  AnimationState   `yaml:"animation"`
	ShotsFired int              `yaml:"shots_fired"`
	Dropped    int              `yaml:"shots_dropped"`
}

// PlayerSnapshot is the player's position and life counter.
type PlayerSnapshot struct {
	X    int `yaml:"x"`
	Y    int `yaml:"y"`
	Life int `yaml:"life"`
}

// BulletSnapshot is one live bullet.
type BulletSnapshot struct {
	X   int `yaml:"x"`
	Y   int `yaml:"y"`
	Dir int `yaml:"dir"`
}

// AnimationState is the alien animation clock.
type AnimationState struct {
	Elapsed   int  `yaml:"elapsed"`
	Frame     int  `yaml:"frame"` // -1 once exhausted
	Exhausted bool `yaml:"exhausted"`
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	live := g.bullets.Live()
	bullets := make([]BulletSnapshot, len(live))
	for i, b := range live {
		bullets[i] = BulletSnapshot{X: b.X, Y: b.Y, Dir: b.Dir}
	}

	return Snapshot{
		Tick: g.stats.Ticks,
		Player: PlayerSnapshot{
			X:    g.player.X,
			Y:    g.player.Y,
			Life: g.player.Life,
		},
		Aliens:  len(g.aliens),
		Bullets: bullets,
		Animation: AnimationState{
			Elapsed:   g.animation.Elapsed(),
			Frame:     g.animation.FrameIndex(),
			Exhausted: g.animation.Exhausted(),
		},
		ShotsFired: g.stats.ShotsFired,
		Dropped:    g.stats.ShotsDropped,
	}
}
