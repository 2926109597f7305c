// Package invaders implements a minimal Space Invaders-style simulation.
// The player ship moves along the bottom of the playfield and fires bullets
// upward past a stationary, animated grid of aliens.
//
// Each call to Step renders the current state, advances the alien
// animation, hands the buffer to the Renderer and then simulates the next
// state. The presented frame therefore always shows the state from before
// this tick's simulation.
package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Renderer receives the finished buffer once per tick.
// Implementations must copy what they need before returning; the buffer is
// cleared and redrawn on the next Step.
type Renderer interface {
	Present(buf *core.Buffer)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(buf *core.Buffer)

// Present calls f(buf).
func (f RendererFunc) Present(buf *core.Buffer) {
	f(buf)
}

// Stats counts what happened since the last Reset.
type Stats struct {
	Ticks        int // Completed Step calls
	ShotsFired   int // Bullets spawned
	ShotsDropped int // Fire edges ignored because the pool was full
}

// Game owns every entity, the alien animation and the pixel buffer.
// It is driven from a single goroutine.
type Game struct {
	cfg       config.InvadersConfig
	buffer    *core.Buffer
	animation *core.Animation
	aliens    []Alien
	player    Player
	bullets   *BulletPool
	bg, fg    core.Color
	stats     Stats
}

// New creates a game from the given configuration.
func New(cfg config.InvadersConfig) *Game {
	g := &Game{}
	g.Reset(cfg)
	return g
}

// NewDefault creates a game with the built-in configuration.
func NewDefault() *Game {
	return New(config.DefaultInvadersConfig())
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Invaders"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg config.InvadersConfig) {
	g.cfg = cfg
	g.bg, g.fg = cfg.Palette()

	if g.buffer == nil || g.buffer.Width() != cfg.Playfield.Width || g.buffer.Height() != cfg.Playfield.Height {
		g.buffer = core.NewBuffer(cfg.Playfield.Width, cfg.Playfield.Height)
	}
	g.buffer.Clear(g.bg)

	g.animation = core.NewAnimation(alienFrames, cfg.Animation.FrameDuration, cfg.Animation.Loop)

	rows, cols := cfg.Aliens.Rows, cfg.Aliens.Cols
	g.aliens = make([]Alien, rows*cols)
	for yi := 0; yi < rows; yi++ {
		for xi := 0; xi < cols; xi++ {
			g.aliens[yi*cols+xi] = Alien{
				X: cfg.Aliens.SpacingX*xi + cfg.Aliens.StartX,
				Y: cfg.Aliens.SpacingY*yi + cfg.Aliens.StartY,
			}
		}
	}

	g.player = Player{
		X:    cfg.Player.X,
		Y:    cfg.Player.Y,
		Life: cfg.Player.Life,
	}

	if g.bullets == nil || g.bullets.Cap() != cfg.Bullets.Capacity {
		g.bullets = NewBulletPool(cfg.Bullets.Capacity)
	}
	g.bullets.Clear()

	g.stats = Stats{}
}

// Step runs one tick: draw, animate, present, then simulate.
// r may be nil when running headless.
func (g *Game) Step(in core.InputSnapshot, r Renderer) {
	g.Render()
	g.animation.Tick()

	if r != nil {
		r.Present(g.buffer)
	}

	g.simulateBullets()
	g.simulatePlayer(in.Move)
	g.handleFire(in.Fire)

	g.stats.Ticks++
}

// Render clears the buffer and draws aliens, bullets and the player from
// the current state. It does not advance anything.
func (g *Game) Render() {
	g.buffer.Clear(g.bg)

	// A finished non-looping animation has no frame to draw
	if frame, err := g.animation.Frame(); err == nil {
		for _, a := range g.aliens {
			g.buffer.Stamp(frame, a.X, a.Y, g.fg)
		}
	}

	for _, b := range g.bullets.Live() {
		g.buffer.Stamp(bulletSprite, b.X, b.Y, g.fg)
	}

	g.buffer.Stamp(playerSprite, g.player.X, g.player.Y, g.fg)
}

// simulateBullets moves bullets and drops those that left the playfield.
func (g *Game) simulateBullets() {
	g.bullets.Advance(bulletSprite.Height(), g.cfg.Playfield.Height)
}

// simulatePlayer applies horizontal movement with edge clamping.
func (g *Game) simulatePlayer(intent int) {
	movement := g.cfg.Player.Speed * intent
	if movement == 0 {
		return
	}

	// Reversing movement at an edge only affects this local copy; nothing
	// reads it afterwards, so the next tick starts from the raw intent again.
	width := g.cfg.Playfield.Width
	switch {
	case g.player.X+playerSprite.Width()+movement >= width-1:
		g.player.X = width - playerSprite.Width() - 1
		movement = -movement
	case g.player.X+movement <= 0:
		g.player.X = 0
		movement = -movement
	default:
		g.player.X += movement
	}
}

// handleFire spawns a bullet above the player's center on a fire edge.
func (g *Game) handleFire(fire bool) {
	if !fire {
		return
	}
	spawned := g.bullets.Spawn(Bullet{
		X:   g.player.X + playerSprite.Width()/2,
		Y:   g.player.Y + playerSprite.Height(),
		Dir: g.cfg.Bullets.Speed,
	})
	if spawned {
		g.stats.ShotsFired++
	} else {
		g.stats.ShotsDropped++
	}
}

// Buffer returns the render target. It reflects the last Render call.
func (g *Game) Buffer() *core.Buffer {
	return g.buffer
}

// Animation returns the shared alien animation clock.
func (g *Game) Animation() *core.Animation {
	return g.animation
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Aliens returns the alien grid in row-major order.
func (g *Game) Aliens() []Alien {
	return g.aliens
}

// Bullets returns the live bullets, valid until the next Step.
func (g *Game) Bullets() []Bullet {
	return g.bullets.Live()
}

// BulletPool returns the underlying bullet pool.
func (g *Game) BulletPool() *BulletPool {
	return g.bullets
}

// Stats returns counters since the last Reset.
func (g *Game) Stats() Stats {
	return g.stats
}

// Config returns the configuration the game was reset with.
func (g *Game) Config() config.InvadersConfig {
	return g.cfg
}
