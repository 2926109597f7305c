package invaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

func step(g *Game, in core.InputSnapshot) {
	g.Step(in, nil)
}

func TestSpriteAssetsAreExact(t *testing.T) {
	tests := []struct {
		name   string
		sprite *core.Sprite
		w, h   int
		mask   []uint8
	}{
		{"alien frame 0", alienFrame0, 11, 8, []uint8{
			0, 0, 1, 0, 0, 0, 0, 0, 1, 0, 0,
			0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0,
			0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0,
			0, 1, 1, 0, 1, 1, 1, 0, 1, 1, 0,
			1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
			1, 0, 1, 1, 1, 1, 1, 1, 1, 0, 1,
			1, 0, 1, 0, 0, 0, 0, 0, 1, 0, 1,
			0, 0, 0, 1, 1, 0, 1, 1, 0, 0, 0,
		}},
		{"alien frame 1", alienFrame1, 11, 8, []uint8{
			0, 0, 1, 0, 0, 0, 0, 0, 1, 0, 0,
			1, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1,
			1, 0, 1, 1, 1, 1, 1, 1, 1, 0, 1,
			1, 1, 1, 0, 1, 1, 1, 0, 1, 1, 1,
			1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
			0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0,
			0, 0, 1, 0, 0, 0, 0, 0, 1, 0, 0,
			0, 1, 0, 0, 0, 0, 0, 0, 0, 1, 0,
		}},
		{"player", playerSprite, 11, 7, []uint8{
			0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0,
			0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0,
			0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0,
			0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0,
			1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
			1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
			1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
		}},
		{"bullet", bulletSprite, 1, 3, []uint8{1, 1, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.w, tc.sprite.Width())
			assert.Equal(t, tc.h, tc.sprite.Height())
			assert.Equal(t, tc.mask, tc.sprite.Mask())
		})
	}
}

func TestNewGameLayout(t *testing.T) {
	g := NewDefault()

	aliens := g.Aliens()
	require.Len(t, aliens, 55)
	assert.Equal(t, Alien{X: 20, Y: 128}, aliens[0])
	assert.Equal(t, Alien{X: 16*10 + 20, Y: 128}, aliens[10])
	assert.Equal(t, Alien{X: 20, Y: 17 + 128}, aliens[11])
	assert.Equal(t, Alien{X: 16*10 + 20, Y: 17*4 + 128}, aliens[54])

	assert.Equal(t, Player{X: 117, Y: 32, Life: 3}, g.Player())
	assert.Equal(t, 0, g.BulletPool().Len())
	assert.Equal(t, MaxBullets, g.BulletPool().Cap())
	assert.Equal(t, 224, g.Buffer().Width())
	assert.Equal(t, 256, g.Buffer().Height())

	anim := g.Animation()
	assert.Equal(t, 2, anim.NumFrames())
	assert.Equal(t, 10, anim.FrameDuration())
	assert.True(t, anim.Loop())
}

func TestPlayerMovesRight(t *testing.T) {
	g := NewDefault()
	for i := 0; i < 5; i++ {
		step(g, core.InputSnapshot{Move: 1})
	}
	assert.Equal(t, 127, g.Player().X)
}

func TestPlayerOpposingInputCancels(t *testing.T) {
	g := NewDefault()
	in := core.NewInputState()
	in.Press(core.DirLeft)
	in.Press(core.DirRight)

	for i := 0; i < 5; i++ {
		step(g, in.Take())
	}
	assert.Equal(t, 117, g.Player().X)
}

func TestPlayerClamp(t *testing.T) {
	rightBound := 224 - playerSprite.Width() - 1

	tests := []struct {
		name     string
		startX   int
		move     int
		ticks    int
		expected int
	}{
		{"right edge from near", rightBound - 1, 1, 1, rightBound},
		{"right edge held", 150, 1, 100, rightBound},
		{"right edge from exact bound", rightBound, 1, 3, rightBound},
		{"left edge from near", 1, -1, 1, 0},
		{"left edge held", 60, -1, 100, 0},
		{"left edge from zero", 0, -1, 3, 0},
		{"left edge exactly reaching zero", 2, -1, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewDefault()
			g.player.X = tc.startX
			for i := 0; i < tc.ticks; i++ {
				step(g, core.InputSnapshot{Move: tc.move})
				x := g.Player().X
				require.GreaterOrEqual(t, x, 0)
				require.LessOrEqual(t, x, rightBound)
			}
			assert.Equal(t, tc.expected, g.Player().X)
		})
	}
}

func TestClampReversalDoesNotPersist(t *testing.T) {
	g := NewDefault()
	g.player.X = 0

	step(g, core.InputSnapshot{Move: -1})
	require.Equal(t, 0, g.Player().X)

	// No input: the reversed movement from the clamp must not carry over
	step(g, core.InputSnapshot{})
	assert.Equal(t, 0, g.Player().X)

	step(g, core.InputSnapshot{Move: 1})
	assert.Equal(t, 2, g.Player().X)
}

func TestFireSpawnsBulletAbovePlayer(t *testing.T) {
	g := NewDefault()
	step(g, core.InputSnapshot{Fire: true})

	require.Len(t, g.Bullets(), 1)
	assert.Equal(t, Bullet{X: 122, Y: 39, Dir: 2}, g.Bullets()[0])
	assert.Equal(t, 1, g.Stats().ShotsFired)
}

func TestFireUsesPositionAfterMovement(t *testing.T) {
	g := NewDefault()
	step(g, core.InputSnapshot{Move: 1, Fire: true})

	require.Len(t, g.Bullets(), 1)
	assert.Equal(t, 119+5, g.Bullets()[0].X)
}

func TestFireIsEdgeTriggered(t *testing.T) {
	g := NewDefault()
	in := core.NewInputState()
	in.ReleaseFire()

	for i := 0; i < 20; i++ {
		step(g, in.Take())
	}
	assert.Equal(t, 1, g.BulletPool().Len())
	assert.Equal(t, 1, g.Stats().ShotsFired)
}

func TestFireAtCapacityIsDropped(t *testing.T) {
	g := NewDefault()
	for i := 0; i < MaxBullets; i++ {
		require.True(t, g.BulletPool().Spawn(Bullet{X: 10, Y: 100, Dir: 0}))
	}

	step(g, core.InputSnapshot{Fire: true})

	assert.Equal(t, MaxBullets, g.BulletPool().Len())
	assert.Equal(t, 0, g.Stats().ShotsFired)
	assert.Equal(t, 1, g.Stats().ShotsDropped)
}

func TestBulletTravelsAndExpires(t *testing.T) {
	g := NewDefault()
	step(g, core.InputSnapshot{Fire: true})
	require.Equal(t, 1, g.BulletPool().Len())

	// From y=39 moving +2, the bullet is removed once y >= 256
	ticks := 0
	for g.BulletPool().Len() > 0 {
		step(g, core.InputSnapshot{})
		ticks++
		require.Less(t, ticks, 200, "bullet never expired")
	}
	// 39 + 2*109 = 257 is the first y outside the playfield
	assert.Equal(t, 109, ticks)
}

func TestDrawLagsSimulationByOneTick(t *testing.T) {
	g := NewDefault()

	var frames []*core.Buffer
	r := RendererFunc(func(buf *core.Buffer) {
		frames = append(frames, buf.Snapshot())
	})

	_, fg := g.Config().Palette()

	g.Step(core.InputSnapshot{Fire: true}, r)
	g.Step(core.InputSnapshot{}, r)

	// The bullet spawned in tick 0 sits at (122, 39) and moves to y=41 in
	// tick 1's simulation, but tick 1 presents it at y=39.
	assert.NotEqual(t, fg, frames[0].At(122, 39), "bullet must not appear in the tick that fired it")
	assert.Equal(t, fg, frames[1].At(122, 39))
	assert.Equal(t, fg, frames[1].At(122, 41))
	assert.Equal(t, 41, g.Bullets()[0].Y)
}

func TestAlienAnimationFrameSwitch(t *testing.T) {
	g := NewDefault()
	bg, fg := g.Config().Palette()

	// Alien 0 at (20, 128): sprite row 1, column 0 is clear in frame 0 and
	// set in frame 1. It maps to buffer (20, 128+8-1-1).
	const px, py = 20, 134

	var seen []core.Color
	r := RendererFunc(func(buf *core.Buffer) {
		seen = append(seen, buf.At(px, py))
	})

	for i := 0; i < 40; i++ {
		g.Step(core.InputSnapshot{}, r)
	}

	for i, c := range seen {
		want := bg
		if (i/10)%2 == 1 {
			want = fg
		}
		assert.Equal(t, want, c, "tick %d", i)
	}
}

func TestNonLoopingAnimationStopsDrawingAliens(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	cfg.Animation.Loop = false
	cfg.Animation.FrameDuration = 2
	g := New(cfg)

	for i := 0; i < 4; i++ {
		step(g, core.InputSnapshot{})
	}
	require.True(t, g.Animation().Exhausted())

	// Must not panic, and aliens are no longer drawn. Sprite row 4 is solid
	// in both frames and lands on buffer row 128+8-1-4.
	step(g, core.InputSnapshot{})
	bg, _ := cfg.Palette()
	assert.Equal(t, bg, g.Buffer().At(20, 131))
}

func TestResetRestoresInitialState(t *testing.T) {
	g := NewDefault()
	for i := 0; i < 30; i++ {
		step(g, core.InputSnapshot{Move: 1, Fire: i%3 == 0})
	}
	require.NotZero(t, g.BulletPool().Len())

	g.Reset(config.DefaultInvadersConfig())

	assert.Equal(t, Player{X: 117, Y: 32, Life: 3}, g.Player())
	assert.Zero(t, g.BulletPool().Len())
	assert.Equal(t, Stats{}, g.Stats())
	assert.Zero(t, g.Animation().Elapsed())
}

func TestLifeIsNeverConsumed(t *testing.T) {
	g := NewDefault()
	for i := 0; i < 500; i++ {
		step(g, core.InputSnapshot{Move: (i/50)%2*2 - 1, Fire: true})
	}
	assert.Equal(t, 3, g.Player().Life)
	assert.Len(t, g.Aliens(), 55)
}
