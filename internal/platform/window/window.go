// Package window runs the invaders game in a GPU-backed desktop window
// using Ebitengine. Unlike a terminal, the window reports real key release
// edges, so input maps one to one onto core.InputState.
package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// maxScale bounds --scale so the window stays on a typical screen.
const maxScale = 6

// moveKeys maps arrow keys to movement directions.
var moveKeys = [...]struct {
	key ebiten.Key
	dir core.Direction
}{
	{ebiten.KeyArrowLeft, core.DirLeft},
	{ebiten.KeyArrowRight, core.DirRight},
}

// Options configures the window beyond the runtime config.
type Options struct {
	Store  *storage.Store // Optional; the session is recorded on exit
	Logger *log.Logger
	User   string
}

// Window is an ebiten.Game that steps the simulation once per Update.
type Window struct {
	game   *invaders.Game
	input  *core.InputState
	pixels []byte        // Last presented frame, top-down RGBA
	frame  *ebiten.Image // GPU copy of pixels, created on first Draw
	logger *log.Logger
	frames int
}

// New creates a window presenter for game.
func New(game *invaders.Game, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Window{
		game:   game,
		input:  core.NewInputState(),
		logger: logger,
	}
}

// Present copies the buffer into the window's pixel slice.
func (w *Window) Present(buf *core.Buffer) {
	w.pixels = buf.RGBA(w.pixels)
	w.frames++
}

// pollInput feeds this frame's key edges into the input state.
func (w *Window) pollInput() {
	for _, mk := range moveKeys {
		if inpututil.IsKeyJustPressed(mk.key) {
			w.input.Press(mk.dir)
		}
		if inpututil.IsKeyJustReleased(mk.key) {
			w.input.Release(mk.dir)
		}
	}
	if inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		w.input.ReleaseFire()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		w.input.Quit()
	}
}

// Update runs one simulation tick.
func (w *Window) Update() error {
	w.pollInput()

	in := w.input.Take()
	if in.Quit {
		return ebiten.Termination
	}
	w.game.Step(in, w)
	return nil
}

// Draw uploads the last presented frame.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.pixels == nil {
		return
	}
	buf := w.game.Buffer()
	if w.frame == nil {
		w.frame = ebiten.NewImage(buf.Width(), buf.Height())
	}
	w.frame.WritePixels(w.pixels)
	screen.DrawImage(w.frame, nil)
}

// Layout keeps the logical screen at the playfield size; ebiten scales it
// to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	buf := w.game.Buffer()
	return buf.Width(), buf.Height()
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(game *invaders.Game, cfg core.RuntimeConfig, opts Options) error {
	w := New(game, opts.Logger)

	scale := core.Clamp(cfg.Scale, 1, maxScale)
	buf := game.Buffer()
	ebiten.SetWindowSize(buf.Width()*scale, buf.Height()*scale)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetVsyncEnabled(true)

	w.logger.Debug("opening window", "width", buf.Width()*scale, "height", buf.Height()*scale, "tps", cfg.TickRate)

	started := time.Now()
	err := ebiten.RunGame(w)
	w.finish(opts, time.Since(started))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// finish logs and records the session.
func (w *Window) finish(opts Options, elapsed time.Duration) {
	stats := w.game.Stats()
	w.logger.Info("session finished",
		"mode", storage.ModeWindow,
		"ticks", stats.Ticks,
		"fired", stats.ShotsFired,
		"dropped", stats.ShotsDropped,
		"frames", w.frames,
	)
	if opts.Store == nil {
		return
	}
	_, err := opts.Store.SaveSession(storage.Session{
		Mode:         storage.ModeWindow,
		User:         opts.User,
		Ticks:        stats.Ticks,
		ShotsFired:   stats.ShotsFired,
		ShotsDropped: stats.ShotsDropped,
		Duration:     int(elapsed.Seconds()),
	})
	if err != nil {
		w.logger.Warn("could not record session", "error", err)
	}
}
