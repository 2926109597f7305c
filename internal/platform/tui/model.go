package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Options configures a Model beyond the runtime config.
type Options struct {
	Store         *storage.Store // Optional; the session is recorded on quit
	Logger        *log.Logger    // Optional; defaults to a discarding logger
	Renderer      *Renderer      // Optional; defaults to NewRenderer(cfg.CellStep)
	Mode          string         // Session mode recorded in storage
	User          string
	ScreenshotDir string // Defaults to DefaultScreenshotDir()
}

// frameView is the Renderer handed to Game.Step. It keeps the rendered
// string of the last presented frame.
type frameView struct {
	renderer *Renderer
	text     string
	frames   int
}

// Present renders the buffer immediately; nothing is retained.
func (v *frameView) Present(buf *core.Buffer) {
	v.text = v.renderer.Render(buf)
	v.frames++
}

// session tracks bookkeeping shared by all copies of a Model.
type session struct {
	started time.Time
	saved   bool
	status  string
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model that runs the invaders game.
type Model struct {
	game     *invaders.Game
	input    *core.InputState
	hold     *holdTracker
	view     *frameView
	session  *session
	keys     KeyMap
	help     help.Model
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	mode     string
	user     string
	shotDir  string
	width    int
	height   int
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *invaders.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = NewRenderer(cfg.CellStep)
	}
	mode := opts.Mode
	if mode == "" {
		mode = storage.ModeTerminal
	}
	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = DefaultScreenshotDir()
	}

	view := &frameView{renderer: renderer}
	// Show the initial state before the first tick arrives
	game.Render()
	view.Present(game.Buffer())

	return Model{
		game:    game,
		input:   core.NewInputState(),
		hold:    newHoldTracker(cfg.ReleaseAfter),
		view:    view,
		session: &session{started: time.Now()},
		keys:    DefaultKeyMap(),
		help:    help.New(),
		store:   opts.Store,
		logger:  logger,
		config:  cfg,
		mode:    mode,
		user:    opts.User,
		shotDir: shotDir,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("game started", "game", m.game.ID(), "tps", m.config.TickRate, "cell", m.view.renderer.Step())
	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if d, ok := action.Direction(); ok {
		m.hold.press(m.input, d, now)
		return m, nil
	}

	switch action {
	case ActionFire:
		m.hold.pressFire(now)
	case ActionQuit:
		m.input.Quit()
	case ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case ActionScreenshot:
		m.saveScreenshot()
	}

	return m, nil
}

// handleTick runs one simulation tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	m.hold.expire(m.input, now)
	in := m.input.Take()
	if in.Quit {
		m.quitting = true
		m.Finish()
		return m, tea.Quit
	}

	m.game.Step(in, m.view)

	return m, tickCmd(m.config.TickInterval())
}

// saveScreenshot writes the last drawn frame as PNG.
func (m Model) saveScreenshot() {
	path, err := SaveScreenshot(m.shotDir, m.game.ID(), m.game.Buffer())
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		m.session.status = "screenshot failed"
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.session.status = "saved " + path
}

// Finish records the session in storage. Only the first call has an effect.
func (m Model) Finish() {
	if m.session.saved {
		return
	}
	m.session.saved = true

	stats := m.game.Stats()
	m.logger.Info("session finished",
		"mode", m.mode,
		"user", m.user,
		"ticks", stats.Ticks,
		"fired", stats.ShotsFired,
		"dropped", stats.ShotsDropped,
	)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveSession(storage.Session{
		Mode:         m.mode,
		User:         m.user,
		Ticks:        stats.Ticks,
		ShotsFired:   stats.ShotsFired,
		ShotsDropped: stats.ShotsDropped,
		Duration:     int(time.Since(m.session.started).Seconds()),
	})
	if err != nil {
		// Best-effort save, the game is over regardless
		m.logger.Warn("could not record session", "error", err)
	}
}

// View renders the last presented frame and a help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	cols, lines := m.view.renderer.Size(m.game.Buffer().Width(), m.game.Buffer().Height())
	if m.width > 0 && (m.width < cols || m.height < lines+1) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d.\nTry a larger --cell value.",
			cols, lines+1, m.width, m.height)
	}

	var sb strings.Builder
	sb.WriteString(m.view.text)
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	if m.session.status != "" {
		sb.WriteString("  ")
		sb.WriteString(statusStyle.Render(m.session.status))
	}
	return sb.String()
}

// Frames returns the number of frames presented so far.
func (m Model) Frames() int {
	return m.view.frames
}

// Game returns the underlying game.
func (m Model) Game() *invaders.Game {
	return m.game
}

// FitCellStep returns the smallest downsample factor at which a width×height
// buffer fits in cols×lines, keeping one line for help. It never returns
// less than 1.
func FitCellStep(cols, lines, width, height int) int {
	if cols <= 0 || lines <= 1 {
		return 1
	}
	for step := 1; step < width; step++ {
		r := Renderer{step: step}
		c, l := r.Size(width, height)
		if c <= cols && l+1 <= lines {
			return step
		}
	}
	return width
}

// Run starts the Bubble Tea program for the given game and blocks until it exits.
func Run(game *invaders.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.Finish()
	}
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
