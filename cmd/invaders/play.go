package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/platform/window"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagConfig       string
	flagWindow       bool
	flagScale        int
	flagCell         int
	flagReleaseAfter int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing in the terminal, or in a desktop window with --window.

Controls:
  Left/Right   - Move (a/d also work in the terminal)
  Space        - Fire (on release)
  Ctrl+S       - Save a PNG screenshot (terminal)
  Esc/Q        - Quit

Terminals only report key presses. A direction key counts as held while
its auto-repeat keeps arriving and is released --release-after
milliseconds after the last repeat.

The terminal view uses two pixels per character cell. --cell N samples
every Nth pixel so the playfield fits smaller terminals; by default the
smallest step that fits is picked.

Examples:
  invaders play
  invaders play --cell 2
  invaders play --window --scale 3
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Open a desktop window instead of using the terminal")
	playCmd.Flags().IntVar(&flagScale, "scale", 2, "Window pixel scale")
	playCmd.Flags().IntVar(&flagCell, "cell", 0, "Terminal downsample step (0 = fit to terminal)")
	playCmd.Flags().IntVar(&flagReleaseAfter, "release-after", 120, "Terminal key release delay in milliseconds")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()
	cfg.Scale = flagScale

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	game := invaders.New(gameCfg)

	var runErr error
	if flagWindow {
		runErr = playWindow(game, cfg, store)
	} else {
		runErr = playTerminal(game, cfg, store)
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig builds the presenter settings shared by all commands.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}

func playWindow(game *invaders.Game, cfg core.RuntimeConfig, store *storage.Store) error {
	logger, err := newLogger(os.Stderr, "invaders")
	if err != nil {
		return err
	}
	return window.Run(game, cfg, window.Options{
		Store:  store,
		Logger: logger,
		User:   currentUser(),
	})
}

func playTerminal(game *invaders.Game, cfg core.RuntimeConfig, store *storage.Store) error {
	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, "invaders")
	if err != nil {
		return err
	}

	cfg.ReleaseAfter = time.Duration(flagReleaseAfter) * time.Millisecond
	cfg.CellStep = flagCell
	if cfg.CellStep <= 0 {
		// Fit the playfield to the terminal
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		pf := game.Config().Playfield
		cfg.CellStep = tui.FitCellStep(width, height, pf.Width, pf.Height)
	}
	logger.Debug("terminal play", "cell", cfg.CellStep, "release_after", cfg.ReleaseAfter)

	return tui.Run(game, cfg, tui.Options{
		Store:  store,
		Logger: logger,
		Mode:   storage.ModeTerminal,
		User:   currentUser(),
	})
}
