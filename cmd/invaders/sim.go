package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var (
	flagSimConfig    string
	flagSimTicks     int
	flagSimRight     int
	flagSimLeft      int
	flagSimFireEvery int
	flagSimScript    string
	flagSimPNG       string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless",
	Long: `Run the game without a display and print the final state as YAML.

Input comes either from a pattern (hold right, then left, firing every
N ticks) or from a YAML script:

  - ticks: 30
    move: 1        # -1 left, 0 none, 1 right
  - ticks: 1
    fire: true     # one fire edge before the step's first tick

Examples:
  invaders sim --ticks 120 --right 30 --fire-every 20
  invaders sim --script ./moves.yaml --png final.png`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 60, "Number of ticks to run (pattern mode)")
	simCmd.Flags().IntVar(&flagSimRight, "right", 0, "Hold right for the first N ticks")
	simCmd.Flags().IntVar(&flagSimLeft, "left", 0, "Then hold left for N ticks")
	simCmd.Flags().IntVar(&flagSimFireEvery, "fire-every", 0, "Fire every N ticks (0 = never)")
	simCmd.Flags().StringVar(&flagSimScript, "script", "", "Path to a YAML input script (overrides the pattern flags)")
	simCmd.Flags().StringVar(&flagSimPNG, "png", "", "Write the last presented frame to this PNG file")
}

func runSim(_ *cobra.Command, _ []string) {
	gameCfg, err := config.LoadInvaders(flagSimConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(os.Stderr, "invaders-sim")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	script := invaders.PatternScript(flagSimTicks, flagSimRight, flagSimLeft, flagSimFireEvery)
	if flagSimScript != "" {
		data, err := os.ReadFile(flagSimScript)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading script: %v\n", err)
			os.Exit(1)
		}
		script, err = invaders.ParseScript(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	game := invaders.New(gameCfg)
	logger.Debug("running simulation", "steps", len(script), "ticks", script.TotalTicks())

	snap := invaders.RunScript(game, script, nil)

	if flagSimPNG != "" {
		if err := writePNGFile(flagSimPNG, game); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("frame written", "path", flagSimPNG)
	}

	out, err := yaml.Marshal(snap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding snapshot: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}

func writePNGFile(path string, game *invaders.Game) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer f.Close()
	return tui.WritePNG(f, game.Buffer())
}
