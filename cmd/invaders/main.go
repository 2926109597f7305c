// invaders is a pixel-buffer Space Invaders-style game for the terminal,
// a desktop window or remote play over SSH.
//
// Usage:
//
//	invaders play             - Play in the terminal
//	invaders play --window    - Play in a desktop window
//	invaders serve            - Start SSH server for remote play
//	invaders history          - Show recorded play sessions
//	invaders sim              - Run the simulation headless and print its state
//	invaders config           - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.invaders/sessions.db)
//	--log-level <level>   - Set log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - a pixel arcade shooter for your terminal",
	Long: `Invaders draws a 224x256 pixel playfield: a grid of animated aliens
and a ship you steer along the bottom, firing upward.

Available commands:
  play     - Play in the terminal, or a window with --window
  serve    - Start SSH server for remote play
  history  - View recorded play sessions
  sim      - Run the game headless and print the final state
  config   - Print the effective game config

Examples:
  invaders play
  invaders play --window --scale 3
  invaders serve --ssh :2222
  invaders sim --ticks 120 --right 30 --fire-every 20`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invaders/sessions.db", "Path to session database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
