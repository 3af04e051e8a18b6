// lander is a terminal lunar lander: fly a thrust-and-gravity ship over a
// noise-generated mountain and touch down gently on a landing pad.
//
// Usage:
//
//	lander list              - List available games
//	lander play [game]       - Play a game (default: lander)
//	lander menu              - Start menu to pick games interactively
//	lander serve             - Start SSH server for remote play
//	lander watch <url>       - Follow a live telemetry stream
//	lander scores <game>     - Show high scores and recent flights
//	lander config            - Print or check the game configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible terrain
//	--db <path>     - Set database path (default: ~/.lander/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-lander/internal/games/lander"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string

	// Shared by play and menu
	flagConfig     string
	flagDifficulty string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "lander",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lander",
	Short: "Lunar Lander - land on the moon in your terminal",
	Long: `Lunar Lander is a terminal game: fight gravity with a limited fuel
tank and set the ship down gently on one of the landing pads.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  watch    - Follow a live telemetry stream
  scores   - View high scores and the flight log
  config   - Print or check the game configuration

Examples:
  lander play
  lander play drift
  lander menu
  lander serve --ssh :2222 --telemetry :8080
  lander scores lander`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lander/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
