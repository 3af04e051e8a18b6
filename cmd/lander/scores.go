package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/platform/tui"
	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

var (
	flagFlights int
	flagClear   bool
	flagBrowse  bool
	flagAll     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and recent flights for a game",
	Long: `Display the top 10 high scores and the most recent flights for
the specified game (default: lander).

Examples:
  lander scores
  lander scores drift
  lander scores --flights 20
  lander scores lander --clear
  lander scores --browse
  lander scores --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagFlights, "flights", 5, "Number of recent flights to show (0 hides the flight log)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and flights for the game")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Summarize every game that has scores")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "lander"
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil && !flagAll {
		return fmt.Errorf("%w (run 'lander list' to see available games)", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagAll {
		return printAllStats(store)
	}

	if flagBrowse {
		rt := terminalConfig()
		_, err := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH)
		return err
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return nil
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'lander play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  |  Games: %d  |  Landings: %d\n", stats.HighScore, stats.GamesCount, stats.Landings)
	}

	if flagFlights <= 0 {
		return nil
	}
	flights, err := store.RecentFlights(gameID, flagFlights)
	if err != nil {
		return err
	}
	if len(flights) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent flights:")
	fmt.Printf("  %-3s  %-8s  %-7s  %-6s  %-6s  %s\n", "Lvl", "Outcome", "Score", "Fuel", "Ticks", "Date")
	for _, f := range flights {
		fmt.Printf("  %-3d  %-8s  %-7d  %-6.0f  %-6d  %s\n",
			f.Level, f.Outcome, f.Score, f.FuelLeft, f.DurationTicks, f.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// printAllStats prints one summary line per played game.
func printAllStats(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-8s  %-6s  %-6s  %-8s  %-8s  %s\n", "Game", "Games", "Best", "Average", "Landings", "Last played")
	for _, info := range registry.List() {
		gs, ok := all[info.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-8s  %-6d  %-6d  %-8.1f  %-8d  %s\n",
			info.ID, gs.GamesCount, gs.HighScore, gs.AvgScore, gs.Landings, gs.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
