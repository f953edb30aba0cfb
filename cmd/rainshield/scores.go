package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rainshield/internal/core"
	"github.com/vovakirdan/rainshield/internal/platform/tui"
	"github.com/vovakirdan/rainshield/internal/registry"
	"github.com/vovakirdan/rainshield/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores for a variant",
	Long: `Display the top 10 runs for the specified variant.

Examples:
  rainshield scores rain
  rainshield scores rain_chase
  rainshield scores rain --run 3f2a9c1e-...   # show one run and how to replay it
  rainshield scores rain --clear              # delete every run of the variant`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

var (
	flagRunID       string
	flagClearScores bool
)

func init() {
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by its run ID")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded runs of the variant")
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse high scores interactively",
	Run:   runBoard,
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]
	title := createGame(gameID).Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClearScores:
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all runs of %s.\n", title)
		return
	case flagRunID != "":
		showRun(store, gameID)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'rainshield play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-20s  %s\n", "Rank", "Score", "Run", "Seed", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-20s  %s\n", "----", "-----", "---", "----", "----")
	for i, e := range scores {
		runID := e.RunID
		if len(runID) > 8 {
			runID = runID[:8]
		}
		fmt.Printf("  %-4d  %-8d  %-8s  %-20d  %s\n", i+1, e.Score, runID, e.Seed, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.1f\n", stats.RunsCount, stats.HighScore, stats.AvgScore)
	}
}

func showRun(store *storage.Store, gameID string) {
	run, err := store.RunByID(flagRunID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		os.Exit(1)
	}
	if run == nil || run.GameID != gameID {
		fmt.Fprintf(os.Stderr, "No %s run with ID %s\n", gameID, flagRunID)
		os.Exit(1)
	}

	fmt.Printf("Run   %s\n", run.RunID)
	fmt.Printf("Score %d\n", run.Score)
	fmt.Printf("Steps %d\n", run.Steps)
	fmt.Printf("Seed  %d\n", run.Seed)
	fmt.Printf("Date  %s\n", run.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Println()
	fmt.Printf("Replay with: rainshield play %s --seed %d\n", gameID, run.Seed)
}

func runBoard(_ *cobra.Command, _ []string) {
	if !registryHasGames() {
		fmt.Fprintln(os.Stderr, "Error: no variants registered")
		os.Exit(1)
	}
	closeLog := mustSetupLogging(true)
	defer closeLog()

	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := terminalConfig()
	if _, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH/core.CellAspect); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func registryHasGames() bool {
	return len(registry.List()) > 0
}
