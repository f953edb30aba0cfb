package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rainshield/internal/core"
	"github.com/vovakirdan/rainshield/internal/platform/window"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Open a resizable window and start a run. The scene keeps its 16:9
layout at any window size.

Controls are the same as in the terminal; arrow keys and WASD are read
as held keys.

Examples:
  rainshield window
  rainshield window rain_chase --width 1920 --height 1080`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 1280, "Initial window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", 720, "Initial window height in pixels")
}

func runWindow(_ *cobra.Command, args []string) {
	closeLog := mustSetupLogging(false)
	defer closeLog()
	applyGameFlags()

	gameID := "rain"
	if len(args) == 1 {
		gameID = args[0]
	}
	game := createGame(gameID)
	store := openStore()

	cfg := core.RuntimeConfig{
		ScreenW:  flagWidth,
		ScreenH:  flagHeight,
		TickRate: flagTickRate,
		FPS:      flagFPS,
		Seed:     flagSeed,
		Debug:    flagDebug,
	}
	runErr := window.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", runErr)
		os.Exit(1)
	}
}
