package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rainshield/internal/config"
	"github.com/vovakirdan/rainshield/internal/core"
	"github.com/vovakirdan/rainshield/internal/games/rain"
	"github.com/vovakirdan/rainshield/internal/platform/tui"
	"github.com/vovakirdan/rainshield/internal/registry"
	"github.com/vovakirdan/rainshield/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal. Without a variant a picker menu is shown,
and you return to it after each run.

Controls:
  Arrows/WASD  - Move the umbrella
  P/Space      - Pause
  R            - Restart (after the round ends)
  F3           - Toggle the fps overlay
  Q/Esc        - Quit

Difficulty options:
  easy   - Slower runners that see farther, no head start
  normal - Start at 30% difficulty, progresses to max
  hard   - Faster runners, more NPCs, start at 70%
  fixed  - No progression, stays at config's initial level

Examples:
  rainshield play
  rainshield play rain --difficulty easy
  rainshield play rain_chase --seed 7
  rainshield play --config ./my-rain.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

// applyGameFlags hands --config and --difficulty to the variants before creation.
func applyGameFlags() {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}
	rain.SetConfigPath(flagConfig)
	rain.SetDifficultyPreset(flagDifficulty)
}

// terminalConfig builds the runtime config for the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height * core.CellAspect,
		TickRate: flagTickRate,
		FPS:      flagFPS,
		Seed:     flagSeed,
		Debug:    flagDebug,
	}
}

// openStore opens the score database; runs still work without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func createGame(gameID string) registry.Game {
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'rainshield list' to see available variants.")
		os.Exit(1)
	}
	return game
}

func runPlay(_ *cobra.Command, args []string) {
	closeLog := mustSetupLogging(true)
	defer closeLog()
	applyGameFlags()

	if len(args) == 0 {
		runMenu()
		return
	}

	game := createGame(args[0])
	store := openStore()

	runErr := tui.Run(game, store, terminalConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", runErr)
		os.Exit(1)
	}
}

func runMenu() {
	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := terminalConfig()
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		switch {
		case menuResult.Quit:
			return

		case menuResult.WantsScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH/core.CellAspect)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return
			}

		case menuResult.GameID != "":
			game, err := registry.Create(menuResult.GameID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating simulation: %v\n", err)
				continue
			}

			// Fresh seed for every run unless one was pinned
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			if err := tui.Run(game, store, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", err)
			}

		default:
			return
		}
	}
}
