// rainshield is a rain simulation: steer an umbrella, take cover under the
// shelter, and watch the NPCs run from (or toward) the rain.
//
// Usage:
//
//	rainshield list              - List available variants
//	rainshield play [variant]    - Play in the terminal (menu when no variant is given)
//	rainshield window [variant]  - Play in a desktop window
//	rainshield serve             - Start SSH server for remote play
//	rainshield scores <variant>  - Show high scores for a variant
//	rainshield board             - Interactive scoreboard
//	rainshield config            - Print or check the configuration
//
// Global flags:
//
//	--fps <rate>        - Frames drawn per second (default: 60)
//	--tick-rate <rate>  - Fixed simulation steps per second (default: 64)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--db <path>         - Set database path (default: ~/.rainshield/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rainshield/internal/core"

	// Import variants to register them
	_ "github.com/vovakirdan/rainshield/internal/games/rain"
)

var (
	// Global flags
	flagFPS        int
	flagTickRate   int
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
	flagDebug      bool
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rainshield",
	Short: "Rain Shield - keep dry, let the rain find the others",
	Long: `Rain Shield is a small physics simulation. You steer an umbrella
through falling rain; drops bounce off it and off the shelter, and the
NPCs walking below soak up whatever reaches them.

Available commands:
  list     - Show all available variants
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  board    - Interactive scoreboard
  config   - Print the default configuration

Examples:
  rainshield play
  rainshield play rain_chase --difficulty hard
  rainshield window --seed 42
  rainshield serve --ssh :2222
  rainshield scores rain`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagTickRate <= 0 {
			return fmt.Errorf("--tick-rate must be positive, got %d", flagTickRate)
		}
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frames drawn per second")
	rootCmd.PersistentFlags().IntVar(&flagTickRate, "tick-rate", core.DefaultTickRate, "Fixed simulation steps per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rainshield/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Show the fps/steps overlay")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rain config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
}
