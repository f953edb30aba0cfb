package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/rainshield/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the rain configuration",
	Long: `Print the built-in default configuration. Save it to
~/.rainshield/configs/rain.yaml or ./configs/rain.yaml to customize it.

With --effective the configuration that a run would use is loaded (honoring
--config and --difficulty), validated and printed.

Examples:
  rainshield config > ~/.rainshield/configs/rain.yaml
  rainshield config --effective --config ./my-rain.yaml --difficulty hard`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Load, validate and print the config a run would use")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagEffective {
		os.Stdout.Write(config.DefaultYAML("rain")) //nolint:errcheck // stdout
		return
	}

	cfg, err := config.LoadRain(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyRainPreset(&cfg, config.ParsePreset(flagDifficulty))

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out) //nolint:errcheck // stdout
}
