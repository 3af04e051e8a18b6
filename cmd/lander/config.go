package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-lander/internal/config"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check the game configuration",
	Long: `Print the default configuration, or the effective configuration
after a file and difficulty preset are applied.

Save the defaults to ~/.lander/configs/lander.yaml or ./configs/lander.yaml
and edit them to tune physics, fuel, terrain and landing limits.

Examples:
  lander config > ~/.lander/configs/lander.yaml
  lander config --check ./my-lander.yaml
  lander config --difficulty hard`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate a config file and print the effective result")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Apply a difficulty preset before printing")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagCheck == "" && flagDifficulty == "" {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := config.LoadLander(flagCheck)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}
