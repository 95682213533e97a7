package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/config"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration the game would run with as YAML, after the
search order and the difficulty preset were applied. The output is a valid
asteroids.yaml.

Examples:
  asteroids config > ~/.asteroids/asteroids.yaml
  asteroids config --difficulty hard`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}
}

func runConfig(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLog)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
