// asteroids is the classic arcade shooter played in the terminal.
//
// Usage:
//
//	asteroids play                - Play in the terminal
//	asteroids simulate            - Run a headless scripted session and print its hash
//	asteroids config              - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Real frames per second (default: 60)
//	--seed <value>        - RNG seed for reproducible gameplay
//	--config <path>       - Custom asteroids.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log <path>          - Write a debug log to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLog        string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "asteroids",
		Short: "Asteroids - shoot rocks in your terminal",
		Long: `Asteroids is a terminal rendition of the arcade classic: steer a ship,
shoot the asteroids and survive the fragments they break into.

Available commands:
  play      - Play in the terminal
  simulate  - Run a headless scripted session
  config    - Print the effective configuration

Examples:
  asteroids play
  asteroids play --difficulty hard
  asteroids simulate --seed 42 --seconds 30
  asteroids config --config ./my-asteroids.yaml`,
		SilenceUsage: true,
	}

	root.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Real frames per second")
	root.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time when playing)")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom asteroids.yaml")
	root.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	root.PersistentFlags().StringVar(&flagLog, "log", "", "Write a debug log to this file")

	root.AddCommand(newPlayCmd())
	root.AddCommand(newSimulateCmd())
	root.AddCommand(newConfigCmd())
	return root
}
