package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Press Esc during a game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Switch between computer and 2-player mode
  Enter/Space  - Select game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  arcade menu
  arcade menu --sound=false
  arcade menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	// Uses global flags from main.go (--seed, --db, --config, --sound)
	if err := applyConfigs(registry.KindUnknown); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := runArcade(registry.KindUnknown, core.ModeDefault); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
