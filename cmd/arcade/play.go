package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/platform/tui"
	"github.com/vovakirdan/mini-arcade/internal/registry"
	"github.com/vovakirdan/mini-arcade/internal/session"
)

var flagMode string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows       - Move / steer (player 1)
  Space        - Flap / fire / launch
  Mouse click  - Pick a card or cell, restart after game over
  WASD, F      - Player 2 in versus mode
  M            - Toggle computer opponent (two-seat games)
  R            - Restart
  Esc          - Back to the menu
  Q/Ctrl+C     - Quit

Modes (two-seat games only):
  solo, ai     - Play against the computer
  versus, 2p   - Two players on one keyboard

Examples:
  arcade play snake
  arcade play pong --mode versus
  arcade play 2048 --seed 7
  arcade play flappy --config ./my-flappy.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Player mode: solo, ai, versus")
}

func runPlay(cmd *cobra.Command, args []string) {
	kind, err := registry.ParseKind(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	mode, err := core.ParseMode(flagMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := applyConfigs(kind); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := runArcade(kind, mode); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// runArcade runs the terminal frontend, starting in kind or, for
// KindUnknown, in the menu.
func runArcade(kind registry.Kind, mode core.Mode) error {
	logger, closeLog, err := newLogger("arcade", true)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	player := openSound(logger)
	if player != nil {
		defer player.Close()
	}

	width, height := terminalSize()
	return tui.Run(tui.Config{
		Options: session.Options{
			Seed:   flagSeed,
			Hooks:  tui.Hooks(store, player, logger),
			Logger: logger,
		},
		Store:  store,
		Kind:   kind,
		Mode:   mode,
		Width:  width,
		Height: height,
	})
}
