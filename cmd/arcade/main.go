// arcade is a TUI arcade platform for playing retro-style games in the terminal.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH and web servers for remote play
//	arcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.arcade/scores.db)
//	--config <path>    - Game config YAML; game=path to target one game
//	--sound            - Play tones on game events (default: true)
//	--log-level <lvl>  - debug, info, warn or error (default: warn)
//	--log-file <path>  - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/registry"
	"github.com/vovakirdan/mini-arcade/internal/sound"
	"github.com/vovakirdan/mini-arcade/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/mini-arcade/internal/games/breakout"
	_ "github.com/vovakirdan/mini-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/mini-arcade/internal/games/jetfighter"
	_ "github.com/vovakirdan/mini-arcade/internal/games/memory"
	_ "github.com/vovakirdan/mini-arcade/internal/games/pong"
	_ "github.com/vovakirdan/mini-arcade/internal/games/snake"
	_ "github.com/vovakirdan/mini-arcade/internal/games/spacerace"
	_ "github.com/vovakirdan/mini-arcade/internal/games/t2048"
	_ "github.com/vovakirdan/mini-arcade/internal/games/tictactoe"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfigs  []string
	flagSound    bool
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "TUI Arcade - Play retro games in your terminal",
	Long: `TUI Arcade is a terminal-based gaming platform that lets you play
classic-style games directly in your terminal, over SSH or in a browser.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH and web servers for remote play
  scores   - View high scores

Examples:
  arcade list
  arcade play pong --mode versus
  arcade menu
  arcade serve --ssh :2222 --web :8080
  arcade scores flappy`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringArrayVar(&flagConfigs, "config", nil, "Game config YAML (path, or game=path; repeatable)")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", true, "Play tones on game events")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the command logger. Full-screen commands pass quiet so
// that, without --log-file, log lines do not tear the alt screen.
func newLogger(prefix string, quiet bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	case quiet:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// applyConfigs hands --config values to the config loader. A bare path
// applies to kind, the game being started.
func applyConfigs(kind registry.Kind) error {
	for _, v := range flagConfigs {
		id, path, ok := strings.Cut(v, "=")
		if !ok {
			if !kind.Valid() {
				return fmt.Errorf("--config %s: name the game as game=path", v)
			}
			config.SetPath(kind.String(), v)
			continue
		}
		k, err := registry.ParseKind(id)
		if err != nil {
			return fmt.Errorf("--config %s: %w", v, err)
		}
		config.SetPath(k.String(), path)
	}
	return nil
}

// openStore opens the score database. Games still work without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "error", err)
		return nil
	}
	return store
}

// openSound starts the speaker when --sound is set. Returns nil when sound
// is off or unavailable.
func openSound(logger *log.Logger) *sound.Player {
	if !flagSound {
		return nil
	}
	player := sound.New(sound.Options{Logger: logger})
	if err := player.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil
	}
	return player
}

// terminalSize returns the size of stdout, or 80x24 when it is not a TTY.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
