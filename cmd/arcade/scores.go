package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mini-arcade/internal/platform/tui"
	"github.com/vovakirdan/mini-arcade/internal/registry"
	"github.com/vovakirdan/mini-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game.

Two-seat games also show the opponent's score and the mode of each round.

Examples:
  arcade scores flappy
  arcade scores pong --limit 20
  arcade scores 2048 --tui`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
}

func runScores(cmd *cobra.Command, args []string) {
	kind, err := registry.ParseKind(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	info, ok := registry.Lookup(kind)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: game %q is not available\n", kind)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		if err := tui.RunScoreboard(store, kind); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if err := printScores(store, info); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func printScores(store *storage.Store, info registry.Info) error {
	gameID := info.Kind.String()
	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	// Print header
	if info.Toggle {
		fmt.Printf("  %-4s  %-8s  %-8s  %-7s  %s\n", "Rank", "Score", "Opp", "Mode", "Date")
		fmt.Printf("  %-4s  %-8s  %-8s  %-7s  %s\n", "----", "-----", "---", "----", "----")
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	}

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		if info.Toggle {
			fmt.Printf("  %-4d  %-8d  %-8d  %-7s  %s\n", i+1, entry.Score, entry.Score2, entry.Mode, dateStr)
		} else {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
		}
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d   Rounds: %d   Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	return nil
}
