package tictactoe

import "github.com/vovakirdan/mini-arcade/internal/games/gamekit"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Board     Board
	Current   Mark
	AIPending bool
	GameOver  bool
	Winner    Mark
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Board:     g.board,
		Current:   g.current,
		AIPending: g.aiPending,
		GameOver:  g.gameOver,
		Winner:    g.winner,
	}
}

// Digest fingerprints the snapshot.
func (g *Game) Digest() uint64 {
	return gamekit.Digest(g.Snapshot())
}
