package t2048

import "github.com/vovakirdan/mini-arcade/internal/games/gamekit"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateWon      GameStateType = "won" // Win tile reached, still playing
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Score   int
	Moves   int
	Board   Board
	MaxTile int
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.won:
		state = StateWon
	}

	return Snapshot{
		Tick:    g.tick,
		Score:   g.score,
		Moves:   g.moves,
		Board:   g.board.Clone(),
		MaxTile: MaxTile(g.board),
		State:   state,
	}
}

// Digest fingerprints the snapshot.
func (g *Game) Digest() uint64 {
	return gamekit.Digest(g.Snapshot())
}
