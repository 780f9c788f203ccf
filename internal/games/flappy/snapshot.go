package flappy

import "github.com/vovakirdan/mini-arcade/internal/games/gamekit"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	BirdY    float64
	BirdVel  float64
	Pipes    []Pipe
	Score    int
	GameOver bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tickCount,
		BirdY:    g.birdY,
		BirdVel:  g.birdVel,
		Pipes:    append([]Pipe(nil), g.pipes.Pipes()...),
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

// Digest fingerprints the snapshot.
func (g *Game) Digest() uint64 {
	return gamekit.Digest(g.Snapshot())
}
