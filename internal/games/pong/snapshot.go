package pong

import (
	"math"

	"github.com/vovakirdan/mini-arcade/internal/games/gamekit"
)

// Snapshot contains the complete state of a Pong game.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick     uint64
	BallX    int
	BallY    int
	BallVX   int // Velocity scaled by 1000 (for precision)
	BallVY   int // Velocity scaled by 1000
	Paddle1Y int
	Paddle2Y int
	Score1   int
	Score2   int
	GameOver bool
	Winner   int // 0=none, 1=Player1, 2=Player2
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tickCount,
		BallX:    int(math.Round(g.ballX)),
		BallY:    int(math.Round(g.ballY)),
		BallVX:   int(math.Round(g.ballVX * 1000)),
		BallVY:   int(math.Round(g.ballVY * 1000)),
		Paddle1Y: int(math.Round(g.paddle1Y)),
		Paddle2Y: int(math.Round(g.paddle2Y)),
		Score1:   g.score1,
		Score2:   g.score2,
		GameOver: g.gameOver,
		Winner:   int(g.winner),
	}
}

// Digest fingerprints the snapshot.
func (g *Game) Digest() uint64 {
	return gamekit.Digest(g.Snapshot())
}
