package breakout

import "github.com/vovakirdan/mini-arcade/internal/games/gamekit"

// Snapshot contains the complete game state for determinism checks.
// Bricks are flattened column by column as alive flags.
type Snapshot struct {
	Tick     uint64
	PaddleX  float64
	Ball     Ball
	Score    int
	Lives    int
	Bricks   []bool
	GameOver bool
	Won      bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	bricks := make([]bool, len(g.level.Bricks))
	for i, b := range g.level.Bricks {
		bricks[i] = b.Alive
	}
	return Snapshot{
		Tick:     g.tickCount,
		PaddleX:  g.paddle.X,
		Ball:     *g.ball,
		Score:    g.score,
		Lives:    g.lives,
		Bricks:   bricks,
		GameOver: g.gameOver,
		Won:      g.won,
	}
}

// Digest fingerprints the snapshot.
func (g *Game) Digest() uint64 {
	return gamekit.Digest(g.Snapshot())
}
