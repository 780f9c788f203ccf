package snake

import (
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/games/gamekit"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Mode     string
	Snake1   []core.Cell
	Snake2   []core.Cell
	Dir1     Direction
	Dir2     Direction
	Score1   int
	Score2   int
	Food     core.Cell
	GameOver bool
	Winner   core.PlayerID
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Mode:     g.rt.Mode.String(),
		Snake1:   append([]core.Cell(nil), g.snakes[0].Body...),
		Snake2:   append([]core.Cell(nil), g.snakes[1].Body...),
		Dir1:     g.snakes[0].Dir,
		Dir2:     g.snakes[1].Dir,
		Score1:   g.scores[0],
		Score2:   g.scores[1],
		Food:     g.food,
		GameOver: g.gameOver,
		Winner:   g.winner,
	}
}

// Digest fingerprints the snapshot.
func (g *Game) Digest() uint64 {
	return gamekit.Digest(g.Snapshot())
}
