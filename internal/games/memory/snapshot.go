package memory

import "github.com/vovakirdan/mini-arcade/internal/games/gamekit"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Tiles    []Tile
	Flipped  []int
	Score    int
	Moves    int
	GameOver bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Tiles:    append([]Tile(nil), g.tiles...),
		Flipped:  append([]int(nil), g.flipped...),
		Score:    g.score,
		Moves:    g.moves,
		GameOver: g.gameOver,
	}
}

// Digest fingerprints the snapshot.
func (g *Game) Digest() uint64 {
	return gamekit.Digest(g.Snapshot())
}
