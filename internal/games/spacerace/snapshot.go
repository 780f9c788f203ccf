package spacerace

import (
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/games/gamekit"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Ships     [2]Ship
	Asteroids []Asteroid
	GameOver  bool
	Winner    core.PlayerID
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Mode:      g.rt.Mode.String(),
		Ships:     g.ships,
		Asteroids: append([]Asteroid(nil), g.asteroids...),
		GameOver:  g.gameOver,
		Winner:    g.winner,
	}
}

// Digest fingerprints the snapshot.
func (g *Game) Digest() uint64 {
	return gamekit.Digest(g.Snapshot())
}
