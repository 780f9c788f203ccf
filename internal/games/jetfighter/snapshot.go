package jetfighter

import (
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/games/gamekit"
)

// JetSnapshot is the exported view of one jet.
type JetSnapshot struct {
	X, Y     float64
	Angle    float64
	Speed    float64
	Alive    bool
	Score    int
	Missiles []Missile
}

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Mode       string
	Jets       [2]JetSnapshot
	Respawning bool
	GameOver   bool
	Winner     core.PlayerID
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		Mode:       g.rt.Mode.String(),
		Respawning: g.respawning,
		GameOver:   g.gameOver,
		Winner:     g.winner,
	}
	for i, j := range g.jets {
		s.Jets[i] = JetSnapshot{
			X: j.X, Y: j.Y,
			Angle:    j.Angle,
			Speed:    j.Speed,
			Alive:    j.Alive,
			Score:    j.Score,
			Missiles: append([]Missile(nil), j.Missiles...),
		}
	}
	return s
}

// Digest fingerprints the snapshot.
func (g *Game) Digest() uint64 {
	return gamekit.Digest(g.Snapshot())
}
