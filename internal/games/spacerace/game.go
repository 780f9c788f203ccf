// Package spacerace implements Space Race: two ships climb through a field
// of drifting asteroids and score each time they reach the top.
package spacerace

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/games/gamekit"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

// Ship is one player's craft, positioned by its centre.
type Ship struct {
	X, Y   float64
	StartY float64
	Score  int
}

// Asteroid drifts horizontally across the field.
type Asteroid struct {
	X, Y       float64
	Size       float64
	Speed      float64
	GoingRight bool
}

// Game implements Space Race.
type Game struct {
	cfg  config.SpaceRaceConfig
	rt   core.RuntimeConfig
	rng  *rand.Rand
	tick uint64

	ships     [2]Ship
	asteroids []Asteroid
	stars     gamekit.Starfield

	gameOver bool
	winner   core.PlayerID
}

// New creates a Space Race game using the resolved config.
func New() *Game {
	cfg, err := config.LoadSpaceRace()
	if err != nil {
		cfg = config.DefaultSpaceRaceConfig()
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Space Race game with explicit tuning.
func NewWithConfig(cfg config.SpaceRaceConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Bind(registry.KindSpaceRace, func() registry.Game {
		return New()
	})
}

// Info returns the game metadata.
func (g *Game) Info() registry.Info {
	return registry.Info{
		Kind:  registry.KindSpaceRace,
		Title: "Space Race",
		Timing: registry.Timing{
			Driver: registry.DriverFixed,
			Period: 16 * time.Millisecond,
		},
		DefaultMode: core.ModeSolo,
		Toggle:      true,
		Controls:    "arrows fly, WASD flies player 2, M toggles computer",
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.rng = gamekit.NewRand(rt.Seed)
	g.tick = 0

	startY := rt.Height - g.cfg.Ship.Bottom
	g.ships = [2]Ship{
		{X: rt.Width / 3, Y: startY, StartY: startY},
		{X: rt.Width / 3 * 2, Y: startY, StartY: startY},
	}

	g.stars = gamekit.NewStarfield(g.rng, 60, rt.Width, rt.Height)
	g.asteroids = g.asteroids[:0]
	for range g.cfg.Asteroids.Count {
		g.asteroids = append(g.asteroids, g.newAsteroid())
	}

	g.gameOver = false
	g.winner = core.PlayerNone
}

// newAsteroid spawns just off the edge it enters from.
func (g *Game) newAsteroid() Asteroid {
	c := g.cfg.Asteroids
	right := g.rng.Float64() > 0.5
	size := c.MinSize + g.rng.Float64()*(c.MaxSize-c.MinSize)
	x := g.rt.Width + size
	if right {
		x = -size
	}
	return Asteroid{
		X:          x,
		Y:          50 + g.rng.Float64()*(g.rt.Height-150),
		Size:       size,
		Speed:      c.MinSpeed + g.rng.Float64()*(c.MaxSpeed-c.MinSpeed),
		GoingRight: right,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(_ core.Tick, in core.MultiInputFrame) core.StepResult {
	g.tick++

	if g.gameOver {
		return core.StepResult{State: g.State(), Restart: gamekit.Restarts(in)}
	}

	speed := g.cfg.Ship.Speed
	g.fly(&g.ships[0], in.Player1(), speed)
	if g.rt.Mode == core.ModeVersus {
		g.fly(&g.ships[1], in.Player2(), speed)
	} else {
		g.ships[1].Y -= speed * g.cfg.Gameplay.AISpeed
	}

	var events []core.Event
	for i := range g.ships {
		s := &g.ships[i]
		g.clamp(s)
		if s.Y <= g.cfg.Ship.Size {
			s.Score++
			s.Y = s.StartY
			events = append(events, core.EventScore)
		}
	}

	for i := range g.asteroids {
		a := &g.asteroids[i]
		if a.GoingRight {
			a.X += a.Speed
		} else {
			a.X -= a.Speed
		}
		if (a.GoingRight && a.X > g.rt.Width+a.Size) || (!a.GoingRight && a.X < -a.Size) {
			*a = g.newAsteroid()
			continue
		}
		for j := range g.ships {
			if g.collides(&g.ships[j], a) {
				g.ships[j].Y = g.ships[j].StartY
				events = append(events, core.EventExplode)
			}
		}
	}

	win := g.cfg.Gameplay.WinScore
	if s1, s2 := g.ships[0].Score, g.ships[1].Score; s1 >= win || s2 >= win {
		g.gameOver = true
		switch {
		case s1 > s2:
			g.winner = core.Player1
		case s2 > s1:
			g.winner = core.Player2
		}
		events = append(events, core.EventGameOver)
	}

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) fly(s *Ship, in core.InputFrame, speed float64) {
	if in.Has(core.ActionUp) {
		s.Y -= speed
	}
	if in.Has(core.ActionDown) {
		s.Y += speed
	}
	if in.Has(core.ActionLeft) {
		s.X -= speed
	}
	if in.Has(core.ActionRight) {
		s.X += speed
	}
}

func (g *Game) clamp(s *Ship) {
	size := g.cfg.Ship.Size
	s.X = core.ClampF(s.X, size, g.rt.Width-size)
	s.Y = core.ClampF(s.Y, size, g.rt.Height-size)
}

// collides uses a forgiving radius: the ship's triangle fills little of its
// bounding circle.
func (g *Game) collides(s *Ship, a *Asteroid) bool {
	return core.Dist(s.X, s.Y, a.X, a.Y) < (g.cfg.Ship.Size+a.Size)/1.5
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.ships[0].Score,
		Score2:   g.ships[1].Score,
		GameOver: g.gameOver,
		Won:      g.winner == core.Player1,
		Winner:   g.winner,
		Mode:     g.rt.Mode,
	}
}
