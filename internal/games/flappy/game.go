// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/games/gamekit"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

const starCount = 40

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg config.FlappyConfig
	rt  core.RuntimeConfig
	rng *rand.Rand

	birdX   float64 // Fixed horizontal position (left edge)
	birdY   float64 // Top of the bird
	birdVel float64 // Vertical velocity, negative is up

	pipes *PipeManager
	stars gamekit.Starfield

	score     int
	gameOver  bool
	tickCount uint64
}

// New creates a Flappy Bird game using the resolved config.
func New() *Game {
	cfg, err := config.LoadFlappy()
	if err != nil {
		cfg = config.DefaultFlappyConfig()
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Flappy Bird game with explicit tuning.
func NewWithConfig(cfg config.FlappyConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Bind(registry.KindFlappy, func() registry.Game {
		return New()
	})
}

// Info returns the game metadata.
func (g *Game) Info() registry.Info {
	return registry.Info{
		Kind:  registry.KindFlappy,
		Title: "Flappy Bird",
		Timing: registry.Timing{
			Driver: registry.DriverFixed,
			Period: time.Second / 60,
		},
		Controls: "space, up or click to flap",
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.rng = gamekit.NewRand(rt.Seed)

	g.birdX = rt.Width / 4
	g.birdY = rt.Height / 2
	g.birdVel = 0

	g.stars = gamekit.NewStarfield(g.rng, starCount, rt.Width, rt.Height)
	g.pipes = NewPipeManager(g.rng, rt.Width, rt.Height, g.cfg.Pipes)

	g.score = 0
	g.gameOver = false
	g.tickCount = 0
}

// flaps reports whether the frame asks the bird to jump.
func flaps(in core.MultiInputFrame) bool {
	p1 := in.Player1()
	if _, _, ok := p1.Clicked(); ok {
		return true
	}
	return p1.Pressed(core.ActionFire) || p1.Pressed(core.ActionUp)
}

// Step advances the game by one tick.
func (g *Game) Step(_ core.Tick, in core.MultiInputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State(), Restart: flaps(in) || gamekit.Restarts(in)}
	}

	g.tickCount++

	var events []core.Event
	if flaps(in) {
		g.birdVel = g.cfg.Physics.JumpImpulse
		events = append(events, core.EventFire)
	}

	g.birdVel += g.cfg.Physics.Gravity
	g.birdY += g.birdVel

	// The ceiling stops the bird without ending the round.
	if g.birdY < 0 {
		g.birdY = 0
		g.birdVel = 0
	}

	if g.birdY+g.cfg.Bird.Size > g.rt.Height {
		return g.end(events)
	}

	if passed := g.pipes.Update(g.cfg.Physics.Speed, g.birdX); passed > 0 {
		g.score += passed
		events = append(events, core.EventScore)
	}

	if g.pipes.Collides(g.birdBox()) {
		return g.end(events)
	}

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) end(events []core.Event) core.StepResult {
	g.gameOver = true
	return core.StepResult{State: g.State(), Events: append(events, core.EventGameOver)}
}

func (g *Game) birdBox() core.Box {
	return core.NewBox(g.birdX, g.birdY, g.cfg.Bird.Size, g.cfg.Bird.Size)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Mode:     g.rt.Mode,
	}
}
