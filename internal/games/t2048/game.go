// Package t2048 implements the 2048 sliding tile puzzle.
package t2048

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/games/gamekit"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

// Game implements the 2048 puzzle game.
type Game struct {
	cfg  config.T2048Config
	rt   core.RuntimeConfig
	rng  *rand.Rand
	tick uint64

	score int
	moves int
	board Board
	last  Cell // Most recently spawned tile

	won      bool // Reached the win tile; play continues
	gameOver bool
}

// New creates a 2048 game using the resolved config.
func New() *Game {
	cfg, err := config.Load2048()
	if err != nil {
		cfg = config.Default2048Config()
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a 2048 game with explicit tuning.
func NewWithConfig(cfg config.T2048Config) *Game {
	if cfg.Board.Size < 2 {
		cfg.Board.Size = 4
	}
	return &Game{cfg: cfg}
}

func init() {
	registry.Bind(registry.Kind2048, func() registry.Game {
		return New()
	})
}

// Info returns the game metadata.
func (g *Game) Info() registry.Info {
	return registry.Info{
		Kind:  registry.Kind2048,
		Title: "2048",
		Timing: registry.Timing{
			Driver: registry.DriverFixed,
			Period: time.Second / 30,
		},
		Controls: "arrows/WASD or swipe to slide, R restarts",
	}
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.rng = gamekit.NewRand(rt.Seed)
	g.tick = 0
	g.score = 0
	g.moves = 0
	g.won = false
	g.gameOver = false

	g.board = NewBoard(g.cfg.Board.Size)
	for range g.cfg.Board.StartTiles {
		g.spawnTile()
	}
}

// spawnTile places a 2, or a 4 with the configured chance, in a random
// empty cell.
func (g *Game) spawnTile() {
	empty := EmptyCells(g.board)
	if len(empty) == 0 {
		return
	}

	cell := empty[g.rng.Intn(len(empty))]
	value := 2
	if g.rng.Float64() < g.cfg.Gameplay.FourChance {
		value = 4
	}
	g.board[cell.Y][cell.X] = value
	g.last = cell
}

// direction maps the frame to at most one move. Player 2's WASD counts
// too since the puzzle has a single player.
func direction(in core.MultiInputFrame) (Direction, bool) {
	switch {
	case in.AnyPressed(core.ActionUp):
		return DirUp, true
	case in.AnyPressed(core.ActionDown):
		return DirDown, true
	case in.AnyPressed(core.ActionLeft):
		return DirLeft, true
	case in.AnyPressed(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// Step advances the game by one tick.
func (g *Game) Step(_ core.Tick, in core.MultiInputFrame) core.StepResult {
	g.tick++

	if g.gameOver {
		return core.StepResult{State: g.State(), Restart: in.AnyPressed(core.ActionRestart)}
	}
	if in.AnyPressed(core.ActionRestart) {
		return core.StepResult{State: g.State(), Restart: true}
	}

	dir, ok := direction(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}
	return core.StepResult{State: g.State(), Events: g.processMove(dir)}
}

// processMove applies a slide. Moves that change nothing are not moves:
// no tile spawns and the counter stays put.
func (g *Game) processMove(dir Direction) []core.Event {
	next, gained, changed := Slide(g.board, dir)
	if !changed {
		return nil
	}

	g.board = next
	g.score += gained
	g.moves++
	g.spawnTile()

	var events []core.Event
	if gained > 0 {
		events = append(events, core.EventMatch)
	}
	if !g.won && MaxTile(g.board) >= g.cfg.Gameplay.WinTile {
		g.won = true
		events = append(events, core.EventWin)
	}
	if IsGameOver(g.board) {
		g.gameOver = true
		events = append(events, core.EventGameOver)
	}
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Mode:     g.rt.Mode,
	}
}
