// Package snake implements grid Snake for one player or two players
// sharing a keyboard.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/games/gamekit"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

// Direction represents a snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Snake is one player's body, head first.
type Snake struct {
	Body []core.Cell
	Dir  Direction // Heading used by the last move
	Next Direction // Heading for the coming move
}

// Head returns the first segment.
func (s *Snake) Head() core.Cell {
	return s.Body[0]
}

// Occupies reports whether any segment sits on c.
func (s *Snake) Occupies(c core.Cell) bool {
	for _, seg := range s.Body {
		if seg == c {
			return true
		}
	}
	return false
}

func (s *Snake) steer(in core.InputFrame) {
	want := s.Next
	switch {
	case in.Has(core.ActionUp):
		want = DirUp
	case in.Has(core.ActionDown):
		want = DirDown
	case in.Has(core.ActionLeft):
		want = DirLeft
	case in.Has(core.ActionRight):
		want = DirRight
	}
	// Reversal is judged against the committed heading, so two quick
	// turns inside one tick cannot fold the snake onto itself.
	if want != s.Dir.Opposite() {
		s.Next = want
	}
}

func (s *Snake) advance() {
	s.Dir = s.Next
	dx, dy := s.Dir.delta()
	head := s.Head()
	s.Body = append([]core.Cell{{X: head.X + dx, Y: head.Y + dy}}, s.Body...)
}

func (s *Snake) bitSelf() bool {
	head := s.Head()
	for _, seg := range s.Body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Game implements Snake.
type Game struct {
	cfg  config.SnakeConfig
	rt   core.RuntimeConfig
	rng  *rand.Rand
	tick uint64

	cols, rows int
	snakes     [2]Snake
	scores     [2]int
	food       core.Cell

	gameOver bool
	winner   core.PlayerID
}

// New creates a Snake game using the resolved config.
func New() *Game {
	cfg, err := config.LoadSnake()
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Snake game with explicit tuning.
func NewWithConfig(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Bind(registry.KindSnake, func() registry.Game {
		return New()
	})
}

// Info returns the game metadata.
func (g *Game) Info() registry.Info {
	return registry.Info{
		Kind:  registry.KindSnake,
		Title: "Snake",
		Timing: registry.Timing{
			Driver: registry.DriverFixed,
			Period: 120 * time.Millisecond,
		},
		DefaultMode: core.ModeSolo,
		Toggle:      true,
		Controls:    "arrows steer, WASD steers player 2, M toggles players",
	}
}

// Reset initializes a fresh round: both snakes back at their spawn cells
// and both scores cleared.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.rng = gamekit.NewRand(rt.Seed)
	g.tick = 0
	g.gameOver = false
	g.winner = core.PlayerNone
	g.scores = [2]int{}

	cell := max(g.cfg.Board.CellSize, 1)
	g.cols = int(rt.Width) / cell
	g.rows = int(rt.Height) / cell

	s1, s2 := g.cfg.Players.Start1, g.cfg.Players.Start2
	g.snakes[0] = Snake{Body: []core.Cell{{X: s1.X, Y: s1.Y}}, Dir: DirRight, Next: DirRight}
	g.snakes[1] = Snake{Body: []core.Cell{{X: s2.X, Y: s2.Y}}, Dir: DirLeft, Next: DirLeft}

	g.placeFood()
}

func (g *Game) versus() bool {
	return g.rt.Mode == core.ModeVersus
}

// Step advances the game by one move.
func (g *Game) Step(_ core.Tick, in core.MultiInputFrame) core.StepResult {
	g.tick++

	if g.gameOver {
		return core.StepResult{State: g.State(), Restart: gamekit.Restarts(in)}
	}

	g.snakes[0].steer(in.Player1())
	if g.versus() {
		g.snakes[1].steer(in.Player2())
	}

	p1 := &g.snakes[0]
	p2 := &g.snakes[1]
	p1.advance()
	if g.versus() {
		p2.advance()
	}

	crash1 := g.outside(p1.Head()) || p1.bitSelf()
	crash2 := false
	if g.versus() {
		crash2 = g.outside(p2.Head()) || p2.bitSelf()
		if p2.Occupies(p1.Head()) {
			crash1 = true
		}
		if p1.Occupies(p2.Head()) {
			crash2 = true
		}
	}

	if crash1 || crash2 {
		g.gameOver = true
		switch {
		case !g.versus():
			g.winner = core.PlayerNone
		case crash1 && crash2:
			g.winner = core.PlayerNone
		case crash1:
			g.winner = core.Player2
		default:
			g.winner = core.Player1
		}
		return core.StepResult{State: g.State(), Events: []core.Event{core.EventGameOver}}
	}

	var events []core.Event
	for i := range g.snakes {
		if i == 1 && !g.versus() {
			break
		}
		s := &g.snakes[i]
		if s.Head() == g.food {
			g.scores[i] += g.cfg.Scoring.Food
			g.placeFood()
			events = append(events, core.EventEat)
			continue
		}
		s.Body = s.Body[:len(s.Body)-1]
	}

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) outside(c core.Cell) bool {
	return !c.InGrid(g.cols, g.rows)
}

func (g *Game) occupied(c core.Cell) bool {
	if g.snakes[0].Occupies(c) {
		return true
	}
	return g.versus() && g.snakes[1].Occupies(c)
}

// placeFood picks random cells until one is free. A full board leaves the
// food off-grid.
func (g *Game) placeFood() {
	used := len(g.snakes[0].Body)
	if g.versus() {
		used += len(g.snakes[1].Body)
	}
	if used >= g.cols*g.rows {
		g.food = core.Cell{X: -1, Y: -1}
		return
	}
	for {
		c := core.Cell{X: g.rng.Intn(g.cols), Y: g.rng.Intn(g.rows)}
		if !g.occupied(c) {
			g.food = c
			return
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.scores[0],
		Score2:   g.scores[1],
		GameOver: g.gameOver,
		Winner:   g.winner,
		Mode:     g.rt.Mode,
	}
}
