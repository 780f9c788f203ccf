// Package memory implements the pairs card game on a 4×4 deck.
package memory

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/games/gamekit"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

// Tile is one card of the deck.
type Tile struct {
	Symbol  string
	Flipped bool
	Matched bool
}

// Game implements Memory.
type Game struct {
	cfg  config.MemoryConfig
	rt   core.RuntimeConfig
	rng  *rand.Rand
	tick uint64

	cols, rows int
	tiles      []Tile
	flipped    []int // Face-up, unmatched tiles in flip order
	cursor     core.Cell

	score    int
	moves    int
	gameOver bool
}

// New creates a Memory game using the resolved config.
func New() *Game {
	cfg, err := config.LoadMemory()
	if err != nil {
		cfg = config.DefaultMemoryConfig()
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Memory game with explicit tuning. A board that
// cannot hold whole pairs falls back to the default layout.
func NewWithConfig(cfg config.MemoryConfig) *Game {
	if cfg.Board.Validate() != nil {
		def := config.DefaultMemoryConfig()
		cfg.Board.Cols, cfg.Board.Rows = def.Board.Cols, def.Board.Rows
	}
	return &Game{cfg: cfg}
}

func init() {
	registry.Bind(registry.KindMemory, func() registry.Game {
		return New()
	})
}

// Info returns the game metadata.
func (g *Game) Info() registry.Info {
	return registry.Info{
		Kind:  registry.KindMemory,
		Title: "Memory",
		Timing: registry.Timing{
			Driver: registry.DriverFixed,
			Period: time.Second / 30,
		},
		DefaultMode: core.ModeSolo,
		Controls:    "click a card, or arrows and space",
	}
}

// Reset shuffles a new deck.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.rng = gamekit.NewRand(rt.Seed)
	g.tick = 0
	g.cols = g.cfg.Board.Cols
	g.rows = g.cfg.Board.Rows
	g.flipped = nil
	g.cursor = core.Cell{}
	g.score = 0
	g.moves = 0
	g.gameOver = false

	g.deal(g.shuffled())
}

// shuffled returns the deck symbols in Fisher–Yates order.
func (g *Game) shuffled() []string {
	pairs := g.cols * g.rows / 2
	deck := make([]string, 0, pairs*2)
	for i := range pairs {
		sym := "?"
		if len(g.cfg.Board.Symbols) > 0 {
			sym = g.cfg.Board.Symbols[i%len(g.cfg.Board.Symbols)]
		}
		deck = append(deck, sym, sym)
	}
	for i := len(deck) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
	return deck
}

func (g *Game) deal(deck []string) {
	g.tiles = make([]Tile, len(deck))
	for i, sym := range deck {
		g.tiles[i] = Tile{Symbol: sym}
	}
}

func (g *Game) tileSize() (w, h float64) {
	return g.rt.Width / float64(g.cols), g.rt.Height / float64(g.rows)
}

// Step handles clicks and keyboard flips. Flip-backs arrive through the
// runtime timers.
func (g *Game) Step(_ core.Tick, in core.MultiInputFrame) core.StepResult {
	g.tick++

	if g.gameOver {
		return core.StepResult{State: g.State(), Restart: gamekit.Restarts(in)}
	}

	p1 := in.Player1()
	g.moveCursor(p1)

	var events []core.Event
	if x, y, ok := p1.Clicked(); ok {
		tw, th := g.tileSize()
		c := core.Cell{X: int(x / tw), Y: int(y / th)}
		if x >= 0 && y >= 0 && c.InGrid(g.cols, g.rows) {
			g.cursor = c
			events = g.flip(c.Y*g.cols + c.X)
		}
	} else if p1.Pressed(core.ActionFire) || p1.Pressed(core.ActionConfirm) {
		events = g.flip(g.cursor.Y*g.cols + g.cursor.X)
	}

	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Pressed(core.ActionUp):
		g.cursor.Y--
	case in.Pressed(core.ActionDown):
		g.cursor.Y++
	case in.Pressed(core.ActionLeft):
		g.cursor.X--
	case in.Pressed(core.ActionRight):
		g.cursor.X++
	}
	g.cursor.X = core.Clamp(g.cursor.X, 0, g.cols-1)
	g.cursor.Y = core.Clamp(g.cursor.Y, 0, g.rows-1)
}

// flip turns tile i face up and resolves a pair once two are showing.
func (g *Game) flip(i int) []core.Event {
	if i < 0 || i >= len(g.tiles) || len(g.flipped) >= 2 {
		return nil
	}
	t := &g.tiles[i]
	if t.Flipped || t.Matched {
		return nil
	}
	t.Flipped = true
	g.flipped = append(g.flipped, i)
	if len(g.flipped) < 2 {
		return []core.Event{core.EventFlip}
	}

	g.moves++
	a, b := &g.tiles[g.flipped[0]], &g.tiles[g.flipped[1]]
	if a.Symbol != b.Symbol {
		g.rt.After(time.Duration(g.cfg.Timing.FlipBackMS)*time.Millisecond, g.flipBack)
		return []core.Event{core.EventFlip}
	}

	a.Matched, b.Matched = true, true
	g.flipped = nil
	g.score += g.cfg.Scoring.Match
	if g.allMatched() {
		g.gameOver = true
		return []core.Event{core.EventMatch, core.EventWin}
	}
	return []core.Event{core.EventMatch}
}

func (g *Game) flipBack() {
	for _, i := range g.flipped {
		g.tiles[i].Flipped = false
	}
	g.flipped = nil
}

func (g *Game) allMatched() bool {
	for _, t := range g.tiles {
		if !t.Matched {
			return false
		}
	}
	return true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.gameOver,
		Mode:     g.rt.Mode,
	}
}

// Moves returns the number of pairs turned so far.
func (g *Game) Moves() int {
	return g.moves
}
