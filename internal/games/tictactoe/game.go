// Package tictactoe implements noughts and crosses for two players or one
// player against a rule-based AI.
package tictactoe

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/games/gamekit"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

// Size is the board edge length.
const Size = 3

// Mark is the content of a board cell.
type Mark int

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	}
	return ""
}

func (m Mark) other() Mark {
	if m == X {
		return O
	}
	return X
}

// Board is a row-major 3×3 grid.
type Board [Size * Size]Mark

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// Winner returns the mark owning a full line and that line's index, or
// Empty and -1.
func (b *Board) Winner() (Mark, int) {
	for i, l := range lines {
		m := b[l[0]]
		if m != Empty && m == b[l[1]] && m == b[l[2]] {
			return m, i
		}
	}
	return Empty, -1
}

// Full reports whether no empty cell remains.
func (b *Board) Full() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

func (b *Board) empties() []int {
	var out []int
	for i, m := range b {
		if m == Empty {
			out = append(out, i)
		}
	}
	return out
}

// Game implements Tic-Tac-Toe.
type Game struct {
	cfg  config.TicTacToeConfig
	rt   core.RuntimeConfig
	rng  *rand.Rand
	tick uint64

	board     Board
	current   Mark
	cursor    core.Cell
	aiPending bool

	gameOver bool
	winner   Mark
	winLine  int
}

// New creates a Tic-Tac-Toe game using the resolved config.
func New() *Game {
	cfg, err := config.LoadTicTacToe()
	if err != nil {
		cfg = config.DefaultTicTacToeConfig()
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Tic-Tac-Toe game with explicit tuning.
func NewWithConfig(cfg config.TicTacToeConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Bind(registry.KindTicTacToe, func() registry.Game {
		return New()
	})
}

// Info returns the game metadata.
func (g *Game) Info() registry.Info {
	return registry.Info{
		Kind:  registry.KindTicTacToe,
		Title: "Tic-Tac-Toe",
		Timing: registry.Timing{
			Driver: registry.DriverFixed,
			Period: time.Second / 30,
		},
		DefaultMode: core.ModeVersus,
		Toggle:      true,
		Controls:    "click a cell, or arrows and space; M toggles the AI",
	}
}

// Reset clears the board. X always moves first.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.rng = gamekit.NewRand(rt.Seed)
	g.tick = 0
	g.board = Board{}
	g.current = X
	g.cursor = core.Cell{X: 1, Y: 1}
	g.aiPending = false
	g.gameOver = false
	g.winner = Empty
	g.winLine = -1
}

func (g *Game) vsAI() bool {
	return g.rt.Mode != core.ModeVersus
}

// Step handles one player move. The AI answers later through the runtime
// timers.
func (g *Game) Step(_ core.Tick, in core.MultiInputFrame) core.StepResult {
	g.tick++

	if g.gameOver {
		return core.StepResult{State: g.State(), Restart: gamekit.Restarts(in)}
	}

	p1 := in.Player1()
	g.moveCursor(p1)

	if g.vsAI() && g.current == O {
		return core.StepResult{State: g.State()}
	}

	cell := -1
	if x, y, ok := p1.Clicked(); ok {
		c := core.Snap(x, y, g.rt.Width/Size)
		if x >= 0 && y >= 0 && c.InGrid(Size, Size) {
			cell = c.Y*Size + c.X
		}
	} else if p1.Pressed(core.ActionFire) || p1.Pressed(core.ActionConfirm) {
		cell = g.cursor.Y*Size + g.cursor.X
	}
	if cell < 0 || g.board[cell] != Empty {
		return core.StepResult{State: g.State()}
	}

	events := g.place(cell)
	if g.vsAI() && !g.gameOver && g.current == O {
		g.aiPending = true
		g.rt.After(time.Duration(g.cfg.AI.DelayMS)*time.Millisecond, g.aiMove)
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
	g.cursor.X = core.Clamp(g.cursor.X, 0, Size-1)
	g.cursor.Y = core.Clamp(g.cursor.Y, 0, Size-1)
}

// place puts the current mark on cell, checks for a result and passes the
// turn.
func (g *Game) place(cell int) []core.Event {
	g.board[cell] = g.current
	if w, line := g.board.Winner(); w != Empty {
		g.gameOver = true
		g.winner = w
		g.winLine = line
		return []core.Event{core.EventWin}
	}
	if g.board.Full() {
		g.gameOver = true
		return []core.Event{core.EventGameOver}
	}
	g.current = g.current.other()
	return []core.Event{core.EventHit}
}

func (g *Game) aiMove() {
	g.aiPending = false
	if g.gameOver || g.current != O {
		return
	}
	if cell := BestMove(&g.board, O, g.rng); cell >= 0 {
		g.place(cell)
	}
}

// BestMove picks a cell for me: win now, else block, else centre, else a
// random corner, else any empty cell. Returns -1 on a full board.
func BestMove(b *Board, me Mark, rng *rand.Rand) int {
	empties := b.empties()
	if len(empties) == 0 {
		return -1
	}
	for _, want := range []Mark{me, me.other()} {
		for _, c := range empties {
			b[c] = want
			w, _ := b.Winner()
			b[c] = Empty
			if w == want {
				return c
			}
		}
	}
	if b[4] == Empty {
		return 4
	}
	var corners []int
	for _, c := range []int{0, 2, 6, 8} {
		if b[c] == Empty {
			corners = append(corners, c)
		}
	}
	if len(corners) > 0 {
		return corners[rng.Intn(len(corners))]
	}
	return empties[rng.Intn(len(empties))]
}

// State returns the current game state. A finished round scores 1 for the
// winning side.
func (g *Game) State() core.GameState {
	st := core.GameState{GameOver: g.gameOver, Mode: g.rt.Mode}
	switch g.winner {
	case X:
		st.Score = 1
		st.Winner = core.Player1
		st.Won = true
	case O:
		st.Score2 = 1
		st.Winner = core.Player2
	}
	return st
}
