package tictactoe

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/session"
)

func newGame(mode core.Mode) (*Game, *session.Scheduler) {
	sched := session.NewScheduler()
	cfg := core.DefaultConfig()
	cfg.Mode = mode
	cfg.Timers = sched

	g := NewWithConfig(config.DefaultTicTacToeConfig())
	g.Reset(cfg)
	return g, sched
}

// clickCell clicks the centre of cell i on the 400px board.
func clickCell(g *Game, i int) core.StepResult {
	cell := 400.0 / Size
	return g.Step(core.Tick{}, core.Click(float64(i%Size)*cell+cell/2, float64(i/Size)*cell+cell/2))
}

func parse(rows string) Board {
	var b Board
	for i, r := range rows {
		switch r {
		case 'X':
			b[i] = X
		case 'O':
			b[i] = O
		}
	}
	return b
}

func TestBestMoveTakesImmediateWin(t *testing.T) {
	tests := []struct {
		name  string
		board string
		want  int
	}{
		{"row over block", "OO.XX....", 2},
		{"column", "O.XO.X...", 6},
		{"diagonal", "O.X.OX...", 8},
		{"anti-diagonal", "X.O.OX...", 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := parse(tt.board)
			for seed := range int64(20) {
				if got := BestMove(&b, O, rand.New(rand.NewSource(seed))); got != tt.want {
					t.Fatalf("seed %d: BestMove = %d, want %d", seed, got, tt.want)
				}
			}
			if b != parse(tt.board) {
				t.Error("BestMove modified the board")
			}
		})
	}
}

func TestBestMovePriorities(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	block := parse("XX..O....")
	if got := BestMove(&block, O, rng); got != 2 {
		t.Errorf("block: got %d, want 2", got)
	}

	centre := parse("X........")
	if got := BestMove(&centre, O, rng); got != 4 {
		t.Errorf("centre: got %d, want 4", got)
	}

	corner := parse("....X....")
	got := BestMove(&corner, O, rng)
	if got != 0 && got != 2 && got != 6 && got != 8 {
		t.Errorf("corner: got %d, want a corner", got)
	}

	full := parse("XOXXOOOXX")
	if got := BestMove(&full, O, rng); got != -1 {
		t.Errorf("full board: got %d, want -1", got)
	}
}

func TestWinDetection(t *testing.T) {
	tests := []struct {
		board string
		want  Mark
	}{
		{"XXX......", X},
		{"O..O..O..", O},
		{"X...X...X", X},
		{"..O.O.O..", O},
		{"XOXXOOOXX", Empty},
	}
	for _, tt := range tests {
		b := parse(tt.board)
		if got, _ := b.Winner(); got != tt.want {
			t.Errorf("Winner(%s) = %v, want %v", tt.board, got, tt.want)
		}
	}
}

func TestTwoPlayerGame(t *testing.T) {
	g, _ := newGame(core.ModeVersus)

	for _, c := range []int{0, 3, 1, 4} {
		clickCell(g, c)
	}
	res := clickCell(g, 2)

	if !res.State.GameOver || res.State.Winner != core.Player1 {
		t.Fatalf("state = %+v, want X win", res.State)
	}
	if g.winLine != 0 {
		t.Errorf("win line = %d, want top row", g.winLine)
	}
	if !clickCell(g, 5).Restart {
		t.Error("click after game over should restart")
	}
}

func TestOccupiedCellIgnored(t *testing.T) {
	g, _ := newGame(core.ModeVersus)
	clickCell(g, 4)
	clickCell(g, 4)
	if g.current != O || g.board[4] != X {
		t.Errorf("occupied click changed turn: current=%v board[4]=%v", g.current, g.board[4])
	}
}

func TestTie(t *testing.T) {
	g, _ := newGame(core.ModeVersus)
	// X O X / X O O / O X X
	for _, c := range []int{0, 1, 2, 4, 3, 5, 7, 6, 8} {
		clickCell(g, c)
	}
	st := g.State()
	if !st.GameOver || st.Winner != core.PlayerNone {
		t.Errorf("state = %+v, want tie", st)
	}
}

func TestAIAnswersAfterDelay(t *testing.T) {
	g, sched := newGame(core.ModeSolo)

	clickCell(g, 0)
	if !g.aiPending || g.current != O {
		t.Fatal("AI move not scheduled")
	}

	// Human clicks are ignored while the AI thinks.
	clickCell(g, 8)
	if g.board[8] != Empty {
		t.Error("human moved during AI turn")
	}

	sched.RunDue(599 * time.Millisecond)
	if g.board[4] != Empty {
		t.Fatal("AI moved before its delay")
	}
	sched.RunDue(600 * time.Millisecond)
	if g.board[4] != O {
		t.Errorf("AI should take the centre, board = %v", g.board)
	}
	if g.current != X || g.aiPending {
		t.Error("turn did not return to X")
	}
}

func TestRestartDropsPendingAIMove(t *testing.T) {
	g, sched := newGame(core.ModeSolo)
	clickCell(g, 0)

	sched.Invalidate()
	g.Reset(g.rt)
	sched.RunDue(time.Second)

	if g.board != (Board{}) {
		t.Errorf("stale AI move landed on the new board: %v", g.board)
	}
}

func TestKeyboardPlacesAtCursor(t *testing.T) {
	g, _ := newGame(core.ModeVersus)
	g.Step(core.Tick{}, core.Frames([]core.Action{core.ActionUp}, nil))
	g.Step(core.Tick{}, core.Frames([]core.Action{core.ActionConfirm}, nil))
	if g.board[1] != X {
		t.Errorf("board = %v, want X at top centre", g.board)
	}
}

func TestHeldKeyMovesCursorOnce(t *testing.T) {
	g, _ := newGame(core.ModeVersus)
	g.Step(core.Tick{}, core.Frames([]core.Action{core.ActionUp}, nil))
	g.Step(core.Tick{}, core.Frames([]core.Action{core.ActionDown}, nil))
	for range 3 {
		g.Step(core.Tick{}, core.Held(core.ActionDown, core.ActionConfirm))
	}
	if g.board != (Board{}) {
		t.Fatalf("held confirm placed a mark: %v", g.board)
	}
	g.Step(core.Tick{}, core.Frames([]core.Action{core.ActionConfirm}, nil))
	if g.board[4] != X {
		t.Errorf("board = %v, want X in the centre", g.board)
	}
}
