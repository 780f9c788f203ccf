package t2048

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/session"
)

// newSession starts a 2048 session with a single tile in the top-right
// corner, so that a left slide is always legal.
func newSession(t *testing.T, hold time.Duration) (*Game, *session.Session, time.Time) {
	t.Helper()
	g := NewWithConfig(config.Default2048Config())
	s := session.NewWithGame(g, session.Options{
		Seed:      1,
		Canvas:    core.NewDrawList(core.CanvasWidth, core.CanvasHeight),
		PulseHold: hold,
		Logger:    log.New(io.Discard),
	})
	start := time.Unix(0, 0)
	s.Start(start)
	t.Cleanup(s.Stop)

	g.board = Board{
		{0, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	return g, s, start
}

func tickN(s *session.Session, start time.Time, from, n int) {
	for i := from; i < from+n; i++ {
		s.Tick(start.Add(time.Duration(i) * s.Period()))
	}
}

func tiles(b Board) int {
	return 16 - len(EmptyCells(b))
}

func TestTerminalKeypressSlidesOnce(t *testing.T) {
	g, s, start := newSession(t, 180*time.Millisecond)

	s.Pulse("left")
	tickN(s, start, 1, 10)

	if g.moves != 1 {
		t.Errorf("one keypress made %d moves, want 1", g.moves)
	}
	if n := tiles(g.board); n != 2 {
		t.Errorf("board has %d tiles after one move, want 2", n)
	}
}

func TestHeldKeySlidesOnce(t *testing.T) {
	g, s, start := newSession(t, 0)

	s.Press("ArrowLeft")
	tickN(s, start, 1, 6)
	s.Release("ArrowLeft")
	tickN(s, start, 7, 2)

	if g.moves != 1 {
		t.Errorf("one held key made %d moves, want 1", g.moves)
	}
}

func TestTapBetweenTicksSlides(t *testing.T) {
	g, s, start := newSession(t, 0)

	s.Press("ArrowLeft")
	s.Release("ArrowLeft")
	tickN(s, start, 1, 3)

	if g.moves != 1 {
		t.Errorf("tap released before the tick made %d moves, want 1", g.moves)
	}
	if g.board[0][0] != 2 {
		t.Errorf("tile did not slide left:\n%v", g.board)
	}
}
