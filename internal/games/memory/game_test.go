package memory

import (
	"reflect"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/session"
)

// knownDeck lays pairs side by side: tiles 2k and 2k+1 match.
var knownDeck = []string{"A", "A", "B", "B", "C", "C", "D", "D", "E", "E", "F", "F", "G", "G", "H", "H"}

func newGame(t *testing.T) (*Game, *session.Scheduler) {
	t.Helper()
	sched := session.NewScheduler()
	cfg := core.DefaultConfig()
	cfg.Timers = sched

	g := NewWithConfig(config.DefaultMemoryConfig())
	g.Reset(cfg)
	g.deal(knownDeck)
	return g, sched
}

// clickTile clicks the centre of tile i on the 100px grid.
func clickTile(g *Game, i int) core.StepResult {
	x := float64(i%4)*100 + 50
	y := float64(i/4)*100 + 50
	return g.Step(core.Tick{}, core.Click(x, y))
}

func TestShuffleIsPermutationOfPairs(t *testing.T) {
	g := NewWithConfig(config.DefaultMemoryConfig())
	g.Reset(core.DefaultConfig())

	counts := map[string]int{}
	for _, tile := range g.tiles {
		counts[tile.Symbol]++
	}
	if len(g.tiles) != 16 || len(counts) != 8 {
		t.Fatalf("deck has %d tiles, %d symbols; want 16 and 8", len(g.tiles), len(counts))
	}
	for sym, n := range counts {
		if n != 2 {
			t.Errorf("symbol %q appears %d times", sym, n)
		}
	}

	again := NewWithConfig(config.DefaultMemoryConfig())
	again.Reset(core.DefaultConfig())
	if !slices.Equal(g.tiles, again.tiles) {
		t.Error("same seed shuffled differently")
	}
}

func TestMatchingPair(t *testing.T) {
	g, _ := newGame(t)

	clickTile(g, 0)
	res := clickTile(g, 1)

	if !g.tiles[0].Matched || !g.tiles[1].Matched {
		t.Error("pair not marked matched")
	}
	if res.State.Score != 10 {
		t.Errorf("score = %d, want 10", res.State.Score)
	}
	if g.Moves() != 1 {
		t.Errorf("moves = %d, want 1", g.Moves())
	}
	if len(g.flipped) != 0 {
		t.Errorf("flipped = %v, want empty", g.flipped)
	}
}

func TestMismatchFlipsBackAfterDelay(t *testing.T) {
	g, sched := newGame(t)

	clickTile(g, 1)
	clickTile(g, 2)
	if g.Moves() != 1 || g.score != 0 {
		t.Fatalf("moves=%d score=%d, want 1 and 0", g.Moves(), g.score)
	}

	// A third card is ignored while two are showing.
	clickTile(g, 5)
	if g.tiles[5].Flipped {
		t.Error("third card flipped while a pair is showing")
	}

	sched.RunDue(999 * time.Millisecond)
	if !g.tiles[1].Flipped || !g.tiles[2].Flipped {
		t.Fatal("cards flipped back early")
	}

	sched.RunDue(time.Second)
	if g.tiles[1].Flipped || g.tiles[2].Flipped {
		t.Error("cards still face up after 1000ms")
	}
	if len(g.flipped) != 0 {
		t.Errorf("flipped = %v, want empty", g.flipped)
	}
}

func TestStaleFlipBackDropped(t *testing.T) {
	g, sched := newGame(t)
	clickTile(g, 1)
	clickTile(g, 2)

	sched.Invalidate()
	sched.RunDue(2 * time.Second)

	if !g.tiles[1].Flipped {
		t.Error("flip-back ran after invalidation")
	}
}

func TestFlipIgnoresMatchedAndFaceUp(t *testing.T) {
	g, _ := newGame(t)

	clickTile(g, 0)
	clickTile(g, 0)
	if len(g.flipped) != 1 || g.Moves() != 0 {
		t.Errorf("re-clicking a face-up card counted: flipped=%v moves=%d", g.flipped, g.Moves())
	}
	clickTile(g, 1)
	clickTile(g, 0)
	if len(g.flipped) != 0 || g.Moves() != 1 {
		t.Errorf("clicking a matched card counted: flipped=%v moves=%d", g.flipped, g.Moves())
	}
}

func TestClickOutsideBoardIgnored(t *testing.T) {
	g, _ := newGame(t)
	before := g.Snapshot()

	g.Step(core.Tick{}, core.Click(-5, 50))
	g.Step(core.Tick{}, core.Click(50, 450))

	after := g.Snapshot()
	after.Tick = before.Tick
	if !reflect.DeepEqual(before, after) {
		t.Errorf("out-of-board click changed state: %+v", after)
	}
}

func TestKeyboardFlip(t *testing.T) {
	g, _ := newGame(t)

	g.Step(core.Tick{}, core.Frames([]core.Action{core.ActionRight}, nil))
	g.Step(core.Tick{}, core.Frames([]core.Action{core.ActionFire}, nil))

	if !g.tiles[1].Flipped {
		t.Error("space did not flip the card under the cursor")
	}

	for range 10 {
		g.Step(core.Tick{}, core.Frames([]core.Action{core.ActionLeft}, nil))
	}
	if g.cursor.X != 0 {
		t.Errorf("cursor x = %d, want clamped to 0", g.cursor.X)
	}
}

func TestClearingBoardWins(t *testing.T) {
	g, _ := newGame(t)

	var res core.StepResult
	for i := 0; i < 16; i += 2 {
		clickTile(g, i)
		res = clickTile(g, i+1)
	}

	if !res.State.GameOver || !res.State.Won {
		t.Fatalf("state = %+v, want won game over", res.State)
	}
	if res.State.Score != 80 || g.Moves() != 8 {
		t.Errorf("score=%d moves=%d, want 80 and 8", res.State.Score, g.Moves())
	}
	if !slices.Contains(res.Events, core.EventWin) {
		t.Errorf("events = %v, want win", res.Events)
	}
	if !clickTile(g, 0).Restart {
		t.Error("click after game over should restart")
	}
}
