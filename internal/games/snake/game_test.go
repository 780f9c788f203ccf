package snake

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
)

func newGame(seed int64, mode core.Mode) *Game {
	g := NewWithConfig(config.DefaultSnakeConfig())
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	cfg.Mode = mode
	g.Reset(cfg)
	return g
}

func step(g *Game, p1, p2 []core.Action) core.StepResult {
	return g.Step(core.Tick{Delta: 1}, core.Frames(p1, p2))
}

func TestInitialLayout(t *testing.T) {
	g := newGame(1, core.ModeSolo)

	if g.cols != 20 || g.rows != 20 {
		t.Fatalf("grid = %dx%d, want 20x20", g.cols, g.rows)
	}
	if head := g.snakes[0].Head(); head != (core.Cell{X: 5, Y: 5}) {
		t.Errorf("P1 head = %v, want (5,5)", head)
	}
	if g.snakes[0].Dir != DirRight {
		t.Errorf("P1 heading = %v, want right", g.snakes[0].Dir)
	}
	if g.snakes[1].Head() != (core.Cell{X: 15, Y: 15}) || g.snakes[1].Dir != DirLeft {
		t.Errorf("P2 spawn = %v %v, want (15,15) left", g.snakes[1].Head(), g.snakes[1].Dir)
	}
	if g.snakes[0].Occupies(g.food) {
		t.Error("food spawned on the snake")
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(12345, core.ModeVersus)
	g2 := newGame(12345, core.ModeVersus)

	for i := range 60 {
		var p1 []core.Action
		switch i {
		case 5:
			p1 = []core.Action{core.ActionDown}
		case 12:
			p1 = []core.Action{core.ActionRight}
		}
		step(g1, p1, nil)
		step(g2, p1, nil)
	}

	if g1.Digest() != g2.Digest() {
		t.Errorf("digest mismatch: %x vs %x", g1.Digest(), g2.Digest())
	}
}

func TestEatFoodAhead(t *testing.T) {
	g := newGame(7, core.ModeSolo)
	head := g.snakes[0].Head()
	g.food = core.Cell{X: head.X + 1, Y: head.Y}

	res := step(g, nil, nil)

	if got := len(g.snakes[0].Body); got != 2 {
		t.Errorf("length = %d, want 2", got)
	}
	if res.State.Score != 10 {
		t.Errorf("score = %d, want 10", res.State.Score)
	}
	if g.snakes[0].Head() != (core.Cell{X: head.X + 1, Y: head.Y}) {
		t.Errorf("head = %v, want one cell right of %v", g.snakes[0].Head(), head)
	}
	if len(res.Events) != 1 || res.Events[0] != core.EventEat {
		t.Errorf("events = %v, want [eat]", res.Events)
	}
	if g.snakes[0].Occupies(g.food) {
		t.Error("new food placed on the snake")
	}
}

func TestMoveWithoutFoodKeepsLength(t *testing.T) {
	g := newGame(7, core.ModeSolo)
	g.food = core.Cell{X: 0, Y: 19}

	step(g, nil, nil)

	if got := len(g.snakes[0].Body); got != 1 {
		t.Errorf("length = %d, want 1", got)
	}
	if g.snakes[0].Head() != (core.Cell{X: 6, Y: 5}) {
		t.Errorf("head = %v, want (6,5)", g.snakes[0].Head())
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newGame(42, core.ModeSolo)
	g.food = core.Cell{X: 0, Y: 19}

	step(g, []core.Action{core.ActionLeft}, nil)

	if g.snakes[0].Dir != DirRight {
		t.Errorf("reversal accepted: heading %v", g.snakes[0].Dir)
	}

	// Up then Left within one tick: Left is judged against the committed
	// heading (right) and rejected.
	g.snakes[0].steer(core.Frames([]core.Action{core.ActionUp}, nil).Player1())
	g.snakes[0].steer(core.Frames([]core.Action{core.ActionLeft}, nil).Player1())
	if g.snakes[0].Next != DirUp {
		t.Errorf("next = %v, want up", g.snakes[0].Next)
	}
}

// Random steering over many rounds: the head never lands on the cell that
// was the second segment before the move.
func TestNeverReversesIntoSecondSegment(t *testing.T) {
	actions := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionNone}
	rng := rand.New(rand.NewSource(99))

	for round := range 50 {
		g := newGame(int64(round), core.ModeSolo)
		for range 200 {
			if g.gameOver {
				break
			}
			s := &g.snakes[0]
			// Keep feeding so the body is long enough to matter.
			dx, dy := s.Next.delta()
			g.food = core.Cell{X: s.Head().X + dx, Y: s.Head().Y + dy}

			var second *core.Cell
			if len(s.Body) > 1 {
				c := s.Body[1]
				second = &c
			}
			prevDir := s.Dir

			step(g, []core.Action{actions[rng.Intn(len(actions))]}, nil)

			if s.Dir == prevDir.Opposite() {
				t.Fatalf("round %d: heading reversed from %v to %v", round, prevDir, s.Dir)
			}
			if second != nil && s.Head() == *second {
				t.Fatalf("round %d: head moved onto former second segment %v", round, *second)
			}
		}
	}
}

func TestWallEndsGame(t *testing.T) {
	g := newGame(3, core.ModeSolo)
	g.food = core.Cell{X: 0, Y: 19}

	var res core.StepResult
	for range 20 {
		res = step(g, []core.Action{core.ActionUp}, nil)
		if res.State.GameOver {
			break
		}
	}
	if !res.State.GameOver {
		t.Fatal("expected game over after hitting the top wall")
	}
	if res.State.Winner != core.PlayerNone {
		t.Errorf("solo winner = %v, want none", res.State.Winner)
	}

	head := g.snakes[0].Head()
	res = step(g, []core.Action{core.ActionUp}, nil)
	if res.Restart {
		t.Error("movement should not restart")
	}
	if g.snakes[0].Head() != head {
		t.Error("snake moved after game over")
	}
	if !step(g, []core.Action{core.ActionRestart}, nil).Restart {
		t.Error("restart key should request a new round")
	}
}

func TestVersusCollisionAwardsOtherPlayer(t *testing.T) {
	g := newGame(5, core.ModeVersus)
	g.food = core.Cell{X: 0, Y: 0}

	// P2 body lies across P1's path.
	g.snakes[1].Body = []core.Cell{{X: 7, Y: 4}, {X: 7, Y: 5}, {X: 7, Y: 6}}
	g.snakes[1].Dir, g.snakes[1].Next = DirUp, DirUp
	g.snakes[0].Body = []core.Cell{{X: 6, Y: 5}}

	res := step(g, nil, nil)
	if !res.State.GameOver {
		t.Fatal("expected game over")
	}
	if res.State.Winner != core.Player2 {
		t.Errorf("winner = %v, want player 2", res.State.Winner)
	}
}

func TestVersusHeadOnIsDraw(t *testing.T) {
	g := newGame(5, core.ModeVersus)
	g.food = core.Cell{X: 0, Y: 0}
	g.snakes[0].Body = []core.Cell{{X: 9, Y: 10}}
	g.snakes[1].Body = []core.Cell{{X: 11, Y: 10}}

	res := step(g, nil, nil)
	if !res.State.GameOver || res.State.Winner != core.PlayerNone {
		t.Errorf("head-on: over=%v winner=%v, want draw", res.State.GameOver, res.State.Winner)
	}
}

func TestSoloIgnoresSecondSnake(t *testing.T) {
	g := newGame(5, core.ModeSolo)
	g.food = core.Cell{X: 0, Y: 0}
	before := g.snakes[1].Head()

	step(g, nil, []core.Action{core.ActionUp})

	if g.snakes[1].Head() != before {
		t.Error("player 2 snake moved in solo mode")
	}
}

func TestRenderGameOverBanner(t *testing.T) {
	g := newGame(1, core.ModeSolo)
	g.gameOver = true
	g.scores[0] = 30

	dl := core.NewDrawList(core.CanvasWidth, core.CanvasHeight)
	g.Render(dl)

	found := false
	for _, s := range dl.Texts() {
		if s == "GAME OVER" {
			found = true
		}
	}
	if !found {
		t.Errorf("texts %q missing GAME OVER", dl.Texts())
	}
}

func TestInfo(t *testing.T) {
	info := New().Info()
	if info.Timing.Period != 120*time.Millisecond {
		t.Errorf("period = %v, want 120ms", info.Timing.Period)
	}
	if !info.Toggle {
		t.Error("snake should offer a mode toggle")
	}
}
