package flappy

import (
	"slices"
	"testing"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/games/gamekit"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

func newGame(seed int64) *Game {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g := NewWithConfig(config.DefaultFlappyConfig())
	g.Reset(cfg)
	return g
}

var (
	noInput = core.NewMultiInputFrame()
	flap    = core.Frames([]core.Action{core.ActionFire}, nil)
)

func TestGameDeterminism(t *testing.T) {
	// Flap every 15 ticks to try to stay airborne
	run := func() uint64 {
		g := newGame(12345)
		for i := 0; i < 200; i++ {
			in := noInput
			if i%15 == 0 {
				in = flap
			}
			if g.Step(core.Tick{}, in).State.GameOver {
				break
			}
		}
		return g.Digest()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("Determinism failed: digests differ. Run1=%x, Run2=%x", a, b)
	}
}

func TestInitialLayout(t *testing.T) {
	g := newGame(7)

	if g.birdX != 100 || g.birdY != 200 {
		t.Errorf("bird at (%v, %v), want (100, 200)", g.birdX, g.birdY)
	}

	pipes := g.pipes.Pipes()
	if len(pipes) != 3 {
		t.Fatalf("got %d pipes, want 3", len(pipes))
	}
	for i, p := range pipes {
		if want := 400 + float64(i)*200; p.X != want {
			t.Errorf("pipe %d x = %v, want %v", i, p.X, want)
		}
		if p.TopHeight < 50 || p.TopHeight > 200 {
			t.Errorf("pipe %d top height %v outside [50, 200]", i, p.TopHeight)
		}
		if p.BottomY-p.TopHeight != 150 {
			t.Errorf("pipe %d gap = %v, want 150", i, p.BottomY-p.TopHeight)
		}
	}
}

func TestGameGravity(t *testing.T) {
	g := newGame(1)
	g.Step(core.Tick{}, noInput)

	if g.birdVel != 0.5 || g.birdY != 200.5 {
		t.Errorf("after one tick vel=%v y=%v, want 0.5 and 200.5", g.birdVel, g.birdY)
	}
}

func TestGameJumpPhysics(t *testing.T) {
	g := newGame(1)
	res := g.Step(core.Tick{}, flap)

	if g.birdVel != -9.5 {
		t.Errorf("velocity after flap = %v, want -9.5", g.birdVel)
	}
	if g.birdY >= 200 {
		t.Errorf("flap should move the bird up, y = %v", g.birdY)
	}
	if len(res.Events) == 0 || res.Events[0] != core.EventFire {
		t.Errorf("events = %v, want flap event", res.Events)
	}

	// Up and clicks flap too
	for _, in := range []core.MultiInputFrame{
		core.Frames([]core.Action{core.ActionUp}, nil),
		core.Click(10, 10),
	} {
		g := newGame(1)
		g.Step(core.Tick{}, in)
		if g.birdVel != -9.5 {
			t.Errorf("input %+v did not flap", in)
		}
	}
}

func TestCeilingClamps(t *testing.T) {
	g := newGame(1)
	g.birdY = 2
	g.birdVel = -9

	res := g.Step(core.Tick{}, noInput)
	if res.State.GameOver {
		t.Fatal("ceiling should not end the game")
	}
	if g.birdY != 0 || g.birdVel != 0 {
		t.Errorf("y=%v vel=%v, want clamped to 0", g.birdY, g.birdVel)
	}
}

func TestFloorEndsGame(t *testing.T) {
	g := newGame(1)
	g.birdY = 371

	res := g.Step(core.Tick{}, noInput)
	if !res.State.GameOver {
		t.Fatal("Game should be over when the bird hits the floor")
	}

	if !g.Step(core.Tick{}, core.Click(200, 200)).Restart {
		t.Error("click after game over should restart")
	}
	if g.Step(core.Tick{}, noInput).Restart {
		t.Error("idle frame should not restart")
	}
}

func TestPassingPipeScores(t *testing.T) {
	g := newGame(1)
	// Open column so nothing collides, right edge just ahead of the bird.
	g.pipes.pipes = []Pipe{{X: 42, TopHeight: 0, BottomY: 400}}

	res := g.Step(core.Tick{}, noInput)
	if res.State.Score != 1 {
		t.Errorf("score = %d, want 1", res.State.Score)
	}

	res = g.Step(core.Tick{}, noInput)
	if res.State.Score != 1 {
		t.Errorf("a pipe scored twice: score = %d", res.State.Score)
	}
}

func TestPipeHitEndsGame(t *testing.T) {
	g := newGame(1)
	g.pipes.pipes = []Pipe{{X: 110, TopHeight: 250, BottomY: 400}}

	if !g.Step(core.Tick{}, noInput).State.GameOver {
		t.Error("flying into a pipe should end the game")
	}
}

func TestPipePopulationConstant(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	pm := NewPipeManager(gamekit.NewRand(3), 400, 400, cfg.Pipes)

	for tick := 0; tick < 1000; tick++ {
		pm.Update(cfg.Physics.Speed, 100)

		pipes := pm.Pipes()
		if len(pipes) != 3 {
			t.Fatalf("tick %d: %d pipes, want 3", tick, len(pipes))
		}
		for i := 1; i < len(pipes); i++ {
			if d := pipes[i].X - pipes[i-1].X; d != 200 {
				t.Fatalf("tick %d: spacing %v, want 200", tick, d)
			}
		}
	}
}

func TestGameReset(t *testing.T) {
	g := newGame(42)
	for i := 0; i < 50; i++ {
		in := noInput
		if i%10 == 0 {
			in = flap
		}
		g.Step(core.Tick{}, in)
	}

	g.Reset(g.rt)

	if g.score != 0 || g.gameOver || g.tickCount != 0 {
		t.Errorf("Reset left score=%d gameOver=%v ticks=%d", g.score, g.gameOver, g.tickCount)
	}
	if g.pipes.Pipes()[0].X != 400 {
		t.Errorf("Reset should line pipes up from the right edge, got x=%v", g.pipes.Pipes()[0].X)
	}
}

func TestGameRender(t *testing.T) {
	g := newGame(1)
	dl := core.NewDrawList(400, 400)
	g.Render(dl)
	if dl.Len() == 0 {
		t.Fatal("Render produced no draw calls")
	}

	g.gameOver = true
	dl.Reset()
	g.Render(dl)
	found := false
	for _, s := range dl.Texts() {
		if s == "GAME OVER" {
			found = true
		}
	}
	if !found {
		t.Error("game over banner missing")
	}
}

func TestInfo(t *testing.T) {
	info := New().Info()
	if info.Kind != registry.KindFlappy || info.Toggle {
		t.Errorf("unexpected info %+v", info)
	}
}

func TestHeldKeyFlapsOnce(t *testing.T) {
	g := newGame(1)

	res := g.Step(core.Tick{}, core.Frames([]core.Action{core.ActionUp}, nil))
	if !slices.Contains(res.Events, core.EventFire) {
		t.Fatal("pressing up should flap")
	}
	for i := range 5 {
		res := g.Step(core.Tick{}, core.Held(core.ActionUp, core.ActionFire))
		if slices.Contains(res.Events, core.EventFire) {
			t.Fatalf("tick %d: held key flapped again", i)
		}
	}
	want := g.cfg.Physics.JumpImpulse
	for range 6 {
		want += g.cfg.Physics.Gravity
	}
	if g.birdVel != want {
		t.Errorf("bird velocity = %v, want %v after a single flap", g.birdVel, want)
	}
}
