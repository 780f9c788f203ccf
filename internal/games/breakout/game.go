package breakout

import (
	"time"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/games/gamekit"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

// Game implements the Breakout game logic.
type Game struct {
	cfg config.BreakoutConfig
	rt  core.RuntimeConfig

	paddle *Paddle
	ball   *Ball
	level  *Level

	score     int
	lives     int
	gameOver  bool
	won       bool
	tickCount uint64
}

// New creates a Breakout game using the resolved config.
func New() *Game {
	cfg, err := config.LoadBreakout()
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Breakout game with explicit tuning.
func NewWithConfig(cfg config.BreakoutConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Bind(registry.KindBreakout, func() registry.Game {
		return New()
	})
}

// Info returns the game metadata.
func (g *Game) Info() registry.Info {
	return registry.Info{
		Kind:  registry.KindBreakout,
		Title: "Breakout",
		Timing: registry.Timing{
			Driver: registry.DriverFixed,
			Period: time.Second / 60,
		},
		Controls: "move with mouse or arrow keys",
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt

	g.paddle = &Paddle{
		Y: rt.Height - g.cfg.Paddle.Height - g.cfg.Paddle.Bottom,
		W: g.cfg.Paddle.Width,
		H: g.cfg.Paddle.Height,
	}
	g.ball = &Ball{Radius: g.cfg.Ball.Radius}
	g.serve()
	g.level = NewLevel(g.cfg.Bricks)

	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.gameOver = false
	g.won = false
	g.tickCount = 0
}

// serve puts the ball above the paddle heading up and right, and recentres
// the paddle.
func (g *Game) serve() {
	g.ball.X = g.rt.Width / 2
	g.ball.Y = g.rt.Height - 30
	g.ball.VX = g.cfg.Ball.Speed
	g.ball.VY = -g.cfg.Ball.Speed
	g.paddle.X = (g.rt.Width - g.paddle.W) / 2
}

// Step advances the game by one tick.
func (g *Game) Step(_ core.Tick, in core.MultiInputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State(), Restart: gamekit.Restarts(in)}
	}
	g.tickCount++

	g.movePaddle(in.Player1())
	g.ball.Move()

	var events []core.Event
	switch CheckWallCollision(g.ball, g.rt.Width, g.rt.Height) {
	case CollisionTop, CollisionSides:
		events = append(events, core.EventBounce)
	case CollisionBottom:
		g.lives--
		events = append(events, core.EventExplode)
		if g.lives <= 0 {
			g.gameOver = true
			return core.StepResult{State: g.State(), Events: append(events, core.EventGameOver)}
		}
		g.serve()
	}

	if CheckPaddleCollision(g.ball, g.paddle) {
		events = append(events, core.EventBounce)
	}

	if hits := CheckBrickCollisions(g.ball, g.level); hits > 0 {
		g.score += hits * g.cfg.Gameplay.BrickScore
		events = append(events, core.EventHit)
		if g.level.CountAlive() == 0 {
			g.won = true
			g.gameOver = true
			events = append(events, core.EventWin)
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// movePaddle applies held arrows, then a pointer move, which centres the
// paddle under the cursor.
func (g *Game) movePaddle(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.paddle.X -= g.cfg.Paddle.Speed
	}
	if in.Has(core.ActionRight) {
		g.paddle.X += g.cfg.Paddle.Speed
	}
	if p := in.Pointer; p.Kind == core.PointerMove && p.X > 0 && p.X < g.rt.Width {
		g.paddle.X = p.X - g.paddle.W/2
	}
	g.paddle.X = core.ClampF(g.paddle.X, 0, g.rt.Width-g.paddle.W)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	winner := core.PlayerNone
	if g.won {
		winner = core.Player1
	}
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Winner:   winner,
		Mode:     g.rt.Mode,
	}
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}
