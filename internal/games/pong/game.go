// Package pong implements classic Pong. Player 1 controls the left paddle;
// the right paddle is the computer or, in versus mode, a second player.
package pong

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/games/gamekit"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

// Game implements the Pong game logic.
type Game struct {
	cfg config.PongConfig
	rt  core.RuntimeConfig
	rng *rand.Rand

	// Paddles, top edge
	paddle1Y float64
	paddle2Y float64

	// Ball, top-left corner of its square
	ballX  float64
	ballY  float64
	ballVX float64
	ballVY float64

	score1 int
	score2 int

	gameOver  bool
	winner    core.PlayerID
	tickCount uint64
}

// New creates a Pong game using the resolved config.
func New() *Game {
	cfg, err := config.LoadPong()
	if err != nil {
		cfg = config.DefaultPongConfig()
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Pong game with explicit tuning.
func NewWithConfig(cfg config.PongConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Bind(registry.KindPong, func() registry.Game {
		return New()
	})
}

// Info returns the game metadata.
func (g *Game) Info() registry.Info {
	return registry.Info{
		Kind:  registry.KindPong,
		Title: "Pong",
		Timing: registry.Timing{
			Driver: registry.DriverFixed,
			Period: time.Second / 60,
		},
		DefaultMode: core.ModeSolo,
		Toggle:      true,
		Controls:    "up/down move, W/S moves player 2, M toggles computer",
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.rng = gamekit.NewRand(rt.Seed)

	centre := rt.Height/2 - g.cfg.Paddle.Height/2
	g.paddle1Y = centre
	g.paddle2Y = centre

	g.ballX = rt.Width / 2
	g.ballY = rt.Height / 2
	g.ballVX = g.cfg.Ball.Speed
	g.ballVY = g.cfg.Ball.Speed

	g.score1 = 0
	g.score2 = 0
	g.gameOver = false
	g.winner = core.PlayerNone
	g.tickCount = 0
}

// Step advances the game by one tick.
func (g *Game) Step(_ core.Tick, in core.MultiInputFrame) core.StepResult {
	g.tickCount++

	if g.gameOver {
		return core.StepResult{State: g.State(), Restart: gamekit.Restarts(in)}
	}

	maxY := g.rt.Height - g.cfg.Paddle.Height
	g.paddle1Y = movePaddle(g.paddle1Y, in.Player1(), g.cfg.Paddle.Speed, maxY)

	if g.rt.Mode == core.ModeVersus {
		g.paddle2Y = movePaddle(g.paddle2Y, in.Player2(), g.cfg.Paddle.Speed, maxY)
	} else {
		g.updateCPU()
	}
	g.paddle2Y = core.ClampF(g.paddle2Y, 0, maxY)

	events := g.updateBall()

	if g.score1 >= g.cfg.Gameplay.WinScore || g.score2 >= g.cfg.Gameplay.WinScore {
		g.gameOver = true
		g.winner = core.Player1
		if g.score2 > g.score1 {
			g.winner = core.Player2
		}
		events = append(events, core.EventGameOver)
	}

	return core.StepResult{State: g.State(), Events: events}
}

func movePaddle(y float64, in core.InputFrame, speed, maxY float64) float64 {
	if in.Has(core.ActionUp) {
		y = max(0, y-speed)
	}
	if in.Has(core.ActionDown) {
		y = min(maxY, y+speed)
	}
	return y
}

// updateCPU follows the ball, holding still inside the margin.
func (g *Game) updateCPU() {
	centre := g.paddle2Y + g.cfg.Paddle.Height/2
	switch {
	case centre < g.ballY-g.cfg.AI.Margin:
		g.paddle2Y += g.cfg.AI.Speed
	case centre > g.ballY+g.cfg.AI.Margin:
		g.paddle2Y -= g.cfg.AI.Speed
	}
}

// updateBall moves the ball and resolves walls, paddles and scoring.
func (g *Game) updateBall() []core.Event {
	var events []core.Event
	size := g.cfg.Ball.Size
	pw, ph := g.cfg.Paddle.Width, g.cfg.Paddle.Height

	g.ballX += g.ballVX
	g.ballY += g.ballVY

	// Walls only flip direction; speed is untouched.
	if (g.ballY <= 0 && g.ballVY < 0) || (g.ballY >= g.rt.Height-size && g.ballVY > 0) {
		g.ballVY = -g.ballVY
		events = append(events, core.EventBounce)
	}

	overlaps := func(paddleY float64) bool {
		return g.ballY+size >= paddleY && g.ballY <= paddleY+ph
	}
	if g.ballVX < 0 && g.ballX <= pw && overlaps(g.paddle1Y) {
		g.paddleHit()
		events = append(events, core.EventHit)
	}
	if g.ballVX > 0 && g.ballX >= g.rt.Width-pw-size && overlaps(g.paddle2Y) {
		g.paddleHit()
		events = append(events, core.EventHit)
	}

	switch {
	case g.ballX < 0:
		g.score2++
		g.serve()
		events = append(events, core.EventScore)
	case g.ballX > g.rt.Width:
		g.score1++
		g.serve()
		events = append(events, core.EventScore)
	}
	return events
}

// paddleHit reflects the ball and speeds it up. The growth compounds with
// every contact and has no ceiling.
func (g *Game) paddleHit() {
	g.ballVX = -g.ballVX
	g.ballVX *= g.cfg.Ball.SpeedUp
	g.ballVY *= g.cfg.Ball.SpeedUp
}

// serve recentres the ball at base speed. Horizontal direction is kept;
// vertical direction is random.
func (g *Game) serve() {
	speed := g.cfg.Ball.Speed
	g.ballX = g.rt.Width / 2
	g.ballY = g.rt.Height / 2
	if g.ballVX > 0 {
		g.ballVX = speed
	} else {
		g.ballVX = -speed
	}
	if g.rng.Float64() > 0.5 {
		g.ballVY = speed
	} else {
		g.ballVY = -speed
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score1,
		Score2:   g.score2,
		GameOver: g.gameOver,
		Won:      g.gameOver && g.winner == core.Player1,
		Winner:   g.winner,
		Mode:     g.rt.Mode,
	}
}
