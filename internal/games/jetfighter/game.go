// Package jetfighter implements Jet Fighter: two jets fly on a wrapping
// field and shoot missiles at each other. Motion is delta-time driven so
// flight speed does not depend on the tick rate.
package jetfighter

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/games/gamekit"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

const (
	// noseOffset is how far ahead of the jet a missile appears.
	noseOffset = 15

	aiTurnFactor  = 0.7
	aiMaxSpeed    = 2.5
	aiBrake       = 0.97
	aiChaseRange  = 100
	aiAimWindow   = 0.3
	aiAimDeadband = 0.1
	aiFireChance  = 0.01
)

// Missile is a projectile owned by one jet.
type Missile struct {
	X, Y  float64
	Angle float64
	Speed float64
}

// Jet is one player's aircraft.
type Jet struct {
	X, Y     float64
	Angle    float64
	Speed    float64
	Alive    bool
	Score    int
	Missiles []Missile

	startX, startY, startAngle float64
}

func (j *Jet) respawn() {
	j.X, j.Y, j.Angle = j.startX, j.startY, j.startAngle
	j.Speed = 0
	j.Alive = true
	j.Missiles = j.Missiles[:0]
}

// Game implements Jet Fighter.
type Game struct {
	cfg  config.JetFighterConfig
	rt   core.RuntimeConfig
	rng  *rand.Rand
	tick uint64

	jets       [2]Jet
	stars      gamekit.Starfield
	respawning bool

	gameOver bool
	winner   core.PlayerID
}

// New creates a Jet Fighter game using the resolved config.
func New() *Game {
	cfg, err := config.LoadJetFighter()
	if err != nil {
		cfg = config.DefaultJetFighterConfig()
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Jet Fighter game with explicit tuning.
func NewWithConfig(cfg config.JetFighterConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Bind(registry.KindJetFighter, func() registry.Game {
		return New()
	})
}

// Info returns the game metadata.
func (g *Game) Info() registry.Info {
	return registry.Info{
		Kind:  registry.KindJetFighter,
		Title: "Jet Fighter",
		Timing: registry.Timing{
			Driver:   registry.DriverDelta,
			Period:   time.Second / 60,
			Expected: time.Second / 60,
		},
		DefaultMode: core.ModeSolo,
		Toggle:      true,
		Controls:    "arrows fly, space fires, WASD+F for player 2, M toggles computer",
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.rng = gamekit.NewRand(rt.Seed)
	g.tick = 0

	m := g.cfg.Jet.Margin
	g.jets = [2]Jet{
		{startX: m, startY: rt.Height / 2, startAngle: 0},
		{startX: rt.Width - m, startY: rt.Height / 2, startAngle: math.Pi},
	}
	for i := range g.jets {
		g.jets[i].respawn()
	}

	g.stars = gamekit.NewStarfield(g.rng, 50, rt.Width, rt.Height)
	g.respawning = false
	g.gameOver = false
	g.winner = core.PlayerNone
}

// Step advances the game by tick.Delta expected frames.
func (g *Game) Step(tick core.Tick, in core.MultiInputFrame) core.StepResult {
	g.tick++

	if g.gameOver {
		return core.StepResult{State: g.State(), Restart: gamekit.Restarts(in)}
	}

	dt := tick.Delta
	if dt <= 0 {
		dt = 1
	}

	var events []core.Event
	if g.pilot(&g.jets[0], in.Player1(), dt) {
		events = append(events, core.EventFire)
	}
	if g.rt.Mode == core.ModeVersus {
		if g.pilot(&g.jets[1], in.Player2(), dt) {
			events = append(events, core.EventFire)
		}
	} else if g.autopilot(&g.jets[1], &g.jets[0], dt) {
		events = append(events, core.EventFire)
	}

	for i := range g.jets {
		g.fly(&g.jets[i], dt)
	}

	for i := range g.jets {
		if g.moveMissiles(&g.jets[i], &g.jets[1-i], dt) {
			events = append(events, core.EventExplode)
		}
	}

	win := g.cfg.Gameplay.WinScore
	if s1, s2 := g.jets[0].Score, g.jets[1].Score; s1 >= win || s2 >= win {
		g.gameOver = true
		switch {
		case s1 > s2:
			g.winner = core.Player1
		case s2 > s1:
			g.winner = core.Player2
		}
		events = append(events, core.EventGameOver)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// pilot applies one player's controls and reports whether a missile was
// launched.
func (g *Game) pilot(j *Jet, in core.InputFrame, dt float64) bool {
	if !j.Alive {
		return false
	}
	c := g.cfg.Jet

	if in.Has(core.ActionLeft) {
		j.Angle -= c.Rotation * dt
	}
	if in.Has(core.ActionRight) {
		j.Angle += c.Rotation * dt
	}
	switch {
	case in.Has(core.ActionUp):
		j.Speed = math.Min(j.Speed+c.Acceleration*dt, c.MaxSpeed)
	case in.Has(core.ActionDown):
		j.Speed = math.Max(j.Speed-c.Acceleration*dt, c.MinSpeed)
	default:
		j.Speed *= c.Drag // once per tick, not scaled by dt
	}

	return in.Pressed(core.ActionFire) && g.fire(j)
}

// autopilot steers the computer jet toward its target.
func (g *Game) autopilot(j, target *Jet, dt float64) bool {
	if !j.Alive || !target.Alive {
		return false
	}
	c := g.cfg.Jet

	dx, dy := target.X-j.X, target.Y-j.Y
	diff := normalizeAngle(math.Atan2(dy, dx) - j.Angle)

	if math.Abs(diff) > aiAimDeadband {
		turn := c.Rotation * dt * aiTurnFactor
		if diff > 0 {
			j.Angle += turn
		} else {
			j.Angle -= turn
		}
	}

	if math.Hypot(dx, dy) > aiChaseRange {
		j.Speed = math.Min(j.Speed+c.Acceleration*dt*aiTurnFactor, aiMaxSpeed)
	} else {
		j.Speed *= aiBrake
	}

	if g.rng.Float64() < aiFireChance*dt && math.Abs(diff) < aiAimWindow {
		return g.fire(j)
	}
	return false
}

func (g *Game) fire(j *Jet) bool {
	if !j.Alive || len(j.Missiles) >= g.cfg.Missile.Max {
		return false
	}
	sin, cos := math.Sincos(j.Angle)
	j.Missiles = append(j.Missiles, Missile{
		X:     j.X + cos*noseOffset,
		Y:     j.Y + sin*noseOffset,
		Angle: j.Angle,
		Speed: g.cfg.Missile.Speed + j.Speed,
	})
	return true
}

// fly moves a jet and wraps it across the field edges.
func (g *Game) fly(j *Jet, dt float64) {
	if !j.Alive {
		return
	}
	sin, cos := math.Sincos(j.Angle)
	j.X = core.Wrap(j.X+cos*j.Speed*dt, g.rt.Width)
	j.Y = core.Wrap(j.Y+sin*j.Speed*dt, g.rt.Height)
}

// moveMissiles advances the shooter's missiles, drops those that leave the
// field and resolves hits on the opponent.
func (g *Game) moveMissiles(shooter, target *Jet, dt float64) bool {
	hit := false
	kept := shooter.Missiles[:0]
	for _, m := range shooter.Missiles {
		sin, cos := math.Sincos(m.Angle)
		m.X += cos * m.Speed * dt
		m.Y += sin * m.Speed * dt

		if m.X < 0 || m.X > g.rt.Width || m.Y < 0 || m.Y > g.rt.Height {
			continue
		}
		if target.Alive && core.Dist(m.X, m.Y, target.X, target.Y) < g.cfg.Missile.HitRadius {
			target.Alive = false
			shooter.Score++
			hit = true
			g.scheduleRespawn()
			continue
		}
		kept = append(kept, m)
	}
	shooter.Missiles = kept
	return hit
}

func (g *Game) scheduleRespawn() {
	if g.respawning {
		return
	}
	g.respawning = true
	g.rt.After(time.Duration(g.cfg.Gameplay.RespawnMS)*time.Millisecond, g.respawn)
}

// respawn puts both jets back at their start positions.
func (g *Game) respawn() {
	g.respawning = false
	if g.gameOver {
		return
	}
	for i := range g.jets {
		g.jets[i].respawn()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.jets[0].Score,
		Score2:   g.jets[1].Score,
		GameOver: g.gameOver,
		Won:      g.winner == core.Player1,
		Winner:   g.winner,
		Mode:     g.rt.Mode,
	}
}

// normalizeAngle maps a into [-Pi, Pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
