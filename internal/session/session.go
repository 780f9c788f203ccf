// Package session runs arcade games: it owns one game instance, its tick
// driver, its deferred-event queue and its input capture, and guarantees
// that nothing touches the game after Stop.
package session

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

var (
	// ErrStopped is returned when driving a session that is not running.
	ErrStopped = errors.New("session: not running")
	// ErrNoSession is returned by a Host with no game selected.
	ErrNoSession = errors.New("session: no game selected")
)

// Result describes a finished round.
type Result struct {
	SessionID string
	Kind      registry.Kind
	Mode      core.Mode
	State     core.GameState
	Digest    uint64
	Ticks     uint64
}

// Hooks are optional callbacks invoked from inside Tick while the session
// lock is held. They must not call back into the session.
type Hooks struct {
	// OnFrame runs after every full redraw.
	OnFrame func(s *Session, c core.Canvas)
	// OnEvents receives the events of a tick.
	OnEvents func(kind registry.Kind, events []core.Event)
	// OnGameOver runs once per round when it ends.
	OnGameOver func(r Result)
}

// Options configures new sessions.
type Options struct {
	// Seed for the first round; 0 picks one from the clock.
	Seed int64
	// Mode overrides the game's default mode.
	Mode core.Mode
	// Canvas receives every frame; defaults to a DrawList.
	Canvas core.Canvas
	// KeyMap overrides the default bindings.
	KeyMap core.KeyMap
	// PulseHold keeps pulsed movement keys active for this long, for
	// frontends that cannot report key releases.
	PulseHold time.Duration
	Hooks     Hooks
	Logger    *log.Logger
}

// digester is implemented by games that can fingerprint their state.
type digester interface {
	Digest() uint64
}

// Session is one running game.
type Session struct {
	mu sync.Mutex

	id      string
	info    registry.Info
	game    registry.Game
	driver  Driver
	sched   *Scheduler
	capture *core.Capture
	canvas  core.Canvas
	hooks   Hooks
	logger  *log.Logger

	cfg      core.RuntimeConfig
	baseSeed int64
	running  bool
	state    core.GameState
	reported bool
	ticks    uint64
	rounds   int64
	done     chan struct{}
}

// New creates a stopped session for the given game kind.
func New(kind registry.Kind, opts Options) (*Session, error) {
	game, err := registry.New(kind)
	if err != nil {
		return nil, err
	}
	return NewWithGame(game, opts), nil
}

// NewWithGame wraps an existing game instance in a stopped session.
func NewWithGame(game registry.Game, opts Options) *Session {
	info := game.Info()

	canvas := opts.Canvas
	if canvas == nil {
		canvas = core.NewDrawList(core.CanvasWidth, core.CanvasHeight)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	mode := opts.Mode
	if mode == core.ModeDefault {
		mode = info.DefaultMode
	}

	w, h := canvas.Size()
	s := &Session{
		id:       uuid.NewString(),
		info:     info,
		game:     game,
		driver:   NewDriver(info.Timing),
		sched:    NewScheduler(),
		capture:  core.NewCapture(opts.KeyMap),
		canvas:   canvas,
		hooks:    opts.Hooks,
		logger:   logger,
		baseSeed: seed,
		cfg: core.RuntimeConfig{
			Width:  w,
			Height: h,
			Mode:   mode,
		},
	}
	s.cfg.Timers = s.sched

	if opts.PulseHold > 0 {
		frames := int(math.Ceil(float64(opts.PulseHold) / float64(s.driver.Period())))
		s.capture.SetLatch(frames)
	}
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Info returns the metadata of the running game.
func (s *Session) Info() registry.Info {
	return s.info
}

// Kind returns the game kind.
func (s *Session) Kind() registry.Kind {
	return s.info.Kind
}

// Period returns the interval at which the session wants to be ticked.
func (s *Session) Period() time.Duration {
	return s.driver.Period()
}

// Start attaches input, resets the game and arms the driver.
// Starting a running session does nothing.
func (s *Session) Start(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true
	s.done = make(chan struct{})
	s.capture.Attach()
	s.beginRoundLocked(now)
	s.drawLocked()

	s.logger.Debug("session started",
		"id", s.id,
		"game", s.info.Kind,
		"mode", s.cfg.Mode,
		"seed", s.cfg.Seed,
	)
}

// Stop detaches input, invalidates all deferred events and halts ticking.
// After Stop returns, Tick is a no-op. Stop is idempotent.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false
	s.sched.Invalidate()
	s.sched.Clear()
	s.capture.Detach()
	close(s.done)

	s.logger.Debug("session stopped", "id", s.id, "game", s.info.Kind, "ticks", s.ticks)
}

// Running reports whether the session accepts ticks.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Tick performs exactly one state advance followed by a full redraw.
// Returns false, touching nothing, when the session is not running.
func (s *Session) Tick(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return false
	}

	t := s.driver.Next(now)
	s.sched.RunDue(t.Now)
	in := s.capture.Frame()

	if s.info.Toggle && in.Player1().Pressed(core.ActionToggleMode) {
		s.cfg.Mode = s.cfg.Mode.Toggle()
		s.beginRoundLocked(now)
		s.drawLocked()
		return true
	}

	res := s.game.Step(t, in)
	s.ticks++
	s.state = res.State

	if len(res.Events) > 0 && s.hooks.OnEvents != nil {
		s.hooks.OnEvents(s.info.Kind, res.Events)
	}
	if res.State.GameOver && !s.reported {
		s.reported = true
		s.reportLocked()
	}
	if res.Restart {
		s.beginRoundLocked(now)
	}

	s.drawLocked()
	return true
}

// Restart begins a fresh round. Deferred events of the old round are dropped.
func (s *Session) Restart(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return ErrStopped
	}
	s.beginRoundLocked(now)
	s.drawLocked()
	return nil
}

// Run ticks the session from a wall-clock ticker until ctx is cancelled or
// the session stops. Each timer fire is exactly one Tick.
func (s *Session) Run(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return ErrStopped
	}
	done := s.done
	period := s.driver.Period()
	s.mu.Unlock()

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-done:
			return nil
		case now := <-ticker.C:
			s.Tick(now)
		}
	}
}

// Render draws the current state into dst without advancing anything.
func (s *Session) Render(dst core.Canvas) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dst.Clear(core.ColorBlack)
	s.game.Render(dst)
}

// State returns the game state after the last tick.
func (s *Session) State() core.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Mode returns the active player mode.
func (s *Session) Mode() core.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Mode
}

// Generation returns the deferred-event generation of the current round.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched.Generation()
}

// Pending returns the number of queued deferred events.
func (s *Session) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched.Len()
}

// Digest fingerprints the game state, or returns 0 if the game cannot.
func (s *Session) Digest() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.digestLocked()
}

// Press forwards a key-down to the input capture.
func (s *Session) Press(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.capture.Press(key)
}

// Release forwards a key-up to the input capture.
func (s *Session) Release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.capture.Release(key)
}

// Pulse forwards a key press without release to the input capture.
func (s *Session) Pulse(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.capture.Pulse(key)
}

// Consumes reports whether a key is bound for this session.
func (s *Session) Consumes(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.capture.Attached() && s.capture.Consumes(key)
}

// Point forwards a pointer event in canvas coordinates.
func (s *Session) Point(kind core.PointerKind, x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.capture.Point(kind, x, y)
}

// Swipe forwards a touch gesture.
func (s *Session) Swipe(dx, dy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.capture.Swipe(dx, dy)
}

func (s *Session) beginRoundLocked(now time.Time) {
	s.sched.Invalidate()
	s.sched.Clear()
	s.driver.Reset(now)
	s.reported = false
	s.cfg.Seed = s.baseSeed + s.rounds
	s.rounds++
	s.game.Reset(s.cfg)
	s.state = s.game.State()
}

func (s *Session) drawLocked() {
	s.canvas.Clear(core.ColorBlack)
	s.game.Render(s.canvas)
	if s.hooks.OnFrame != nil {
		s.hooks.OnFrame(s, s.canvas)
	}
}

func (s *Session) digestLocked() uint64 {
	if d, ok := s.game.(digester); ok {
		return d.Digest()
	}
	return 0
}

func (s *Session) reportLocked() {
	r := Result{
		SessionID: s.id,
		Kind:      s.info.Kind,
		Mode:      s.cfg.Mode,
		State:     s.state,
		Digest:    s.digestLocked(),
		Ticks:     s.ticks,
	}
	s.logger.Info("game over",
		"game", r.Kind,
		"score", r.State.Score,
		"score2", r.State.Score2,
		"winner", r.State.Winner,
		"digest", fmt.Sprintf("%016x", r.Digest),
	)
	if s.hooks.OnGameOver != nil {
		s.hooks.OnGameOver(r)
	}
}
