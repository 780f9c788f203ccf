package core

import (
	"fmt"
	"time"
)

// Logical canvas size shared by every game.
const (
	CanvasWidth  = 400.0
	CanvasHeight = 400.0
)

// Mode selects who controls the second seat.
type Mode int

const (
	// ModeDefault lets the game pick its usual mode.
	ModeDefault Mode = iota
	// ModeSolo is one human; the second seat, if any, is an AI.
	ModeSolo
	// ModeVersus is two humans sharing one keyboard.
	ModeVersus
)

func (m Mode) String() string {
	switch m {
	case ModeSolo:
		return "solo"
	case ModeVersus:
		return "versus"
	default:
		return "default"
	}
}

// ParseMode accepts "solo" (alias "ai"), "versus" (alias "2p") and an
// empty string for the game's default.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "default":
		return ModeDefault, nil
	case "solo", "ai":
		return ModeSolo, nil
	case "versus", "2p":
		return ModeVersus, nil
	}
	return ModeDefault, fmt.Errorf("unknown mode %q", s)
}

// Toggle returns the other concrete mode.
func (m Mode) Toggle() Mode {
	if m == ModeVersus {
		return ModeSolo
	}
	return ModeVersus
}

// Timers schedules deferred work that re-enters the game on a later tick.
// Callbacks run on the session's tick, never concurrently with Step, and are
// dropped if the session stops or restarts before they fire.
type Timers interface {
	After(d time.Duration, fn func())
}

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	Width  float64 // Logical canvas width in pixels
	Height float64 // Logical canvas height in pixels
	Seed   int64   // RNG seed for deterministic gameplay
	Mode   Mode
	Timers Timers
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Width:  CanvasWidth,
		Height: CanvasHeight,
		Seed:   1,
	}
}

// After schedules fn through the configured timers. Without timers the
// callback is dropped.
func (c RuntimeConfig) After(d time.Duration, fn func()) {
	if c.Timers != nil {
		c.Timers.After(d, fn)
	}
}

// Tick describes one state advance.
type Tick struct {
	Seq   uint64        // 1 for the first tick of a round
	Now   time.Duration // Session time at this tick
	Delta float64       // Elapsed time in expected frame units; 1 for fixed drivers
}

// Event is a notable thing that happened during a tick.
// Frontends turn events into sounds; games never depend on them.
type Event int

const (
	EventNone Event = iota
	EventEat
	EventBounce
	EventHit
	EventScore
	EventFlip
	EventMatch
	EventFire
	EventExplode
	EventGameOver
	EventWin
)

var eventNames = [...]string{
	EventNone:     "none",
	EventEat:      "eat",
	EventBounce:   "bounce",
	EventHit:      "hit",
	EventScore:    "score",
	EventFlip:     "flip",
	EventMatch:    "match",
	EventFire:     "fire",
	EventExplode:  "explode",
	EventGameOver: "gameover",
	EventWin:      "win",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "none"
	}
	return eventNames[e]
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int      // Player 1 score, or the only score
	Score2   int      // Player 2 or AI score
	GameOver bool     // Whether the round has ended
	Won      bool     // Whether the round ended in a win for Player 1 in solo play
	Winner   PlayerID // PlayerNone for draws and single-player rounds
	Mode     Mode
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
	// Restart asks the host to start a fresh round.
	Restart bool
}
