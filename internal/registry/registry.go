// Package registry binds the closed set of arcade games to their constructors.
// Game packages bind themselves in init() functions, allowing the platform
// to instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

// Kind identifies one of the arcade games. The set is closed.
type Kind int

const (
	KindUnknown Kind = iota
	KindSnake
	KindPong
	KindMemory
	KindTicTacToe
	KindFlappy
	Kind2048
	KindBreakout
	KindSpaceRace
	KindJetFighter
)

var kindIDs = [...]string{
	KindUnknown:    "",
	KindSnake:      "snake",
	KindPong:       "pong",
	KindMemory:     "memory",
	KindTicTacToe:  "tictactoe",
	KindFlappy:     "flappy",
	Kind2048:       "2048",
	KindBreakout:   "breakout",
	KindSpaceRace:  "spacerace",
	KindJetFighter: "jetfighter",
}

// ErrUnknownKind is returned for names and kinds outside the arcade.
var ErrUnknownKind = errors.New("registry: unknown game")

// String returns the stable identifier used by the CLI and score storage.
func (k Kind) String() string {
	if k > KindUnknown && int(k) < len(kindIDs) {
		return kindIDs[k]
	}
	return "unknown"
}

// Valid reports whether k names an arcade game.
func (k Kind) Valid() bool {
	return k > KindUnknown && int(k) < len(kindIDs)
}

// Kinds returns every game kind in menu order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindIDs)-1)
	for k := KindSnake; int(k) < len(kindIDs); k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind resolves a game identifier such as "snake" or "2048".
func ParseKind(id string) (Kind, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for k := KindSnake; int(k) < len(kindIDs); k++ {
		if kindIDs[k] == id {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("%w %q", ErrUnknownKind, id)
}

// DriverKind selects how a game's loop is clocked.
type DriverKind int

const (
	// DriverFixed advances one fixed step per timer fire.
	DriverFixed DriverKind = iota
	// DriverDelta scales movement by the real time elapsed between frames.
	DriverDelta
)

// Timing describes how often a game is ticked.
type Timing struct {
	Driver DriverKind
	// Period is the timer interval between ticks.
	Period time.Duration
	// Expected is the nominal frame duration delta-time games scale against.
	Expected time.Duration
}

// Info is static metadata about a game.
type Info struct {
	Kind   Kind
	Title  string
	Timing Timing
	// DefaultMode is used when the player did not pick a mode.
	DefaultMode core.Mode
	// Toggle reports whether the game offers a one/two player switch.
	Toggle bool
	// Controls is a one-line key legend shown by frontends.
	Controls string
}

// Game is the contract every arcade game implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The session handles timing, input capture and rendering targets.
type Game interface {
	// Info returns static metadata.
	Info() Info

	// Reset initializes the game state for a new round.
	// Called on start and on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(t core.Tick, in core.MultiInputFrame) core.StepResult

	// Render draws the full frame. It must not mutate game state.
	Render(dst core.Canvas)

	// State returns the current game state.
	State() core.GameState
}

// Constructor creates a new game instance.
type Constructor func() Game

var (
	constructors = make(map[Kind]Constructor)
	infos        = make(map[Kind]Info)
	mu           sync.RWMutex
)

// Bind registers the constructor for a kind.
// Typically called from a game's init() function.
// Panics if the kind is invalid or already bound.
func Bind(kind Kind, ctor Constructor) {
	mu.Lock()
	defer mu.Unlock()

	if !kind.Valid() {
		panic(fmt.Sprintf("registry: cannot bind invalid kind %d", kind))
	}
	if _, exists := constructors[kind]; exists {
		panic(fmt.Sprintf("registry: game %q already bound", kind))
	}

	constructors[kind] = ctor
	infos[kind] = ctor().Info()
}

// New instantiates a game by kind.
func New(kind Kind) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	ctor, ok := constructors[kind]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
	return ctor(), nil
}

// Lookup returns the metadata of a bound game.
func Lookup(kind Kind) (Info, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[kind]
	return info, ok
}

// List returns metadata for every bound game, in menu order.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Kind < result[j].Kind
	})
	return result
}
