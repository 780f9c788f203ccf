package core

import (
	"math"
	"strings"
)

// SwipeThreshold is the minimum travel in logical pixels for a touch swipe
// to count as a direction.
const SwipeThreshold = 50.0

// Binding ties a key to an action for one player seat.
type Binding struct {
	Player PlayerID
	Action Action
}

// KeyMap maps normalized key names to bindings.
type KeyMap map[string]Binding

// DefaultKeyMap returns the arcade bindings: arrows and space for Player1,
// WASD and F for Player2.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		"up":    {Player1, ActionUp},
		"down":  {Player1, ActionDown},
		"left":  {Player1, ActionLeft},
		"right": {Player1, ActionRight},
		" ":     {Player1, ActionFire},
		"enter": {Player1, ActionConfirm},
		"r":     {Player1, ActionRestart},
		"m":     {Player1, ActionToggleMode},
		"w":     {Player2, ActionUp},
		"s":     {Player2, ActionDown},
		"a":     {Player2, ActionLeft},
		"d":     {Player2, ActionRight},
		"f":     {Player2, ActionFire},
	}
}

// NormalizeKey folds browser and terminal key names into one vocabulary.
func NormalizeKey(key string) string {
	switch key {
	case "ArrowUp":
		return "up"
	case "ArrowDown":
		return "down"
	case "ArrowLeft":
		return "left"
	case "ArrowRight":
		return "right"
	case "Space", "space", "Spacebar":
		return " "
	case "Enter", "Return":
		return "enter"
	case "Escape":
		return "esc"
	}
	if len([]rune(key)) == 1 {
		return strings.ToLower(key)
	}
	return key
}

// Capture turns raw key, pointer and touch events into per-tick input frames.
//
// Every key-down yields one press edge, delivered in the next frame even
// when the key is released before it. Browser transports report key down
// and key up, so keys are also held as levels until released; repeated
// downs of a held key add no edge. Terminals only report presses, so those
// keys are pulsed: one edge, plus a level that lasts for the latch window
// when the action is a movement.
//
// A detached capture drops every event and yields empty frames. Capture is
// not safe for concurrent use; the owning session serializes access.
type Capture struct {
	keys     KeyMap
	attached bool
	held     map[string]bool
	edges    map[string]bool
	pulses   map[string]int
	latch    int
	pointer  Pointer
	swipe    Action
}

// NewCapture creates a detached capture using the given bindings.
func NewCapture(keys KeyMap) *Capture {
	if keys == nil {
		keys = DefaultKeyMap()
	}
	return &Capture{
		keys:   keys,
		held:   make(map[string]bool),
		edges:  make(map[string]bool),
		pulses: make(map[string]int),
		latch:  1,
	}
}

// SetLatch sets how many frames the level of a pulsed movement key stays
// active. The press edge is still delivered once.
func (c *Capture) SetLatch(frames int) {
	c.latch = max(frames, 1)
}

// Attach starts accepting events.
func (c *Capture) Attach() {
	c.attached = true
}

// Detach stops accepting events and forgets everything pending.
func (c *Capture) Detach() {
	c.attached = false
	clear(c.held)
	clear(c.edges)
	clear(c.pulses)
	c.pointer = Pointer{}
	c.swipe = ActionNone
}

// Attached reports whether the capture accepts events.
func (c *Capture) Attached() bool {
	return c.attached
}

// Consumes reports whether the key is bound, meaning the frontend should
// suppress its default behaviour (scrolling, menu navigation).
func (c *Capture) Consumes(key string) bool {
	_, ok := c.keys[NormalizeKey(key)]
	return ok
}

// Press records a key going down. Returns whether the key is consumed.
func (c *Capture) Press(key string) bool {
	key = NormalizeKey(key)
	if !c.attached || !c.Consumes(key) {
		return false
	}
	if !c.held[key] {
		c.edges[key] = true
	}
	c.held[key] = true
	return true
}

// Release records a key going up.
func (c *Capture) Release(key string) {
	delete(c.held, NormalizeKey(key))
}

// Pulse records a press without a matching release.
func (c *Capture) Pulse(key string) bool {
	key = NormalizeKey(key)
	if !c.attached {
		return false
	}
	b, ok := c.keys[key]
	if !ok {
		return false
	}
	c.edges[key] = true
	if isMovement(b.Action) && c.latch > 1 {
		c.pulses[key] = c.latch - 1
	}
	return true
}

// Point records a pointer event. Later events in the same frame win, except
// that a move never overwrites a pending click.
func (c *Capture) Point(kind PointerKind, x, y float64) {
	if !c.attached {
		return
	}
	if kind == PointerMove && c.pointer.Kind == PointerClick {
		return
	}
	c.pointer = Pointer{Kind: kind, X: x, Y: y}
}

// Swipe records a touch gesture. Gestures shorter than SwipeThreshold on
// both axes are ignored.
func (c *Capture) Swipe(dx, dy float64) {
	if !c.attached {
		return
	}
	if dir := SwipeDirection(dx, dy); dir != ActionNone {
		c.swipe = dir
	}
}

// SwipeDirection classifies a gesture by its dominant axis.
func SwipeDirection(dx, dy float64) Action {
	if math.Abs(dx) > math.Abs(dy) {
		switch {
		case dx >= SwipeThreshold:
			return ActionRight
		case dx <= -SwipeThreshold:
			return ActionLeft
		}
		return ActionNone
	}
	switch {
	case dy >= SwipeThreshold:
		return ActionDown
	case dy <= -SwipeThreshold:
		return ActionUp
	}
	return ActionNone
}

// Frame returns the input for the coming tick and consumes one-shot events.
func (c *Capture) Frame() MultiInputFrame {
	p1, p2 := NewInputFrame(), NewInputFrame()
	if c.attached {
		frame := func(key string) *InputFrame {
			if c.keys[key].Player == Player2 {
				return &p2
			}
			return &p1
		}
		for key, left := range c.pulses {
			// The latch counts the frames after the press.
			if c.edges[key] {
				continue
			}
			frame(key).Set(c.keys[key].Action)
			if left <= 1 {
				delete(c.pulses, key)
			} else {
				c.pulses[key] = left - 1
			}
		}
		for key := range c.held {
			frame(key).Set(c.keys[key].Action)
		}
		for key := range c.edges {
			frame(key).Press(c.keys[key].Action)
		}
		if c.swipe != ActionNone {
			p1.Press(c.swipe)
		}
		p1.Pointer = c.pointer
	}
	clear(c.edges)
	c.pointer = Pointer{}
	c.swipe = ActionNone

	m := NewMultiInputFrame()
	m.SetPlayer(Player1, p1)
	m.SetPlayer(Player2, p2)
	return m
}

func isMovement(a Action) bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	}
	return false
}
