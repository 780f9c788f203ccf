package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // Up arrow / W
	ActionDown              // Down arrow / S
	ActionLeft              // Left arrow / A
	ActionRight             // Right arrow / D
	ActionFire              // Space - flap, flip, shoot
	ActionConfirm           // Enter - place a mark, flip a tile
	ActionRestart           // R - restart after game over
	ActionToggleMode        // M - switch between one and two players
	ActionBack              // Esc - leave the game
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionToggleMode:
		return "ToggleMode"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PlayerID identifies a local player seat.
type PlayerID int

const (
	PlayerNone PlayerID = iota
	Player1
	Player2
)

// PointerKind distinguishes clicks from plain movement.
type PointerKind int

const (
	PointerNone PointerKind = iota
	PointerClick
	PointerMove
)

// Pointer is the last pointer event of a frame, in logical canvas pixels.
type Pointer struct {
	Kind PointerKind
	X, Y float64
}

// InputFrame represents the input state for a single player during one simulation tick.
//
// Actions holds levels: keys that are down (or latched) this frame.
// Edges holds the actions whose key went down since the previous frame.
// Continuous movers read levels with Has; discrete moves read Pressed so
// that one keypress is one move.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
	// Edges maps action types to whether they were pressed this frame.
	Edges map[Action]bool
	// Pointer holds the last click or move since the previous frame.
	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Edges:   make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Press marks an action as newly pressed. A pressed action is also active.
func (f *InputFrame) Press(a Action) {
	if f.Edges == nil {
		f.Edges = make(map[Action]bool)
	}
	f.Edges[a] = true
	f.Set(a)
}

// Pressed returns true if the action's key went down this frame.
func (f InputFrame) Pressed(a Action) bool {
	return f.Edges[a]
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clicked returns the click position, if the frame has one.
func (f InputFrame) Clicked() (x, y float64, ok bool) {
	if f.Pointer.Kind != PointerClick {
		return 0, 0, false
	}
	return f.Pointer.X, f.Pointer.Y, true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Edges)
	f.Pointer = Pointer{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Edges {
		clone.Edges[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}

// MultiInputFrame contains input from all local players for a single tick.
// Pointer input always belongs to Player1.
type MultiInputFrame struct {
	ByPlayer map[PlayerID]InputFrame
}

// NewMultiInputFrame creates an empty multi-input frame.
func NewMultiInputFrame() MultiInputFrame {
	return MultiInputFrame{
		ByPlayer: make(map[PlayerID]InputFrame),
	}
}

// Player returns the input frame for a specific player.
// Returns an empty frame if the player has no input.
func (m MultiInputFrame) Player(id PlayerID) InputFrame {
	if frame, ok := m.ByPlayer[id]; ok {
		return frame
	}
	return NewInputFrame()
}

// SetPlayer sets the input frame for a specific player.
func (m *MultiInputFrame) SetPlayer(id PlayerID, frame InputFrame) {
	if m.ByPlayer == nil {
		m.ByPlayer = make(map[PlayerID]InputFrame)
	}
	m.ByPlayer[id] = frame
}

// Player1 returns the input frame for Player 1.
func (m MultiInputFrame) Player1() InputFrame {
	return m.Player(Player1)
}

// Player2 returns the input frame for Player 2.
func (m MultiInputFrame) Player2() InputFrame {
	return m.Player(Player2)
}

// Any reports whether any player has the action active.
// Single-player games use it so both key clusters steer the same entity.
func (m MultiInputFrame) Any(a Action) bool {
	for _, f := range m.ByPlayer {
		if f.Has(a) {
			return true
		}
	}
	return false
}

// AnyPressed reports whether any player pressed the action this frame.
func (m MultiInputFrame) AnyPressed(a Action) bool {
	for _, f := range m.ByPlayer {
		if f.Pressed(a) {
			return true
		}
	}
	return false
}

// Clear resets all player inputs for the next frame.
func (m *MultiInputFrame) Clear() {
	for id := range m.ByPlayer {
		frame := m.ByPlayer[id]
		frame.Clear()
		m.ByPlayer[id] = frame
	}
}

// Clone creates a deep copy of this multi-input frame.
func (m MultiInputFrame) Clone() MultiInputFrame {
	clone := NewMultiInputFrame()
	for id, frame := range m.ByPlayer {
		clone.ByPlayer[id] = frame.Clone()
	}
	return clone
}

// Frames builds a MultiInputFrame for tests and bots: p1 and p2 actions,
// each freshly pressed.
func Frames(p1 []Action, p2 []Action) MultiInputFrame {
	m := NewMultiInputFrame()
	f1, f2 := NewInputFrame(), NewInputFrame()
	for _, a := range p1 {
		f1.Press(a)
	}
	for _, a := range p2 {
		f2.Press(a)
	}
	m.SetPlayer(Player1, f1)
	m.SetPlayer(Player2, f2)
	return m
}

// Held builds a frame where p1 actions are down but not newly pressed,
// as on the ticks after a key went down.
func Held(p1 ...Action) MultiInputFrame {
	m := NewMultiInputFrame()
	f := NewInputFrame()
	for _, a := range p1 {
		f.Set(a)
	}
	m.SetPlayer(Player1, f)
	return m
}

// Click builds a frame holding a single Player1 click.
func Click(x, y float64) MultiInputFrame {
	m := NewMultiInputFrame()
	f := NewInputFrame()
	f.Pointer = Pointer{Kind: PointerClick, X: x, Y: y}
	m.SetPlayer(Player1, f)
	return m
}
