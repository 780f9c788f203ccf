package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

// KeyAction is what the frontend does with a key before the game sees it.
type KeyAction int

const (
	KeyGame KeyAction = iota // Forward to the session
	KeyQuit
	KeyBack
)

// KeyMapper translates Bubble Tea messages to frontend actions and
// session input. Game bindings themselves live in core.KeyMap.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey classifies a key press. For KeyGame the returned name is the
// normalized key for session.Pulse.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (KeyAction, string) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return KeyQuit, ""
	case "esc", "b":
		return KeyBack, ""
	}
	return KeyGame, core.NormalizeKey(key)
}

// MapMouse converts a terminal mouse event into a pointer event in canvas
// coordinates. Cells map to the logical pixel at their centre. Returns
// false for events games do not care about.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, cols, rows int) (core.PointerKind, float64, float64, bool) {
	if cols <= 0 || rows <= 0 || msg.X < 0 || msg.Y < 0 || msg.X >= cols || msg.Y >= rows {
		return core.PointerNone, 0, 0, false
	}

	var kind core.PointerKind
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		kind = core.PointerClick
	case msg.Action == tea.MouseActionMotion:
		kind = core.PointerMove
	default:
		return core.PointerNone, 0, 0, false
	}

	x := (float64(msg.X) + 0.5) * core.CanvasWidth / float64(cols)
	y := (float64(msg.Y) + 0.5) * core.CanvasHeight / float64(rows)
	return kind, x, y, true
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
