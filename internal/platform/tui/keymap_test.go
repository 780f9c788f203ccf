package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name       string
		msg        tea.KeyMsg
		wantAction KeyAction
		wantKey    string
	}{
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, KeyQuit, ""},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, KeyQuit, ""},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, KeyBack, ""},
		{"arrow is forwarded", tea.KeyMsg{Type: tea.KeyUp}, KeyGame, "up"},
		{"letter is forwarded", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'W'}}, KeyGame, "w"},
		{"enter is forwarded", tea.KeyMsg{Type: tea.KeyEnter}, KeyGame, "enter"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, key := km.MapKey(tc.msg)
			if action != tc.wantAction || key != tc.wantKey {
				t.Errorf("MapKey(%q) = (%v, %q), expected (%v, %q)",
					tc.msg.String(), action, key, tc.wantAction, tc.wantKey)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()
	cols, rows := 80, 40

	click := tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	kind, x, y, ok := km.MapMouse(click, cols, rows)
	if !ok || kind != core.PointerClick {
		t.Fatalf("left press should be a click, got %v ok=%v", kind, ok)
	}
	if x != 2.5 || y != 5 {
		t.Errorf("cell (0,0) should map to (2.5, 5), got (%v, %v)", x, y)
	}

	move := tea.MouseMsg{X: 79, Y: 39, Action: tea.MouseActionMotion}
	kind, x, y, ok = km.MapMouse(move, cols, rows)
	if !ok || kind != core.PointerMove {
		t.Fatalf("motion should be a move, got %v ok=%v", kind, ok)
	}
	if x != 397.5 || y != 395 {
		t.Errorf("last cell should map to (397.5, 395), got (%v, %v)", x, y)
	}

	ignored := []tea.MouseMsg{
		{X: 80, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		{X: -1, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		{X: 3, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
		{X: 3, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
	}
	for _, msg := range ignored {
		if _, _, _, ok := km.MapMouse(msg, cols, rows); ok {
			t.Errorf("MapMouse(%+v) should be ignored", msg)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}
