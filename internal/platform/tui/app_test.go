package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mini-arcade/internal/core"
	_ "github.com/vovakirdan/mini-arcade/internal/games/breakout"
	_ "github.com/vovakirdan/mini-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/mini-arcade/internal/games/jetfighter"
	_ "github.com/vovakirdan/mini-arcade/internal/games/memory"
	_ "github.com/vovakirdan/mini-arcade/internal/games/pong"
	_ "github.com/vovakirdan/mini-arcade/internal/games/snake"
	_ "github.com/vovakirdan/mini-arcade/internal/games/spacerace"
	_ "github.com/vovakirdan/mini-arcade/internal/games/t2048"
	_ "github.com/vovakirdan/mini-arcade/internal/games/tictactoe"
	"github.com/vovakirdan/mini-arcade/internal/registry"
	"github.com/vovakirdan/mini-arcade/internal/session"
)

func testConfig(kind registry.Kind) Config {
	return Config{
		Options: session.Options{
			Seed:   1,
			Logger: log.NewWithOptions(io.Discard, log.Options{}),
		},
		Kind:   kind,
		Width:  80,
		Height: 24,
	}
}

func send(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(AppModel)
}

func TestFitCanvas(t *testing.T) {
	tests := []struct {
		w, h       int
		cols, rows int
	}{
		{80, 24, 46, 23},
		{30, 24, 30, 15},
		{200, 51, 100, 50},
		{1, 1, 2, 1},
	}
	for _, tc := range tests {
		cols, rows := fitCanvas(tc.w, tc.h)
		if cols != tc.cols || rows != tc.rows {
			t.Errorf("fitCanvas(%d, %d) = (%d, %d), expected (%d, %d)",
				tc.w, tc.h, cols, rows, tc.cols, tc.rows)
		}
	}
}

func TestAppStartsPreselectedGame(t *testing.T) {
	m := NewAppModel(testConfig(registry.KindPong))
	defer m.Close()

	if m.screen != screenGame {
		t.Fatalf("expected game screen, got %v", m.screen)
	}
	s := m.game.Session()
	if s == nil || s.Kind() != registry.KindPong {
		t.Fatal("expected a running pong session")
	}
	if m.Init() == nil {
		t.Error("Init should schedule the first tick")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("esc should return to the menu, got %v", m.screen)
	}
	if m.game.Session() != nil {
		t.Error("leaving a game should stop its session")
	}
}

func TestAppMenuSelectsGameAndMode(t *testing.T) {
	m := NewAppModel(testConfig(registry.KindUnknown))
	defer m.Close()

	if m.screen != screenMenu {
		t.Fatalf("expected menu screen, got %v", m.screen)
	}

	// Second entry is Pong; left switches it to two players.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.screen != screenGame {
		t.Fatalf("enter should start the game, got screen %v", m.screen)
	}
	s := m.game.Session()
	if s == nil {
		t.Fatal("expected a running session")
	}
	if s.Kind() != registry.KindPong {
		t.Errorf("expected pong, got %v", s.Kind())
	}
	if s.Mode() != core.ModeVersus {
		t.Errorf("expected versus mode, got %v", s.Mode())
	}
}

func TestAppScoreboardRoundTrip(t *testing.T) {
	m := NewAppModel(testConfig(registry.KindUnknown))
	defer m.Close()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("tab should open scores, got %v", m.screen)
	}
	if m.View() == "" {
		t.Error("scoreboard view should not be empty without a store")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("esc should return to the menu, got %v", m.screen)
	}
	if m.quitting {
		t.Error("back from the scoreboard must not quit the app")
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	gm := NewGameModel(testConfig(registry.KindUnknown).Options, 80, 24)
	gm, cmd := gm.Start(registry.KindSnake, core.ModeDefault)
	defer gm.Stop()
	if cmd == nil {
		t.Fatal("Start should schedule a tick")
	}

	next, cmd := gm.Update(TickMsg{Time: time.Now(), Gen: gm.gen - 1})
	if cmd != nil {
		t.Error("a tick from an older game should not reschedule")
	}
	gm = next.(GameModel)

	_, cmd = gm.Update(TickMsg{Time: time.Now(), Gen: gm.gen})
	if cmd == nil {
		t.Error("a current tick should schedule the next one")
	}
}

func TestGameModelUnknownKind(t *testing.T) {
	gm := NewGameModel(testConfig(registry.KindUnknown).Options, 80, 24)
	gm, cmd := gm.Start(registry.KindUnknown, core.ModeDefault)
	if cmd != nil {
		t.Error("an unknown game should not tick")
	}
	if gm.err == nil {
		t.Error("expected a start error")
	}
}
