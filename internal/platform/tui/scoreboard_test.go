package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
	"github.com/vovakirdan/mini-arcade/internal/session"
	"github.com/vovakirdan/mini-arcade/internal/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreboardShowsStats(t *testing.T) {
	store := newTestStore(t)
	for _, score := range []int{3, 7} {
		r := session.Result{
			SessionID: "s1",
			Kind:      registry.KindSnake,
			Mode:      core.ModeSolo,
			State:     core.GameState{Score: score, GameOver: true},
		}
		if _, err := store.Record(r); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	view := m.View()
	if !strings.Contains(view, "Snake") {
		t.Errorf("first game should be Snake:\n%s", view)
	}
	if !strings.Contains(view, "Best 7   Rounds 2   Average 5.0") {
		t.Errorf("missing stats line:\n%s", view)
	}
	if got := len(m.table.Rows()); got != 2 {
		t.Errorf("table has %d rows, want 2", got)
	}
}

func TestScoreboardSwitchesGames(t *testing.T) {
	m := NewScoreboardModel(newTestStore(t), 100, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(ScoreboardModel)
	if m.games[m.cursor].Kind != registry.KindPong {
		t.Fatalf("right should open the second game, got %v", m.games[m.cursor].Kind)
	}
	if got := len(m.table.Columns()); got != 5 {
		t.Errorf("two-player game has %d columns, want 5", got)
	}
	if !strings.Contains(m.View(), "no rounds played") {
		t.Error("empty game should say so")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(ScoreboardModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(ScoreboardModel)
	if m.cursor != len(m.games)-1 {
		t.Errorf("left from the first game should wrap to the last, got %d", m.cursor)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "scores are not being kept") {
		t.Error("missing store should be explained")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}
