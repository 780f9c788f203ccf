package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
	"github.com/vovakirdan/mini-arcade/internal/session"
	"github.com/vovakirdan/mini-arcade/internal/sound"
	"github.com/vovakirdan/mini-arcade/internal/storage"
)

// Config configures one arcade frontend.
type Config struct {
	// Options are shared by every session the frontend starts.
	Options session.Options
	Store   *storage.Store
	// Kind starts straight into a game; KindUnknown opens the menu.
	Kind registry.Kind
	Mode core.Mode

	Width  int
	Height int
}

// Hooks returns session hooks that save finished rounds and play event
// tones. Store and player may each be nil.
func Hooks(store *storage.Store, player *sound.Player, logger *log.Logger) session.Hooks {
	if logger == nil {
		logger = log.Default()
	}
	var h session.Hooks
	if store != nil {
		h.OnGameOver = func(r session.Result) {
			if _, err := store.Record(r); err != nil {
				logger.Warn("could not save score", "game", r.Kind, "error", err)
			}
		}
	}
	if player != nil {
		h.OnEvents = player.OnEvents
	}
	return h
}

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenScores
)

// AppModel manages the full arcade flow: menu -> game -> menu, plus the
// scoreboard. Local play and SSH sessions both run it.
type AppModel struct {
	cfg    Config
	screen screen

	menu   MenuModel
	game   GameModel
	scores ScoreboardModel

	startCmd tea.Cmd
	quitting bool
}

// NewAppModel creates the arcade model. A valid cfg.Kind starts that game
// immediately.
func NewAppModel(cfg Config) AppModel {
	if cfg.Width == 0 || cfg.Height == 0 {
		cfg.Width, cfg.Height = 80, 24
	}

	m := AppModel{
		cfg:  cfg,
		menu: NewMenuModel(cfg.Width, cfg.Height),
		game: NewGameModel(cfg.Options, cfg.Width, cfg.Height),
	}
	if cfg.Kind.Valid() {
		m.game, m.startCmd = m.game.Start(cfg.Kind, cfg.Mode)
		m.screen = screenGame
	}
	return m
}

// Init starts the preselected game, if any.
func (m AppModel) Init() tea.Cmd {
	return m.startCmd
}

// Update routes messages to the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cfg.Width, m.cfg.Height = msg.Width, msg.Height
		m.menu = update(m.menu, msg)
		m.game = update(m.game, msg)
		if m.screen == screenScores {
			m.scores = update(m.scores, msg)
		}
		return m, nil

	case TickMsg:
		// Ticks of a stopped game fall through harmlessly.
		next, cmd := m.game.Update(msg)
		m.game = next.(GameModel)
		return m, cmd
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.cfg.Store, m.cfg.Width, m.cfg.Height)
		m.screen = screenScores
		return m, nil

	case m.menu.Selected() != nil:
		item := *m.menu.Selected()
		var start tea.Cmd
		m.game, start = m.game.Start(item.Kind, item.Mode)
		m.screen = screenGame
		return m, start
	}
	return m, cmd
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(GameModel)

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		m.menu = NewMenuModel(m.cfg.Width, m.cfg.Height)
		m.screen = screenMenu
		return m, nil
	}
	return m, cmd
}

func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		m.menu = NewMenuModel(m.cfg.Width, m.cfg.Height)
		m.screen = screenMenu
		return m, nil
	}
	return m, cmd
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// Close stops the running game, if any.
func (m AppModel) Close() {
	m.game.Stop()
}

// update forwards msg to a sub-model whose Update returns its own type.
func update[M tea.Model](m M, msg tea.Msg) M {
	next, _ := m.Update(msg)
	return next.(M)
}

// Run starts the arcade in the current terminal and blocks until the
// player quits.
func Run(cfg Config) error {
	model := NewAppModel(cfg)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}
