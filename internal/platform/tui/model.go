package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
	"github.com/vovakirdan/mini-arcade/internal/session"
)

// DefaultPulseHold keeps a pulsed movement key active between terminal
// key repeats, which is how held keys arrive over a TTY. Only the level is
// held; each keypress is still a single press.
const DefaultPulseHold = 180 * time.Millisecond

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// GameModel shows the running game of a session host. The host draws into
// a raster over the model's screen on every tick; View only styles it.
type GameModel struct {
	host   *session.Host
	screen *core.Screen
	raster *core.Raster
	keys   *KeyMapper

	gen    int
	width  int
	height int
	err    error

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game view for a terminal of the given size.
// opts.Canvas is replaced by the view's raster.
func NewGameModel(opts session.Options, width, height int) GameModel {
	cols, rows := fitCanvas(width, height)
	screen := core.NewScreen(cols, rows)
	raster := core.NewRaster(screen, core.CanvasWidth, core.CanvasHeight)

	opts.Canvas = raster
	if opts.PulseHold == 0 {
		opts.PulseHold = DefaultPulseHold
	}

	return GameModel{
		host:   session.NewHost(opts),
		screen: screen,
		raster: raster,
		keys:   NewKeyMapper(),
		width:  width,
		height: height,
	}
}

// fitCanvas picks the largest cell grid showing the square canvas with
// cells twice as tall as wide, leaving one row for the status line.
func fitCanvas(width, height int) (cols, rows int) {
	rows = max(height-1, 1)
	cols = rows * 2
	if cols > width {
		cols = max(width, 2)
		rows = max(cols/2, 1)
	}
	return cols, rows
}

// Start selects a game on the host and starts ticking it.
func (m GameModel) Start(kind registry.Kind, mode core.Mode) (GameModel, tea.Cmd) {
	m.quitting, m.backToMenu, m.err = false, false, nil
	m.gen++

	s, err := m.host.Select(kind, mode, time.Now())
	if err != nil {
		m.err = err
		return m, nil
	}
	return m, tickCmd(s.Period(), m.gen)
}

// Stop tears down the running session.
func (m GameModel) Stop() {
	m.host.Stop()
}

// Init implements tea.Model. Games are started with Start.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		msg.X -= m.offset()
		if kind, x, y, ok := m.keys.MapMouse(msg, m.screen.Width(), m.screen.Height()); ok {
			m.host.Point(kind, x, y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.screen.Resize(fitCanvas(msg.Width, msg.Height))
		if s := m.host.Current(); s != nil {
			s.Render(m.raster)
		}
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, key := m.keys.MapKey(msg)
	switch action {
	case KeyQuit:
		m.host.Stop()
		m.quitting = true
		return m, tea.Quit
	case KeyBack:
		m.host.Stop()
		m.backToMenu = true
		return m, nil
	}

	m.host.Pulse(key)
	return m, nil
}

func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil
	}
	s := m.host.Current()
	if s == nil || !s.Tick(msg.Time) {
		return m, nil
	}
	return m, tickCmd(s.Period(), m.gen)
}

// offset is the left margin of the centred canvas.
func (m GameModel) offset() int {
	return max((m.width-m.screen.Width())/2, 0)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return fmt.Sprintf("\n  cannot start game: %v\n\n  esc: back to menu\n", m.err)
	}

	canvas := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, RenderScreen(m.screen))
	return canvas + "\n" + lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.status())
}

func (m GameModel) status() string {
	s := m.host.Current()
	if s == nil {
		return ""
	}
	info := s.Info()
	state := s.State()

	score := fmt.Sprintf("%d", state.Score)
	if state.Mode == core.ModeVersus || info.Toggle {
		score = fmt.Sprintf("%d : %d", state.Score, state.Score2)
	}
	return titleStyle.Render(info.Title) + statusStyle.Render(
		fmt.Sprintf("  %s  |  %s  |  esc: menu  q: quit", score, info.Controls),
	)
}

// Session returns the running session, or nil.
func (m GameModel) Session() *session.Session {
	return m.host.Current()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
