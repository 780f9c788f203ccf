package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mini-arcade/internal/registry"
	"github.com/vovakirdan/mini-arcade/internal/storage"
)

const maxScores = 100

var (
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardStatStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
)

type scoreboardKeys struct {
	Scroll key.Binding
	Game   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Game, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var boardKeys = scoreboardKeys{
	Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
	Game:   key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab", "shift+tab"), key.WithHelp("←/→", "game")),
	Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ScoreboardModel lists recorded rounds one game at a time, with the
// game's totals above the table.
type ScoreboardModel struct {
	games  []registry.Info
	cursor int
	store  *storage.Store

	scores []storage.ScoreEntry
	stats  *storage.GameStats
	err    error

	table table.Model
	help  help.Model

	width, height int
	quitting      bool
	goingBack     bool
	standalone    bool // Back quits the program instead of returning to the menu
}

// NewScoreboardModel creates a scoreboard opened at the first game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.load()
	return m
}

func (m *ScoreboardModel) current() (registry.Info, bool) {
	if len(m.games) == 0 {
		return registry.Info{}, false
	}
	return m.games[m.cursor], true
}

// load reads the selected game's rounds and totals and rebuilds the table.
func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.err = nil, nil, nil
	info, ok := m.current()
	if ok && m.store != nil {
		id := info.Kind.String()
		if m.scores, m.err = m.store.TopScores(id, maxScores); m.err == nil {
			m.stats, m.err = m.store.GetGameStats(id)
		}
	}
	m.table = m.buildTable(info.Toggle)
}

// buildTable lays out the columns; two-player games get opponent and mode.
func (m *ScoreboardModel) buildTable(versus bool) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
	}
	if versus {
		columns = append(columns,
			table.Column{Title: "Opp", Width: 6},
			table.Column{Title: "Mode", Width: 8})
	}
	columns = append(columns, table.Column{Title: "Date", Width: 14})

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		row := table.Row{fmt.Sprintf("#%d", i+1), strconv.Itoa(s.Score)}
		if versus {
			row = append(row, strconv.Itoa(s.Score2), s.Mode)
		}
		rows[i] = append(row, s.CreatedAt.Format("Jan 02 15:04"))
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, boardKeys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, boardKeys.Back):
			m.goingBack = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, boardKeys.Game):
			if n := len(m.games); n > 0 {
				step := 1
				switch msg.String() {
				case "left", "h", "shift+tab":
					step = n - 1
				}
				m.cursor = (m.cursor + step) % n
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if info, ok := m.current(); ok {
		title = fmt.Sprintf("HIGH SCORES  < %s >  %d/%d", info.Title, m.cursor+1, len(m.games))
	}

	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(boardStatStyle.Render(m.summary()), m.width))
	b.WriteString("\n\n")

	body := m.table.View()
	switch {
	case m.err != nil:
		body = boardEmptyStyle.Render("Scores unavailable: " + m.err.Error())
	case len(m.scores) == 0:
		body = boardEmptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardFrameStyle.Render(body)))
	b.WriteString("\n")
	b.WriteString(centerText(menuHelpStyle.Render(m.help.View(boardKeys)), m.width))
	return b.String()
}

// summary is the stats line: best, rounds played, average, last played.
func (m ScoreboardModel) summary() string {
	switch {
	case m.store == nil:
		return "scores are not being kept"
	case m.stats == nil || m.stats.GamesCount == 0:
		return "no rounds played"
	}
	line := fmt.Sprintf("Best %d   Rounds %d   Average %.1f",
		m.stats.HighScore, m.stats.GamesCount, m.stats.AvgScore)
	if !m.stats.LastPlayed.IsZero() {
		line += "   Last " + m.stats.LastPlayed.Format("Jan 02 15:04")
	}
	return line
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen on its own, opened at kind.
func RunScoreboard(store *storage.Store, kind registry.Kind) error {
	m := NewScoreboardModel(store, 80, 24)
	m.standalone = true
	for i, g := range m.games {
		if g.Kind == kind {
			m.cursor = i
			m.load()
		}
	}

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
