// Package tui provides the Bubble Tea frontend for the arcade: the game
// picker, the game view driven by a session host, the scoreboard and the
// SSH server that serves them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg struct {
	Time time.Time
	// Gen ties the tick to the game view that scheduled it, so ticks from a
	// previous game are dropped after switching.
	Gen int
}

// tickCmd returns a Bubble Tea command that sends one tick after period.
func tickCmd(period time.Duration, gen int) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
