// Package tui provides the Bubble Tea integration for termsnake. It handles
// the terminal loop, input mapping, rendering, and the fixed-cadence tick
// that drives the game while it is in the playing phase.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one game step.
type TickMsg time.Time

// tickCmd returns a command that delivers the next TickMsg after the given
// interval. The model re-arms it only while the game is playing, so leaving
// the playing phase tears the timer down and re-entry recreates it.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
