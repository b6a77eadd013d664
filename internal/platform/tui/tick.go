// Package tui provides the Bubble Tea front end: the game screen, the
// match setup menu, the scoreboard and the SSH server that serves them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives the game loop.
type TickMsg time.Time

// tickCmd schedules the next loop iteration after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
