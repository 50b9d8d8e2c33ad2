// Package tui provides the Bubble Tea front end for Snake World: the board
// presenter, key bindings, the game model and the leaderboard view.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick after d. The controller's interval is read
// fresh for every tick, so a speed change applies to the next delay only.
func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
