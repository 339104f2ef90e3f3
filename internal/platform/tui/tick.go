// Package tui provides the Bubble Tea integration for the arcade platform.
// It runs the fixed-rate frame loop, maps keys and clicks to game actions,
// and draws the game's screen buffer with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval is the frame period for rate ticks per second. Rates below
// one fall back to 60.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// tickCmd schedules the next frame. A new tick is only requested after the
// previous one was handled, so frames never overlap.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
