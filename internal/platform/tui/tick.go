// Package tui runs games in a terminal with Bubble Tea, locally or over SSH.
// It owns the host loop: fixed-rate ticks, key mapping, menus and scores.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per host tick.
type TickMsg time.Time

// tickInterval returns the host tick period; non-positive rates fall back to 60 per second.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next TickMsg.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
