// Package tui provides the Bubble Tea integration for the maze platform.
// It handles the terminal UI loop, input mapping, run history and the SSH
// front end.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the tick loop that scheduled it; a model ignores ticks
// from loops it did not start.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

// tickGens hands out a distinct tick loop ID to every game model.
var tickGens atomic.Uint64

func nextTickGen() uint64 {
	return tickGens.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
