// Package tui provides the Bubble Tea integration for Forest Escape.
// It handles the terminal UI loop, input mapping, and session orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. Loop identifies the tick
// loop that produced it, so a model ignores ticks left over from a game
// that has already been replaced.
type TickMsg struct {
	Time time.Time
	Loop int64
}

var loopIDs atomic.Int64

// newLoopID returns a process-unique tick loop id.
func newLoopID() int64 {
	return loopIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends a tick message after interval.
func tickCmd(loop int64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
