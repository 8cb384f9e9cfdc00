// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance a game model's clock by one frame.
// Session identifies the model that scheduled it; other models ignore it.
type TickMsg struct {
	At      time.Time
	Session uint64
}

var sessionSeq atomic.Uint64

// nextSession returns a process-unique id for a tick chain.
func nextSession() uint64 {
	return sessionSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, session uint64) tea.Cmd {
	return tea.Tick(frameDuration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{At: t, Session: session}
	})
}

// frameDuration is the virtual time one tick advances the scheduler by.
func frameDuration(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}
