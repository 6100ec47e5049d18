// Package tui provides the Bubble Tea integration for the breakout host.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Chain identifies the
// model that scheduled it; a model drops ticks from any other chain, such as
// one still in flight from a round the player already left.
type TickMsg struct {
	Time  time.Time
	Chain uint64
}

var tickChains atomic.Uint64

// nextTickChain returns a chain ID no other model uses.
func nextTickChain() uint64 {
	return tickChains.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, chain uint64) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Chain: chain}
	})
}
