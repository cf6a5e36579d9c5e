// Package tui provides the Bubble Tea front end for the layers sandbox.
// It handles the terminal UI loop, key bindings, autoplay timing, and the
// session history browser.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger an autoplay tick.
// Seq identifies the autoplay run that scheduled it; ticks from a run that
// has since been stopped are dropped.
type TickMsg struct {
	Time time.Time
	Seq  int
}

// tickCmd returns a Bubble Tea command that sends one tick message after
// the interval implied by tickRate.
func tickCmd(tickRate, seq int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Seq: seq}
	})
}
