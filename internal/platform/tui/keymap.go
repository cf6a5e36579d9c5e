package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-layers/internal/core"
)

// KeyMap defines the key bindings of the layers view.
type KeyMap struct {
	Tick     key.Binding
	Reset    key.Binding
	Autoplay key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tick, k.Reset, k.Autoplay, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tick, k.Reset, k.Autoplay},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings. They mirror the stream shell:
// Enter ticks, r resets, q quits.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tick: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "tick"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "reset"),
		),
		Autoplay: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "autoplay"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a shell action.
// Unbound keys map to ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Tick):
		return core.ActionTick
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	case key.Matches(msg, k.Autoplay):
		return core.ActionAutoplay
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}
