package core

// Action represents a semantic shell command, abstracted from physical key presses.
// The stream shell and the TUI both reduce their input to these.
type Action int

const (
	ActionNone     Action = iota
	ActionTick            // Newline, Enter - advance every layer one tick
	ActionReset           // R - re-randomize every layer
	ActionQuit            // Q, NUL, end of input, Ctrl+C
	ActionAutoplay        // Space (TUI only) - toggle automatic ticking
	ActionHelp            // ? (TUI only) - toggle the full help view
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTick:
		return "Tick"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	case ActionAutoplay:
		return "Autoplay"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// ParseControl maps one byte of the control stream to an action.
// Unrecognized bytes map to ActionNone and are meant to be ignored.
func ParseControl(b byte) Action {
	switch b {
	case '\n':
		return ActionTick
	case 'r', 'R':
		return ActionReset
	case 'q', 'Q', 0:
		return ActionQuit
	default:
		return ActionNone
	}
}
