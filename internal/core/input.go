package core

// Action represents a semantic game action, abstracted from physical input.
// Keys, mouse buttons and remote messages all map to the same actions.
type Action int

const (
	ActionNone           Action = iota
	ActionUp                    // W, Up arrow
	ActionDown                  // S, Down arrow
	ActionLeft                  // A, Left arrow
	ActionRight                 // D, Right arrow
	ActionConfirm               // Enter, Space - start/restart
	ActionNextDifficulty        // Tab
	ActionPrevDifficulty        // Shift+Tab
	ActionHelp                  // ? - toggle full help
	ActionQuit                  // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionNextDifficulty:
		return "NextDifficulty"
	case ActionPrevDifficulty:
		return "PrevDifficulty"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action requests a heading change.
func (a Action) IsDirection() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	default:
		return false
	}
}
