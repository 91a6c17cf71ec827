package core

// Action represents a semantic player action, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionRock            // R, 1
	ActionPaper           // P, 2
	ActionScissors        // S, 3
	ActionLeft            // Left arrow, H - move the choice cursor
	ActionRight           // Right arrow, L
	ActionConfirm         // Enter, Space - press the focused control
	ActionRestart         // N - restart after game over
	ActionHelp            // ? - toggle full help
	ActionQuit            // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRock:
		return "Rock"
	case ActionPaper:
		return "Paper"
	case ActionScissors:
		return "Scissors"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action picks one of the three moves.
func (a Action) IsMove() bool {
	return a == ActionRock || a == ActionPaper || a == ActionScissors
}
