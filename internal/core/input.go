package core

import "github.com/vovakirdan/santa2048/internal/engine"

// Action is a semantic player intent, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm // Enter - confirm selection in menu
	ActionBack    // Esc - back to the menu
	ActionRestart // R - new game
	ActionScores  // Tab - open the scoreboard
	ActionQuit    // Q, Ctrl+C
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
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionScores:
		return "Scores"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction maps a movement action to the board direction it slides tiles.
func (a Action) Direction() (engine.Direction, bool) {
	switch a {
	case ActionUp:
		return engine.Up, true
	case ActionDown:
		return engine.Down, true
	case ActionLeft:
		return engine.Left, true
	case ActionRight:
		return engine.Right, true
	}
	return 0, false
}
