// Package keymap defines key bindings and action dispatch for the sheet demo.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Sheet actions
	ActionToggle       Action = "toggle"
	ActionOpen         Action = "open"
	ActionClose        Action = "close"
	ActionToggleHandle Action = "toggle_handle"
	ActionAnimateTo    Action = "animate_to" // 1-9: tenths of the height range
	ActionNudgeUp      Action = "nudge_up"
	ActionNudgeDown    Action = "nudge_down"
)
