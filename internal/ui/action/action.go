// Package action defines the interface for UI component actions.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action represents an action from a UI component.
// The ActionType method returns a string identifier for logging/debugging.
type Action interface {
	ActionType() string
}

// Msg wraps a UI action with its source component name.
// Components hand these to the app as tea.Cmd results.
type Msg struct {
	Source string // Component name, e.g. "sheet"
	Action Action
}

var _ tea.Msg = Msg{}

// Cmd wraps a into a command that yields a Msg from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Action: a}
	}
}
