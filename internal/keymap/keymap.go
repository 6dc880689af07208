package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "sheet"
}

// All contains every key binding.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Sheet
	{ActionToggle, []string{" "}, "Toggle sheet", "sheet"},
	{ActionOpen, []string{"o"}, "Open sheet", "sheet"},
	{ActionClose, []string{"c"}, "Close sheet", "sheet"},
	{ActionToggleHandle, []string{"h"}, "Show/hide handle", "sheet"},
	{ActionAnimateTo, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, "Animate to n/10", "sheet"},
	{ActionNudgeUp, []string{"k", "up"}, "Move edge up one row", "sheet"},
	{ActionNudgeDown, []string{"j", "down"}, "Move edge down one row", "sheet"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// HelpKeys converts bindings into bubbles key bindings for the help view.
// The space key is displayed as "space" rather than a blank.
func HelpKeys(bindings []Binding) []key.Binding {
	result := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		display := b.Keys[0]
		if display == " " {
			display = "space"
		}
		if b.Action == ActionAnimateTo {
			display = "1-9"
		}
		result = append(result, key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(display, b.Description),
		))
	}
	return result
}
