package sheetview

import "github.com/llehouerou/sheet/internal/ui/action"

// Source is the component name carried by this component's action messages.
const Source = "sheet"

// StateChanged is emitted when the sheet's openness is (re)decided: on
// controller open/close, on a snapping release, or when a free release or
// AnimateTo flips it.
type StateChanged struct {
	Open bool
}

// ActionType implements action.Action.
func (a StateChanged) ActionType() string { return "sheet.state_changed" }

// DragEnded is emitted when a drag gesture is released on the handle.
type DragEnded struct {
	Height   float64
	Velocity float64 // rows per second, positive toward the open side
}

// ActionType implements action.Action.
func (a DragEnded) ActionType() string { return "sheet.drag_ended" }

// ActionMsg creates an action.Msg for a sheet action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: Source, Action: a}
}
