// internal/app/keys.go
package app

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sheet/internal/app/handler"
	"github.com/llehouerou/sheet/internal/keymap"
	"github.com/llehouerou/sheet/internal/sheet"
)

// handleGlobalKeys handles quit and help.
func (m *Model) handleGlobalKeys(key string) handler.Result {
	switch m.resolver.Resolve(key) {
	case keymap.ActionQuit:
		m.Sheet.Close()
		return handler.Handled(tea.Quit)
	case keymap.ActionHelp:
		m.ShowHelp = !m.ShowHelp
		return handler.Handled(nil)
	}
	return handler.NotHandled
}

func (m *Model) handleSheetKeys(key string) handler.Result {
	var fn func(c *sheet.Controller)

	switch m.resolver.Resolve(key) {
	case keymap.ActionToggle:
		fn = (*sheet.Controller).Toggle
	case keymap.ActionOpen:
		fn = (*sheet.Controller).Open
	case keymap.ActionClose:
		fn = (*sheet.Controller).Close
	case keymap.ActionToggleHandle:
		fn = func(c *sheet.Controller) {
			if c.IsHandleVisible() {
				c.HideHandle()
			} else {
				c.ShowHandle()
			}
		}
	case keymap.ActionAnimateTo:
		tenths, err := strconv.Atoi(key)
		if err != nil {
			return handler.NotHandled
		}
		target := m.fractionHeight(float64(tenths) / 10)
		fn = func(c *sheet.Controller) { c.AnimateTo(target) }
	case keymap.ActionNudgeDown:
		fn = m.nudge(1)
	case keymap.ActionNudgeUp:
		fn = m.nudge(-1)
	default:
		return handler.NotHandled
	}

	return handler.Handled(m.Sheet.Do(fn))
}

func (m *Model) fractionHeight(f float64) float64 {
	e := m.Sheet.Engine()
	return e.MinHeight() + (e.MaxHeight()-e.MinHeight())*f
}

// nudge moves the sheet's open edge by rows screen rows; positive is down.
func (m *Model) nudge(rows float64) func(c *sheet.Controller) {
	e := m.Sheet.Engine()
	if e.Direction() == sheet.BottomToTop {
		rows = -rows
	}
	target := e.Height() + rows
	return func(c *sheet.Controller) { c.AnimateTo(target) }
}
