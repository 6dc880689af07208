// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sheet/internal/app/handler"
	"github.com/llehouerou/sheet/internal/errmsg"
	"github.com/llehouerou/sheet/internal/sheet"
	"github.com/llehouerou/sheet/internal/ui/action"
	"github.com/llehouerou/sheet/internal/ui/layout"
	"github.com/llehouerou/sheet/internal/ui/sheetview"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		_, cmd := handler.Chain(msg.String(), m.handleGlobalKeys, m.handleSheetKeys)
		return m, cmd

	case action.Msg:
		if msg.Source == sheetview.Source {
			m.handleSheetAction(msg.Action)
		}
		return m, nil
	}

	return m, m.Sheet.Update(msg)
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Sheet.SetSize(msg.Width, max(msg.Height-layout.StatusBarHeight, 0))
	m.help.Width = msg.Width

	var cmds []tea.Cmd
	if m.cfg.FitsTerminal() {
		engine := m.Sheet.Engine()
		maxHeight := max(layout.MaxSheetHeight(msg.Height), engine.MinHeight())
		cmd, err := m.Sheet.SetBounds(engine.MinHeight(), maxHeight)
		if err != nil {
			m.ErrorMsg = errmsg.Format(errmsg.OpSheetResize, err)
			m.logger.Error("resize failed", "err", err)
		} else {
			m.ErrorMsg = ""
		}
		cmds = append(cmds, cmd)
	}

	if m.pendingOpen {
		m.pendingOpen = false
		cmds = append(cmds, m.Sheet.Do(func(c *sheet.Controller) { c.Open() }))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleSheetAction(a action.Action) {
	switch a := a.(type) {
	case sheetview.StateChanged:
		m.IsOpen = a.Open
		m.logger.Info("sheet state changed", "open", a.Open)
	case sheetview.DragEnded:
		m.LastRelease = &a
		m.logger.Debug("drag released", "height", a.Height, "velocity", a.Velocity)
	}
}
