// internal/app/view.go
package app

import (
	"fmt"
	"strings"

	"github.com/llehouerou/sheet/internal/keymap"
	"github.com/llehouerou/sheet/internal/ui/layout"
	"github.com/llehouerou/sheet/internal/ui/overlay"
	"github.com/llehouerou/sheet/internal/ui/render"
	"github.com/llehouerou/sheet/internal/ui/styles"
)

// View renders the background, the sheet over it and the status line.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return "Loading..."
	}

	containerHeight := max(m.Height-layout.StatusBarHeight, 0)
	view := m.renderBackground(containerHeight)
	if sheetView := m.Sheet.View(); sheetView != "" {
		view = overlay.Replace(view, sheetView, m.Sheet.Top(), m.Width)
	}
	return view + "\n" + m.renderStatus()
}

func (m Model) renderBackground(rows int) string {
	t := styles.T()
	lines := render.Block(backgroundText, m.Width, rows, false)
	style := t.S().Subtle.Width(m.Width)
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatus() string {
	s := styles.T().S()
	if m.ShowHelp {
		bindings := append(keymap.ByContext("global"), keymap.ByContext("sheet")...)
		return s.Status.Width(m.Width).Render(m.help.ShortHelpView(keymap.HelpKeys(bindings)))
	}

	state := s.Closed.Render("closed")
	if m.IsOpen {
		state = s.Open.Render("open")
	}

	e := m.Sheet.Engine()
	left := fmt.Sprintf("%s  %.1f/%.0f  %s", state, e.Height(), e.MaxHeight(), e.Phase())
	if m.ErrorMsg != "" {
		return s.Status.Render(render.TruncateAndPad(m.ErrorMsg, m.Width))
	}

	right := "help"
	if keys := m.resolver.KeysFor(keymap.ActionHelp); len(keys) > 0 {
		right = keys[0] + " help"
	}
	if m.LastRelease != nil {
		right = fmt.Sprintf("release %.0f rows/s  %s", m.LastRelease.Velocity, right)
	}
	return s.Status.Render(render.Row(left, right, m.Width))
}
