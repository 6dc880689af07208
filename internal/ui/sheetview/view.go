package sheetview

import (
	"strings"

	"github.com/llehouerou/sheet/internal/ui/layout"
	"github.com/llehouerou/sheet/internal/ui/render"
	"github.com/llehouerou/sheet/internal/ui/styles"
)

// View renders the sheet's rows, handle included, top to bottom. It does not
// render the rows the sheet leaves uncovered; place it at Top().
func (m *Model) View() string {
	rows := m.Rows()
	width := m.Width()
	if rows <= 0 || width <= 0 {
		return ""
	}

	height := m.engine.Height()
	handleVisible := m.HandleRow() >= 0
	contentRows := layout.ContentRows(rows, handleVisible)

	var body string
	if m.content != nil {
		body = m.content(height, width)
	}
	sheetStyle := styles.T().S().Sheet.Width(width)
	lines := render.Block(body, width, contentRows, false)
	for i, line := range lines {
		lines[i] = sheetStyle.Render(line)
	}

	if !handleVisible {
		return strings.Join(lines, "\n")
	}

	handle := m.renderHandle(height, width)
	if m.anchor() == layout.AnchorBottom {
		lines = append([]string{handle}, lines...)
	} else {
		lines = append(lines, handle)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderHandle(height float64, width int) string {
	var handle string
	if m.handle != nil {
		handle = render.Block(m.handle(height, width), width, 1, false)[0]
	} else {
		handle = styles.Grip(width, m.grip)
	}
	return styles.T().S().Sheet.Width(width).Render(handle)
}
