// Package overlay composites a block of lines over a base view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Replace puts overlay lines over the base starting at row top, replacing
// each covered base line entirely. Use it for opaque blocks.
func Replace(base, overlay string, top, width int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(overlay, "\n") {
		row := top + i
		if row < 0 {
			continue
		}
		if row >= len(baseLines) {
			break
		}
		w := ansi.StringWidth(line)
		if w > width {
			line = ansi.Truncate(line, width, "")
		} else if w < width {
			line += strings.Repeat(" ", width-w)
		}
		baseLines[row] = line
	}
	return strings.Join(baseLines, "\n")
}
