// Package layout provides pure functions for sheet geometry in terminal cells.
package layout

import "math"

// StatusBarHeight is the number of rows reserved for the status line.
const StatusBarHeight = 1

// Anchor is the container edge a sheet hangs from.
type Anchor int

const (
	AnchorTop Anchor = iota
	AnchorBottom
)

// SheetRows converts a fractional sheet height into whole rows.
func SheetRows(height float64) int {
	return max(int(math.Round(height)), 0)
}

// SheetTop returns the first container row covered by a sheet of rows rows.
func SheetTop(anchor Anchor, rows, containerHeight int) int {
	if anchor == AnchorBottom {
		return max(containerHeight-rows, 0)
	}
	return 0
}

// HandleRow returns the container row of the drag handle, or -1 when the
// sheet has no rows. The handle sits on the edge opposite the anchor.
func HandleRow(anchor Anchor, rows, containerHeight int) int {
	rows = min(rows, containerHeight)
	if rows <= 0 {
		return -1
	}
	if anchor == AnchorBottom {
		return containerHeight - rows
	}
	return rows - 1
}

// ContentRows is the number of rows left for content once the handle row
// is taken.
func ContentRows(rows int, handleVisible bool) int {
	if handleVisible {
		return max(rows-1, 0)
	}
	return max(rows, 0)
}

// MaxSheetHeight is the tallest a sheet may grow inside a window of the given
// height, leaving room for the status line.
func MaxSheetHeight(windowHeight int) float64 {
	return float64(max(windowHeight-StatusBarHeight, 0))
}
