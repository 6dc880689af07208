// internal/app/content.go
package app

import (
	"fmt"
	"strings"

	"github.com/llehouerou/sheet/internal/ui/render"
	"github.com/llehouerou/sheet/internal/ui/styles"
)

const backgroundText = `Drag the handle with the mouse, or use the keyboard:

  space   toggle the sheet
  o / c   open / close
  1 - 9   animate to that tenth of the range
  j / k   nudge by one row
  h       show or hide the handle
  q       quit`

// sheetContent renders the sheet body. It reports the live height so the
// spring can be watched while it runs.
func sheetContent(height float64, width int) string {
	var b strings.Builder
	t := styles.T()
	fmt.Fprintf(&b, " %s  %.2f rows\n", styles.ApplyGradient("Sheet", t.Primary, t.Secondary), height)
	b.WriteString(" " + render.Separator(width-2) + "\n")
	for i := 1; i <= int(height); i++ {
		fmt.Fprintf(&b, " row %d\n", i)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
