package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// fallbackColor stands in for colors that are not "#rrggbb", such as ANSI
// palette indexes.
var fallbackColor = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// ApplyGradient renders text with a horizontal color gradient.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	return gradient(text, lipgloss.NewStyle(), from, to)
}

// Grip renders a centered handle grip of gripWidth cells inside width,
// blended from the theme's primary to secondary color.
func Grip(width, gripWidth int) string {
	gripWidth = min(gripWidth, width)
	if gripWidth <= 0 {
		return strings.Repeat(" ", max(width, 0))
	}
	left := (width - gripWidth) / 2
	right := width - gripWidth - left
	bar := gradient(strings.Repeat("━", gripWidth), lipgloss.NewStyle().Bold(true), T().Primary, T().Secondary)
	return strings.Repeat(" ", left) + bar + strings.Repeat(" ", right)
}

// gradient colors each grapheme of text with base, blending from one color
// to the other in HCL space.
func gradient(text string, base lipgloss.Style, from, to lipgloss.Color) string {
	stops := gradientStops(graphemeCount(text), from, to)

	var b strings.Builder
	gr := uniseg.NewGraphemes(text)
	for i := 0; gr.Next(); i++ {
		b.WriteString(base.Foreground(stops[i]).Render(gr.Str()))
	}
	return b.String()
}

// gradientStops returns n colors evenly spaced from one color to the other.
// A single stop is the start color.
func gradientStops(n int, from, to lipgloss.Color) []lipgloss.Color {
	start, end := parseHex(from), parseHex(to)
	span := float64(max(n-1, 1))

	stops := make([]lipgloss.Color, n)
	for i := range stops {
		stops[i] = lipgloss.Color(start.BlendHcl(end, float64(i)/span).Clamped().Hex())
	}
	return stops
}

func graphemeCount(text string) int {
	n := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		n++
	}
	return n
}

func parseHex(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return fallbackColor
	}
	return col
}
