// Package render provides text rendering utilities for TUI components.
package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters other than tab and escape, which would
// otherwise move the cursor and break the sheet's row accounting. Other
// whitespace such as non-breaking spaces becomes a plain space.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\x1b':
			return r
		case unicode.IsControl(r):
			return -1
		case unicode.IsSpace(r):
			return ' '
		}
		return r
	}, s)
}

// TruncateAndPad fits a plain string to exactly width columns.
func TruncateAndPad(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(Sanitize(s), width, "…"), width)
}

// Row creates a row with left and right aligned content separated by spaces.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Block clips or pads multi-line, possibly styled, text to exactly rows
// lines. Each line is clipped to width. When keepBottom is set, overflow is
// cut from the top instead of the bottom.
func Block(s string, width, rows int, keepBottom bool) []string {
	if rows <= 0 {
		return nil
	}
	var lines []string
	if s != "" {
		lines = strings.Split(s, "\n")
	}
	if len(lines) > rows {
		if keepBottom {
			lines = lines[len(lines)-rows:]
		} else {
			lines = lines[:rows]
		}
	}
	out := make([]string, rows)
	for i := range rows {
		if i < len(lines) {
			out[i] = lipgloss.NewStyle().MaxWidth(width).Render(Sanitize(lines[i]))
		}
	}
	return out
}

// Separator creates a horizontal separator line of the specified width.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}
