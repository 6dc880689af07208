// Package styles holds the color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Primary   lipgloss.Color // Handle grip start, open state
	Secondary lipgloss.Color // Handle grip end

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgBase  lipgloss.Color // Background view
	BgSheet lipgloss.Color // Sheet surface

	Border lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base   lipgloss.Style
	Muted  lipgloss.Style
	Subtle lipgloss.Style
	Title  lipgloss.Style
	Sheet  lipgloss.Style // sheet body rows
	Status lipgloss.Style // bottom status line
	Open   lipgloss.Style
	Closed lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgBase:  lipgloss.Color("#1a1a1a"),
	BgSheet: lipgloss.Color("#262626"),

	Border: lipgloss.Color("#585858"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Sheet: lipgloss.NewStyle().
			Foreground(t.FgBase).
			Background(t.BgSheet),
		Status: lipgloss.NewStyle().
			Foreground(t.FgMuted).
			Background(t.BgBase),
		Open:   lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Closed: lipgloss.NewStyle().Foreground(t.FgSubtle),
	}
}
