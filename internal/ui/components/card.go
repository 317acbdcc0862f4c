package components

import (
	"charm.land/lipgloss/v2"

	"github.com/alphaquant/academy/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for stacked sections.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth, max int) int {
	w := frameWidth - 6
	if w > max {
		w = max
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Frame centers content inside a double border filling the area.
func Frame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded border at the given outer width.
func Card(content string, width int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(width - 2).
		Padding(0, 1).
		Render(content)
}

// Heading renders a section heading.
func Heading(s string) string {
	return theme.Title.Render(s)
}
