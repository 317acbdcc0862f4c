package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/alphaquant/academy/internal/ui/theme"
)

// Partial cells, one per eighth of a cell.
var eighths = []string{"", "▏", "▎", "▍", "▌", "▋", "▊", "▉"}

// ProgressBar is a one-line bar used for module, track and simulation
// progress.
type ProgressBar struct {
	Label       string
	Percent     float64 // clamped to 0..1
	ShowPercent bool
	Width       int
}

func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, ShowPercent: showPercent, Width: width}
}

func (p ProgressBar) View() string {
	pct := min(max(p.Percent, 0), 1)

	var b strings.Builder
	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}
	suffix := ""
	if p.ShowPercent {
		suffix = fmt.Sprintf("  %3d%%", int(pct*100+0.5))
	}

	cells := max(p.Width-lipgloss.Width(b.String())-len(suffix), 4)
	b.WriteString(bar(cells, pct))
	if suffix != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix))
	}
	return b.String()
}

// bar draws pct of cells filled, resolving the last cell to an eighth.
func bar(cells int, pct float64) string {
	units := int(pct*float64(cells*8) + 0.5)
	full, part := units/8, units%8
	fill := strings.Repeat("█", full) + eighths[part]
	rest := cells - full
	if part > 0 {
		rest--
	}
	return lipgloss.NewStyle().Foreground(theme.Primary).Render(fill) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", rest))
}
