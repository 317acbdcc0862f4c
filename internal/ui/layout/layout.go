// Package layout draws the frame every screen is rendered into: a header
// with the learner's level, the screen body and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/alphaquant/academy/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// Rendered heights of the bordered header and footer.
	HeaderHeight = 3
	FooterHeight = 3

	compactWidth  = 100
	compactHeight = 30
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsCompactWidth(width int) bool   { return width < compactWidth }
func IsCompactHeight(height int) bool { return height < compactHeight }

// IsTooSmall reports whether the terminal cannot fit the frame at all.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the terminal with a centred resize prompt.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small\n\nResize to at least %d×%d\n(currently %d×%d)",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(msg))
}

// HeaderStats are the learner figures shown at the right of the header.
type HeaderStats struct {
	Level  int
	XP     int
	Streak int
}

func (s HeaderStats) render() string {
	out := lipgloss.NewStyle().Foreground(theme.Secondary).Render(fmt.Sprintf("Lv %d · %d XP", s.Level, s.XP))
	if s.Streak > 0 {
		out += "   " + lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("🔥 %d day", s.Streak))
	}
	return out
}

func box(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// RenderHeader draws the brand on the left, title centred and stats on the
// right. The title is dropped first when the row is too narrow.
func RenderHeader(title string, stats HeaderStats, width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(" Alpha Quant Academy")
	right := stats.render() + " "
	mid := lipgloss.NewStyle().Foreground(theme.Text).Render(title)

	inner := max(width-2, 0)
	free := inner - lipgloss.Width(brand) - lipgloss.Width(right)
	if lipgloss.Width(mid)+2 > free {
		mid = ""
	}
	row := brand +
		lipgloss.PlaceHorizontal(max(free, 1), lipgloss.Center, mid) +
		right
	return box(width).Render(row)
}

// RenderFooter draws as many hints as fit on one line, in order.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	const sep = "   "

	avail := max(width-4, 0)
	var b strings.Builder
	b.WriteString(" ")
	for i, h := range hints {
		part := keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
		if i > 0 {
			part = sep + part
		}
		if lipgloss.Width(b.String())+lipgloss.Width(part) > avail {
			break
		}
		b.WriteString(part)
	}
	return box(width).Render(b.String())
}

// RenderFrame stacks header, body and footer, sizing the body to whatever
// height the other two leave.
func RenderFrame(header, content, footer string, width, height int) string {
	body := lipgloss.NewStyle().
		Width(width).
		Height(max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)).
		Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
