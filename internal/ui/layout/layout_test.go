package layout

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestRenderHeader(t *testing.T) {
	stats := HeaderStats{Level: 3, XP: 1250, Streak: 4}

	wide := ansi.Strip(RenderHeader("Curriculum", stats, 120))
	assert.Contains(t, wide, "Alpha Quant Academy")
	assert.Contains(t, wide, "Curriculum")
	assert.Contains(t, wide, "Lv 3 · 1250 XP")
	assert.Contains(t, wide, "🔥 4 day")
	assert.Equal(t, HeaderHeight, lipgloss.Height(wide))

	narrow := ansi.Strip(RenderHeader("A Very Long Screen Title Indeed", stats, 60))
	assert.NotContains(t, narrow, "A Very Long Screen Title Indeed")
	assert.Contains(t, narrow, "Lv 3")

	assert.NotContains(t, ansi.Strip(RenderHeader("Home", HeaderStats{Level: 1}, 120)), "🔥", "no streak shown at zero")
}

func TestRenderFooter_DropsHintsThatDoNotFit(t *testing.T) {
	hints := []KeyHint{
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+K", Description: "Search everything in the academy"},
	}

	wide := ansi.Strip(RenderFooter(hints, 120))
	for _, h := range hints {
		assert.Contains(t, wide, h.Key)
	}

	narrow := ansi.Strip(RenderFooter(hints, 40))
	assert.Contains(t, narrow, "Enter Open")
	assert.Contains(t, narrow, "Esc Back")
	assert.NotContains(t, narrow, "Ctrl+K")
	assert.Equal(t, FooterHeight, lipgloss.Height(narrow))
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("Home", HeaderStats{Level: 1}, MinWidth)
	footer := RenderFooter([]KeyHint{{Key: "q", Description: "Quit"}}, MinWidth)

	frame := RenderFrame(header, "body", footer, MinWidth, 30)
	assert.Equal(t, 30, lipgloss.Height(frame))
	assert.Contains(t, ansi.Strip(frame), "body")
}

func TestSizeThresholds(t *testing.T) {
	assert.True(t, IsTooSmall(79, 40))
	assert.True(t, IsTooSmall(120, 23))
	assert.False(t, IsTooSmall(MinWidth, MinHeight))

	assert.True(t, IsCompactWidth(99))
	assert.False(t, IsCompactWidth(100))
	assert.True(t, IsCompactHeight(29))

	msg := ansi.Strip(RenderMinSizeMessage(60, 20))
	assert.Contains(t, msg, "80×24")
	assert.Contains(t, msg, "60×20")
}
