package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/alphaquant/academy/internal/ui/theme"
)

// Tabs is a horizontal tab strip.
type Tabs struct {
	Labels []string
	Active int
}

// NewTabs creates tabs with the first one active.
func NewTabs(labels ...string) Tabs {
	return Tabs{Labels: labels}
}

// Update moves between tabs with tab/shift+tab, left/right or the digit keys.
func (t Tabs) Update(msg tea.Msg) (Tabs, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(t.Labels) == 0 {
		return t, nil
	}
	switch k := kmsg.String(); k {
	case "tab", "right", "l":
		t.Active = (t.Active + 1) % len(t.Labels)
	case "shift+tab", "left", "h":
		t.Active = (t.Active - 1 + len(t.Labels)) % len(t.Labels)
	default:
		if len(k) == 1 && k[0] >= '1' && int(k[0]-'1') < len(t.Labels) {
			t.Active = int(k[0] - '1')
		}
	}
	return t, nil
}

// View renders the strip.
func (t Tabs) View() string {
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Primary).
		Underline(true).
		Padding(0, 1)
	inactive := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Padding(0, 1)

	parts := make([]string, len(t.Labels))
	for i, l := range t.Labels {
		if i == t.Active {
			parts[i] = active.Render(l)
		} else {
			parts[i] = inactive.Render(l)
		}
	}
	return strings.Join(parts, lipgloss.NewStyle().Foreground(theme.Border).Render("│"))
}
