package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/alphaquant/academy/internal/ui/theme"
)

// Choice asks a question with a row of button options. Selection moves
// with left/right (or tab) and is confirmed with enter.
type Choice struct {
	Question    string
	Options     []string
	Selected    int
	Submitted   bool
	ChosenIndex int
}

// NewChoice creates a choice with the first option selected.
func NewChoice(question string, options ...string) Choice {
	return Choice{
		Question:    question,
		Options:     options,
		ChosenIndex: -1,
	}
}

// Update handles keyboard navigation and selection.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "left", "h", "shift+tab":
		if c.Selected > 0 {
			c.Selected--
		}
	case "right", "l", "tab":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Submitted = true
		c.ChosenIndex = c.Selected
	}
	return c, nil
}

// Chose reports whether the submitted option is i.
func (c Choice) Chose(i int) bool {
	return c.Submitted && c.ChosenIndex == i
}

// View renders the question above the option buttons.
func (c Choice) View() string {
	buttons := make([]string, len(c.Options))
	for i, opt := range c.Options {
		buttons[i] = NewButton(opt, i == c.Selected).View()
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
	q := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Question)
	return lipgloss.JoinVertical(lipgloss.Center, q, "", row)
}
