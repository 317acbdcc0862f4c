package projects

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestTabsSwitchProject(t *testing.T) {
	s := New()
	assert.Contains(t, s.View(120, 40), "Stock Portfolio Tracker")

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Contains(t, s.View(120, 40), "Financial Dashboard")

	s.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	view := s.View(120, 40)
	assert.Contains(t, view, "AI Stock Analyst v2.0")
	assert.Contains(t, view, "enhanced_engine.py")
}

func TestSelectByTitle(t *testing.T) {
	s := New()
	s.Select("Financial Dashboard")
	assert.Equal(t, 1, s.tabs.Active)

	s.Select("No Such Project")
	assert.Equal(t, 1, s.tabs.Active)
}
