package search

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphaquant/academy/internal/catalog"
	"github.com/alphaquant/academy/internal/nav"
	"github.com/alphaquant/academy/internal/progress"
)

func typeText(s *SearchScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func press(s *SearchScreen, code rune) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: code})
	return cmd
}

func TestEmptyQueryIsCapped(t *testing.T) {
	s := New()
	assert.Len(t, s.Results(), MaxResults)
	assert.Equal(t, catalog.KindAll, s.Kind())
}

func TestTypingFilters(t *testing.T) {
	s := New()
	typeText(s, "pandas")
	require.Len(t, s.Results(), 1)
	assert.Equal(t, "Pandas Mastery", s.Results()[0].Title)

	cmd := press(s, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.Equal(t, nav.GoMsg{
		Section: nav.Curriculum,
		Focus:   string(progress.KeyFor(2, "Pandas Mastery")),
	}, cmd())
}

func TestTabCyclesKind(t *testing.T) {
	s := New()
	press(s, tea.KeyTab)
	assert.Equal(t, catalog.KindModule, s.Kind())
	press(s, tea.KeyTab)
	assert.Equal(t, catalog.KindProject, s.Kind())
	require.Len(t, s.Results(), 3)

	press(s, tea.KeyDown)
	cmd := press(s, tea.KeyEnter)
	require.NotNil(t, cmd)
	msg := cmd().(nav.GoMsg)
	assert.Equal(t, nav.Projects, msg.Section)
	assert.Equal(t, s.Results()[1].Title, msg.Focus)
}

func TestToolShowsLink(t *testing.T) {
	s := New()
	_, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	require.Equal(t, catalog.KindTool, s.Kind())

	assert.Nil(t, press(s, tea.KeyEnter))
	assert.Contains(t, s.View(120, 40), catalog.BinderURL)
}

func TestNoResults(t *testing.T) {
	s := New()
	typeText(s, "zzzz")
	assert.Empty(t, s.Results())
	assert.Nil(t, press(s, tea.KeyEnter))
	assert.Contains(t, s.View(120, 40), "No results")
}
