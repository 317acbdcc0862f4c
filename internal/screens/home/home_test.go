package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphaquant/academy/internal/nav"
	"github.com/alphaquant/academy/internal/progress"
	"github.com/alphaquant/academy/internal/store/storetest"
)

func TestMenuEmitsGoMsg(t *testing.T) {
	h := New(nil)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(nav.GoMsg)
	require.True(t, ok)
	assert.Equal(t, nav.Curriculum, msg.Section)

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd = h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, nav.GoMsg{Section: nav.Projects}, cmd())
}

func TestViewShowsProgress(t *testing.T) {
	tr := progress.NewTracker(storetest.Open(t).ProgressRepo())
	_, err := tr.Toggle(context.Background(), 1, "Python Basics")
	require.NoError(t, err)

	view := New(tr).View(120, 40)
	assert.Contains(t, view, "1/26 modules")
	assert.True(t, strings.Contains(view, "Curriculum"))
}

func TestViewWithoutTracker(t *testing.T) {
	assert.Contains(t, New(nil).View(120, 40), "0/26 modules")
}
