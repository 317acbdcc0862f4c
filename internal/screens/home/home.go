// Package home is the landing screen: headline stats, overall progress
// and the section menu.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/alphaquant/academy/internal/catalog"
	"github.com/alphaquant/academy/internal/nav"
	"github.com/alphaquant/academy/internal/progress"
	"github.com/alphaquant/academy/internal/screen"
	"github.com/alphaquant/academy/internal/ui/components"
	"github.com/alphaquant/academy/internal/ui/layout"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu    components.Menu
	tracker *progress.Tracker
	stats   catalog.Stats
	notice  string
}

var _ screen.Screen = (*HomeScreen)(nil)

// menuHints are shown next to each section entry.
var menuHints = map[nav.Section]string{
	nav.Curriculum: "7 tracks · 26 modules",
	nav.Projects:   "3 sample projects",
	nav.Data:       "7 datasets",
	nav.Analyst:    "multi-model backtest",
	nav.Market:     "live simulated ticker",
	nav.Dashboard:  "XP, streaks, badges",
	nav.Assistant:  "ask a question",
	nav.Search:     "Ctrl+K",
}

// New creates a HomeScreen. A nil tracker shows no progress.
func New(tracker *progress.Tracker) *HomeScreen {
	var items []components.MenuItem
	for _, s := range nav.Sections {
		if s == nav.Home {
			continue
		}
		section := s
		items = append(items, components.MenuItem{
			Label: section.Label(),
			Hint:  menuHints[section],
			Action: func() tea.Cmd {
				return func() tea.Msg { return nav.GoMsg{Section: section} }
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})

	return &HomeScreen{
		menu:    components.NewMenu(items),
		tracker: tracker,
		stats:   catalog.HeadlineStats(),
	}
}

// SetNotice shows a one-line message under the menu, e.g. an update note.
func (h *HomeScreen) SetNotice(s string) {
	h.notice = s
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width, 72)

	var summary progress.Summary
	if h.tracker != nil {
		summary = progress.Summarize(h.tracker.State(), catalog.Tracks())
	} else {
		summary = progress.Summary{Total: catalog.ModuleCount()}
	}

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderStats(h.stats, cw, compact))
	sections = append(sections, renderProgress(summary, cw))
	sections = append(sections, renderMenu(h.menu, cw))
	if h.notice != "" {
		sections = append(sections, renderNotice(h.notice, cw))
	}
	if !compact {
		sections = append(sections, renderLinks(cw))
	}

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// KeyHints returns the key binding hints for the footer.
func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Ctrl+K", Description: "Search"},
		{Key: "Ctrl+N", Description: "Menu"},
		{Key: "Ctrl+T", Description: "Theme"},
	}
}
