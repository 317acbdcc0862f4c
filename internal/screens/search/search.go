// Package search is the Ctrl+K command palette over modules, projects and
// tools.
package search

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/alphaquant/academy/internal/catalog"
	"github.com/alphaquant/academy/internal/nav"
	"github.com/alphaquant/academy/internal/progress"
	"github.com/alphaquant/academy/internal/screen"
	"github.com/alphaquant/academy/internal/ui/components"
	"github.com/alphaquant/academy/internal/ui/layout"
	"github.com/alphaquant/academy/internal/ui/theme"
)

// MaxResults caps the number of results shown.
const MaxResults = 10

// SearchScreen filters the catalog index as the learner types.
type SearchScreen struct {
	input   components.TextInput
	kinds   []catalog.Kind
	kind    int
	results []catalog.Item
	cursor  int
	notice  string
}

var (
	_ screen.Screen          = (*SearchScreen)(nil)
	_ screen.KeyHintProvider = (*SearchScreen)(nil)
)

// New creates an empty search listing everything.
func New() *SearchScreen {
	s := &SearchScreen{
		input: components.NewTextInput("Search modules, projects, tools...", 64),
		kinds: catalog.AllKinds(),
	}
	s.refresh()
	return s
}

func (s *SearchScreen) Init() tea.Cmd { return s.input.Init() }
func (s *SearchScreen) Title() string { return "Search" }

func (s *SearchScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Tab", Description: "Filter"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Close"},
	}
}

// Kind returns the active filter.
func (s *SearchScreen) Kind() catalog.Kind { return s.kinds[s.kind] }

// Results returns the visible results.
func (s *SearchScreen) Results() []catalog.Item { return s.results }

func (s *SearchScreen) refresh() {
	res := catalog.Search(s.input.Value(), s.Kind())
	if len(res) > MaxResults {
		res = res[:MaxResults]
	}
	s.results = res
	if s.cursor >= len(res) {
		s.cursor = max(len(res)-1, 0)
	}
}

func (s *SearchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "up":
			if s.cursor > 0 {
				s.cursor--
			}
			return s, nil
		case "down":
			if s.cursor < len(s.results)-1 {
				s.cursor++
			}
			return s, nil
		case "tab":
			s.kind = (s.kind + 1) % len(s.kinds)
			s.cursor = 0
			s.refresh()
			return s, nil
		case "shift+tab":
			s.kind = (s.kind - 1 + len(s.kinds)) % len(s.kinds)
			s.cursor = 0
			s.refresh()
			return s, nil
		case "enter":
			return s, s.open()
		}
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		s.cursor = 0
		s.notice = ""
		s.refresh()
	}
	return s, cmd
}

// open navigates to the selected result. Tools have no screen, so their
// link is shown instead.
func (s *SearchScreen) open() tea.Cmd {
	if s.cursor >= len(s.results) {
		return nil
	}
	it := s.results[s.cursor]
	var msg nav.GoMsg
	switch it.Kind {
	case catalog.KindModule:
		msg = nav.GoMsg{Section: nav.Curriculum, Focus: string(progress.KeyFor(it.TrackID, it.Title))}
	case catalog.KindProject:
		msg = nav.GoMsg{Section: nav.Projects, Focus: it.Title}
	default:
		s.notice = it.Title + ": " + it.URL
		return nil
	}
	return func() tea.Msg { return msg }
}

func (s *SearchScreen) View(width, height int) string {
	w := components.ContentWidth(width, 80)
	s.input.SetWidth(w - 4)

	filters := make([]string, len(s.kinds))
	for i, k := range s.kinds {
		label := strings.ToUpper(string(k[:1])) + string(k[1:])
		if i == s.kind {
			filters[i] = theme.Badge.Render(label)
		} else {
			filters[i] = theme.Hint.Render(label)
		}
	}

	var list strings.Builder
	if len(s.results) == 0 {
		list.WriteString(theme.Hint.Render(fmt.Sprintf("No results for %q", s.input.Trimmed())))
	}
	for i, it := range s.results {
		if i > 0 {
			list.WriteString("\n")
		}
		list.WriteString(renderItem(it, i == s.cursor))
	}

	parts := []string{
		components.Card(s.input.View(), w),
		strings.Join(filters, " "),
		"",
		list.String(),
	}
	if s.notice != "" {
		parts = append(parts, "", lipgloss.NewStyle().Foreground(theme.Secondary).Render(s.notice))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

func renderItem(it catalog.Item, selected bool) string {
	var icon, detail string
	switch it.Kind {
	case catalog.KindModule:
		icon = "📘"
		detail = it.Track + " · " + it.Duration
	case catalog.KindProject:
		icon = "🚀"
		detail = it.Level + " project"
	default:
		icon = "🔗"
		detail = it.URL
	}
	title := theme.Unselected.Render(it.Title)
	cursor := "  "
	if selected {
		title = theme.Selected.Render(it.Title)
		cursor = lipgloss.NewStyle().Foreground(theme.Primary).Render("▸ ")
	}
	return cursor + icon + " " + title + "  " + theme.Hint.Render(detail)
}
