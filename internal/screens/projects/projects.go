// Package projects shows the three sample projects, one per tab.
package projects

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/alphaquant/academy/internal/catalog"
	"github.com/alphaquant/academy/internal/screen"
	"github.com/alphaquant/academy/internal/ui/components"
	"github.com/alphaquant/academy/internal/ui/layout"
	"github.com/alphaquant/academy/internal/ui/theme"
)

// ProjectsScreen renders one project at a time.
type ProjectsScreen struct {
	projects []catalog.Project
	tabs     components.Tabs
}

var _ screen.Screen = (*ProjectsScreen)(nil)

// New creates the projects screen.
func New() *ProjectsScreen {
	ps := catalog.Projects()
	labels := make([]string, len(ps))
	for i, p := range ps {
		labels[i] = p.Level
	}
	return &ProjectsScreen{projects: ps, tabs: components.NewTabs(labels...)}
}

// Select shows the project with the given title, if present.
func (s *ProjectsScreen) Select(title string) {
	for i, p := range s.projects {
		if p.Title == title {
			s.tabs.Active = i
		}
	}
}

func (s *ProjectsScreen) Init() tea.Cmd { return nil }
func (s *ProjectsScreen) Title() string { return "Projects" }

func (s *ProjectsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Project"},
		{Key: "1-3", Description: "Jump"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProjectsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.tabs, cmd = s.tabs.Update(msg)
	return s, cmd
}

func (s *ProjectsScreen) View(width, height int) string {
	if len(s.projects) == 0 {
		return ""
	}
	p := s.projects[s.tabs.Active]
	cw := components.ContentWidth(width, 90)

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	head := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var b strings.Builder
	b.WriteString(s.tabs.View() + "\n\n")
	b.WriteString(theme.Badge.Render(strings.ToUpper(p.Level)) + "  " + theme.Title.Render(p.Title) + "\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(cw).Render(p.Description) + "\n\n")

	b.WriteString(head.Render("Features") + "\n")
	for _, f := range p.Features {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("  ✓ ") + f + "\n")
	}
	b.WriteString("\n" + head.Render("Skills") + "  ")
	skills := make([]string, len(p.Skills))
	for i, sk := range p.Skills {
		skills[i] = lipgloss.NewStyle().Foreground(theme.Accent).Render("#" + sk)
	}
	b.WriteString(strings.Join(skills, " ") + "\n\n")

	b.WriteString(head.Render("Preview") + "\n")
	b.WriteString(components.Card(lipgloss.NewStyle().Foreground(theme.Secondary).Render(p.Preview), cw) + "\n")
	b.WriteString(dim.Render("File: ") + p.File + "\n")
	b.WriteString(dim.Render("Run:  ") + lipgloss.NewStyle().Foreground(theme.Primary).Render("$ "+p.Command))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		lipgloss.NewStyle().Width(cw).Render(b.String()))
}
