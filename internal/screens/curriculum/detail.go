package curriculum

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/alphaquant/academy/internal/catalog"
	"github.com/alphaquant/academy/internal/progress"
	"github.com/alphaquant/academy/internal/screen"
	"github.com/alphaquant/academy/internal/ui/layout"
	"github.com/alphaquant/academy/internal/ui/theme"
)

// ModuleDetailScreen shows one module with its notebook location.
type ModuleDetailScreen struct {
	tracker *progress.Tracker
	track   catalog.Track
	module  catalog.Module
	err     error
}

var _ screen.Screen = (*ModuleDetailScreen)(nil)
var _ screen.KeyHintProvider = (*ModuleDetailScreen)(nil)

func newModuleDetail(tracker *progress.Tracker, track catalog.Track, module catalog.Module) *ModuleDetailScreen {
	return &ModuleDetailScreen{tracker: tracker, track: track, module: module}
}

func (d *ModuleDetailScreen) Init() tea.Cmd { return nil }
func (d *ModuleDetailScreen) Title() string { return d.module.Name }

func (d *ModuleDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case ToggledMsg:
		d.err = msg.Err
	case tea.KeyPressMsg:
		if k := msg.String(); k == "space" || k == "x" || k == "enter" {
			return d, ToggleCmd(d.tracker, d.track.ID, d.module.Name)
		}
	}
	return d, nil
}

func (d *ModuleDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Toggle complete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *ModuleDetailScreen) View(width, height int) string {
	done := d.tracker.IsComplete(d.track.ID, d.module.Name)

	var b strings.Builder

	status := lipgloss.NewStyle().Foreground(theme.TextDim).Render("○ Not started")
	if done {
		status = lipgloss.NewStyle().Foreground(theme.Success).Render("● Completed")
		if at, ok := d.tracker.State().CompletedAt(d.track.ID, d.module.Name); ok {
			status += lipgloss.NewStyle().Foreground(theme.TextDim).Render(" on " + at.Format("Jan 2, 2006"))
		}
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  " + d.module.Name))
	b.WriteString("\n  " + status + "\n\n")

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text)

	b.WriteString(dimStyle.Render("  Track:     ") + valStyle.Render(fmt.Sprintf("%s %d. %s", d.track.Icon, d.track.ID, d.track.Title)) + "\n")
	b.WriteString(dimStyle.Render("  Duration:  ") + valStyle.Render(d.module.Duration) + "\n")
	b.WriteString(dimStyle.Render("  Notebook:  ") + valStyle.Render(d.module.File) + "\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Open it"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  In the browser: "+catalog.BinderURL) + "\n")
	b.WriteString(dimStyle.Render("  Locally:        jupyter lab "+d.module.File) + "\n")

	if d.err != nil {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("  ✗ "+d.err.Error()) + "\n")
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, "\n"+b.String())
}
