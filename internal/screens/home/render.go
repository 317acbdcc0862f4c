package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/alphaquant/academy/internal/catalog"
	"github.com/alphaquant/academy/internal/progress"
	"github.com/alphaquant/academy/internal/ui/components"
	"github.com/alphaquant/academy/internal/ui/theme"
)

const titleCompact = "A L P H A · Q U A N T · A C A D E M Y"

const titleTagline = "Master Python for Finance: from fundamentals to AI trading systems"

// renderTitle returns the styled title block.
func renderTitle(cw int, compact bool) string {
	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(titleCompact)
	if compact {
		return center(title, cw)
	}
	tagline := theme.Subtitle.Render(titleTagline)
	return center(title+"\n\n"+tagline, cw)
}

// renderStats renders the headline numbers in a bordered box matching content width.
func renderStats(s catalog.Stats, cw int, compact bool) string {
	num := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	item := func(n int, label string) string {
		return num.Render(fmt.Sprintf("%d", n)) + " " + dim.Render(label)
	}
	items := []string{
		item(s.Notebooks, "notebooks"),
		item(s.Projects, "projects"),
		item(s.Datasets, "datasets"),
	}
	if !compact {
		items = append(items,
			item(s.Hours, "hours"),
			item(s.Exercises, "exercises"),
			num.Render(fmt.Sprintf("%d+", s.LinesOfCode))+" "+dim.Render("lines"),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(strings.Join(items, "   "))
}

func renderProgress(s progress.Summary, cw int) string {
	label := fmt.Sprintf("%d/%d modules", s.Completed, s.Total)
	bar := components.NewProgressBar(label, s.Percent()/100, true, cw-4)
	return center(bar.View(), cw)
}

func renderMenu(m components.Menu, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Render(m.View())
}

func renderNotice(text string, cw int) string {
	return center(lipgloss.NewStyle().Foreground(theme.Accent).Render(text), cw)
}

// renderLinks shows where the notebooks live. Links are displayed only.
func renderLinks(cw int) string {
	dim := theme.Hint
	return center(dim.Render("Launch notebooks: "+catalog.BinderURL)+"\n"+
		dim.Render("Source: "+catalog.RepoURL), cw)
}

func center(s string, cw int) string {
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(s)
}
