// Package dashboard shows XP, streaks, per-track progress, achievements and
// the leaderboard.
package dashboard

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/alphaquant/academy/internal/catalog"
	"github.com/alphaquant/academy/internal/gamification"
	"github.com/alphaquant/academy/internal/progress"
	"github.com/alphaquant/academy/internal/screen"
	"github.com/alphaquant/academy/internal/ui/components"
	"github.com/alphaquant/academy/internal/ui/theme"
)

// DashboardScreen recomputes the profile from the tracker on every render.
type DashboardScreen struct {
	tracker *progress.Tracker
	now     func() time.Time
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates the dashboard. A nil tracker shows an empty profile.
func New(tracker *progress.Tracker) *DashboardScreen {
	return &DashboardScreen{tracker: tracker, now: time.Now}
}

func (s *DashboardScreen) Init() tea.Cmd                           { return nil }
func (s *DashboardScreen) Title() string                           { return "Learning Dashboard" }
func (s *DashboardScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }

func (s *DashboardScreen) profile() gamification.Profile {
	var st progress.State
	if s.tracker != nil {
		st = s.tracker.State()
	}
	return gamification.Build(st, catalog.Tracks(), s.now())
}

func (s *DashboardScreen) View(width, height int) string {
	p := s.profile()
	w := components.ContentWidth(width, 100)

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		statBox("Level", strconv.Itoa(p.XP.Level), fmt.Sprintf("%d XP", p.XP.Total)),
		statBox("Streak", fmt.Sprintf("%d days", p.Streak.Current), fmt.Sprintf("best %d", p.Streak.Longest)),
		statBox("Modules", fmt.Sprintf("%d/%d", p.Summary.Completed, p.Summary.Total), fmt.Sprintf("%.0f%%", p.Summary.Percent())),
		statBox("Badges", strconv.Itoa(len(gamification.Unlocked(p.Achievements))), fmt.Sprintf("of %d", len(p.Achievements))),
	)

	level := components.NewProgressBar(
		fmt.Sprintf("Level %d", p.XP.Level), p.XP.LevelPercent(), false, w-24,
	).View() + theme.Hint.Render(fmt.Sprintf("  %d XP to next level", p.XP.ToNextLevel()))

	sections := []string{
		top,
		"",
		level,
		"",
		components.Heading("Track Progress"),
		renderTracks(p.Tracks, w),
		"",
	}
	if w >= 80 {
		half := w/2 - 1
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(half).Render(components.Heading("Achievements")+"\n"+renderAchievements(p.Achievements)),
			"  ",
			lipgloss.NewStyle().Width(half).Render(components.Heading("Leaderboard")+"\n"+renderLeaderboard(p.Leaderboard)),
		))
	} else {
		sections = append(sections,
			components.Heading("Achievements"), renderAchievements(p.Achievements), "",
			components.Heading("Leaderboard"), renderLeaderboard(p.Leaderboard))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

func statBox(label, value, sub string) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.Hint.Render(label),
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(value),
		theme.Hint.Render(sub),
	)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(18).
		Align(lipgloss.Center).
		MarginRight(1).
		Render(body)
}

func renderTracks(tracks []gamification.TrackProgress, width int) string {
	var b strings.Builder
	for i, t := range tracks {
		if i > 0 {
			b.WriteString("\n")
		}
		label := fmt.Sprintf("%d. %-24s", t.TrackID, t.Title)
		pct := 0.0
		if t.Summary.Total > 0 {
			pct = float64(t.Summary.Completed) / float64(t.Summary.Total)
		}
		b.WriteString(components.NewProgressBar(label, pct, false, width-8).View())
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  %d/%d", t.Summary.Completed, t.Summary.Total)))
	}
	return b.String()
}

func renderAchievements(all []gamification.Achievement) string {
	var b strings.Builder
	for i, a := range all {
		if i > 0 {
			b.WriteString("\n")
		}
		var name string
		if a.Unlocked {
			name = theme.Selected.Render(a.Icon + " " + a.Name)
		} else {
			name = lipgloss.NewStyle().Foreground(theme.TextDim).Render("🔒 " + a.Name)
		}
		b.WriteString(name + theme.Hint.Render(fmt.Sprintf("  +%d XP", a.XP)) + "\n")
		b.WriteString("   " + theme.Hint.Render(a.Description))
	}
	return b.String()
}

func renderLeaderboard(entries []gamification.Entry) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("#", "Name", "XP").
		StyleFunc(func(row, col int) lipgloss.Style {
			st := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return st.Foreground(theme.Secondary).Bold(true)
			case entries[row].IsUser:
				st = st.Foreground(theme.Primary).Bold(true)
			default:
				st = st.Foreground(theme.Text)
			}
			if col == 2 {
				st = st.Align(lipgloss.Right)
			}
			return st
		})
	for _, e := range entries {
		t.Row(strconv.Itoa(e.Rank), e.Name, strconv.Itoa(e.XP))
	}
	return t.String()
}
