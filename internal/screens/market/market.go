// Package market renders the simulated live ticker.
package market

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	mkt "github.com/alphaquant/academy/internal/market"
	"github.com/alphaquant/academy/internal/screen"
	"github.com/alphaquant/academy/internal/ui/layout"
	"github.com/alphaquant/academy/internal/ui/theme"
)

// tickMsg asks the feed for an update. gen is the feed generation when the
// tick was scheduled; ticks addressed to another screen's feed are dropped.
type tickMsg struct {
	feed *mkt.Feed
	gen  int
	at   time.Time
}

// MarketScreen shows the quotes and the live/paused toggle.
type MarketScreen struct {
	feed     *mkt.Feed
	interval time.Duration
}

var (
	_ screen.Screen          = (*MarketScreen)(nil)
	_ screen.KeyHintProvider = (*MarketScreen)(nil)
)

// New creates a market screen around feed, updating every interval.
func New(feed *mkt.Feed, interval time.Duration) *MarketScreen {
	if interval <= 0 {
		interval = mkt.DefaultInterval
	}
	return &MarketScreen{feed: feed, interval: interval}
}

func (s *MarketScreen) Init() tea.Cmd {
	return s.schedule()
}

func (s *MarketScreen) Title() string { return "Market" }

func (s *MarketScreen) KeyHints() []layout.KeyHint {
	action := "Pause"
	if !s.feed.Live() {
		action = "Resume"
	}
	return []layout.KeyHint{
		{Key: "Space", Description: action},
		{Key: "Esc", Description: "Back"},
	}
}

// schedule returns the next tick, or nil while paused.
func (s *MarketScreen) schedule() tea.Cmd {
	if !s.feed.Live() {
		return nil
	}
	feed, gen := s.feed, s.feed.Generation()
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return tickMsg{feed: feed, gen: gen, at: t}
	})
}

func (s *MarketScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.feed != s.feed || !s.feed.Update(msg.gen, msg.at) {
			return s, nil
		}
		return s, s.schedule()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "space", "p":
			s.feed.Toggle()
			return s, s.schedule()
		}
	}
	return s, nil
}

func (s *MarketScreen) View(width, height int) string {
	status := lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("● LIVE")
	if !s.feed.Live() {
		status = lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render("❚❚ PAUSED")
	}
	title := theme.Title.Render("Live Market Data") + "  " + status

	updated := "waiting for first update"
	if t := s.feed.Updated(); !t.IsZero() {
		updated = "updated " + t.Format("15:04:05")
	}

	quotes := s.feed.Quotes()
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("Symbol", "Name", "Price", "Change", "%").
		StyleFunc(func(row, col int) lipgloss.Style {
			st := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return st.Foreground(theme.Secondary).Bold(true)
			}
			if col >= 2 {
				st = st.Align(lipgloss.Right)
			}
			switch col {
			case 0:
				return st.Foreground(theme.Primary).Bold(true)
			case 3, 4:
				if quotes[row].Up() {
					return st.Foreground(theme.Success)
				}
				return st.Foreground(theme.Error)
			default:
				return st.Foreground(theme.Text)
			}
		})
	for _, q := range quotes {
		t.Row(q.Symbol, q.Name, "$"+mkt.FormatPrice(q.Price), formatChange(q), arrow(q)+" "+mkt.FormatPercent(q))
	}

	footer := theme.Hint.Render("Simulated data for educational purposes • Learn real data fetching in Track 4")
	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		theme.Hint.Render(updated),
		"",
		t.String(),
		"",
		tape(quotes, width),
		"",
		footer,
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func formatChange(q mkt.Quote) string {
	if q.Up() {
		return fmt.Sprintf("+%.2f", q.Change)
	}
	return fmt.Sprintf("%.2f", q.Change)
}

func arrow(q mkt.Quote) string {
	if q.Up() {
		return "▲"
	}
	return "▼"
}

// tape renders the compact one-line ticker, truncated to width.
func tape(quotes []mkt.Quote, width int) string {
	parts := make([]string, 0, len(quotes))
	for _, q := range quotes {
		st := theme.Up
		if !q.Up() {
			st = theme.Down
		}
		parts = append(parts, theme.Selected.Render(q.Symbol)+" "+st.Render(arrow(q)+mkt.FormatPercent(q)))
	}
	line := strings.Join(parts, "   ")
	if width > 0 && lipgloss.Width(line) > width {
		return lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}
