// Package welcome is the splash screen shown at startup.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/alphaquant/academy/internal/router"
	"github.com/alphaquant/academy/internal/screen"
	"github.com/alphaquant/academy/internal/ui/theme"
)

const frameInterval = 100 * time.Millisecond

// stage is how much of the splash has been revealed.
type stage int

const (
	stageChart  stage = iota // candles only
	stageTape                // ticker tape scrolls in
	stageBanner              // banner and prompt; final
)

// Frames at which each later stage begins.
var stageStart = [...]int{stageTape: 5, stageBanner: 15}

const chartArt = `╭──────────────────╮
│             ╻    │
│        ╻   ┃┃ ╻  │
│    ╻  ┃┃ ╻ ┃┃ ┃┃ │
│   ┃┃  ┃╹ ┃┃ ╹ ┃╹ │
│   ╹╹  ╹  ╹╹   ╹  │
╰──────────────────╯`

type quote struct {
	symbol string
	up     bool
}

var tape = []quote{
	{"SPY", true}, {"QQQ", false}, {"AAPL", true},
	{"NVDA", true}, {"BTC", true}, {"ETH", false},
}

type frameMsg struct{}

// WelcomeScreen animates the splash and waits for a key, then replaces
// itself with the screen built by next.
type WelcomeScreen struct {
	next  func() screen.Screen
	frame int
	done  bool
}

var (
	_ screen.Screen        = (*WelcomeScreen)(nil)
	_ screen.InputCapturer = (*WelcomeScreen)(nil)
)

func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

// CapturesInput holds back global shortcuts while the splash is up; any
// key continues to home instead.
func (w *WelcomeScreen) CapturesInput() bool { return !w.done }

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return nextFrame() }

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (w *WelcomeScreen) stage() stage {
	switch {
	case w.frame >= stageStart[stageBanner]:
		return stageBanner
	case w.frame >= stageStart[stageTape]:
		return stageTape
	default:
		return stageChart
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case frameMsg:
		if w.done {
			return w, nil
		}
		// The tape keeps scrolling until a key is pressed.
		w.frame++
		return w, nextFrame()
	case tea.KeyPressMsg:
		return w, w.leave()
	}
	return w, nil
}

func (w *WelcomeScreen) leave() tea.Cmd {
	if w.done {
		return nil
	}
	w.done = true
	home := w.next()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: home} }
}

func (w *WelcomeScreen) View(width, height int) string {
	rows := []string{lipgloss.NewStyle().Foreground(theme.Secondary).Render(chartArt)}
	st := w.stage()
	if st >= stageTape {
		rows = append(rows, w.tape())
	}
	if st >= stageBanner {
		rows = append(rows,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Master Python for Finance"),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(rows, "\n"))
}

// tape shifts one symbol left every three frames.
func (w *WelcomeScreen) tape() string {
	shift := w.frame / 3
	parts := make([]string, len(tape))
	for i := range tape {
		q := tape[(i+shift)%len(tape)]
		if q.up {
			parts[i] = theme.Up.Render(q.symbol + " ▲")
		} else {
			parts[i] = theme.Down.Render(q.symbol + " ▼")
		}
	}
	return strings.Join(parts, "  ")
}
