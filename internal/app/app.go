// Package app is the root Bubble Tea model: it owns the screen stack,
// section navigation, global shortcuts and the theme.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/alphaquant/academy/internal/assistant"
	"github.com/alphaquant/academy/internal/catalog"
	"github.com/alphaquant/academy/internal/gamification"
	"github.com/alphaquant/academy/internal/nav"
	"github.com/alphaquant/academy/internal/progress"
	"github.com/alphaquant/academy/internal/router"
	"github.com/alphaquant/academy/internal/screen"
	"github.com/alphaquant/academy/internal/simulation"
	"github.com/alphaquant/academy/internal/store"
	"github.com/alphaquant/academy/internal/ui/components"
	"github.com/alphaquant/academy/internal/ui/layout"
	"github.com/alphaquant/academy/internal/ui/theme"
)

// Deps are the services the screens run on.
type Deps struct {
	Tracker        *progress.Tracker
	Prefs          store.PreferenceRepo
	Assistant      *assistant.Assistant
	Simulation     simulation.Config
	Recorder       simulation.Recorder
	MarketInterval time.Duration
	MarketPaused   bool
	Splash         bool
	Notice         string
	Logger         *zap.Logger
}

// themeSavedMsg reports the outcome of persisting the theme choice.
type themeSavedMsg struct{ err error }

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   Deps
	router *router.Router
	nav    nav.State
	menu   components.Menu

	mode   theme.Mode
	darkBG bool

	width  int
	height int
}

// New creates the root model. The stored theme preference is read from
// deps.Prefs; a missing or unreadable value means system.
func New(ctx context.Context, deps Deps) AppModel {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Assistant == nil {
		deps.Assistant = assistant.New(nil, assistant.WithLogger(deps.Logger))
	}

	m := AppModel{
		deps:   deps,
		nav:    nav.New(),
		mode:   loadMode(ctx, deps),
		darkBG: true,
	}
	m.menu = m.sectionMenu()
	m.applyTheme()

	if deps.Splash {
		m.router = router.New(m.splash())
	} else {
		m.router = router.New(m.homeScreen())
	}
	return m
}

func loadMode(ctx context.Context, deps Deps) theme.Mode {
	if deps.Prefs == nil {
		return theme.ModeSystem
	}
	v, ok, err := deps.Prefs.Preference(ctx, theme.PreferenceKey)
	if err != nil {
		deps.Logger.Warn("load theme preference failed", zap.Error(err))
		return theme.ModeSystem
	}
	if !ok {
		return theme.ModeSystem
	}
	mode, err := theme.ParseMode(v)
	if err != nil {
		deps.Logger.Warn("ignoring stored theme", zap.String("value", v))
		return theme.ModeSystem
	}
	return mode
}

func (m *AppModel) applyTheme() {
	theme.Apply(theme.PaletteFor(m.mode, m.darkBG))
}

// sectionMenu is the Ctrl+N overlay listing every section.
func (m AppModel) sectionMenu() components.Menu {
	items := make([]components.MenuItem, len(nav.Sections))
	for i, s := range nav.Sections {
		section := s
		items[i] = components.MenuItem{
			Label: section.Label(),
			Action: func() tea.Cmd {
				return func() tea.Msg { return nav.GoMsg{Section: section} }
			},
		}
	}
	return components.NewMenu(items)
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(tea.RequestBackgroundColor, m.router.Active().Init())
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.BackgroundColorMsg:
		m.darkBG = msg.IsDark()
		m.applyTheme()
		return m, nil

	case themeSavedMsg:
		if msg.err != nil {
			m.deps.Logger.Warn("save theme preference failed", zap.Error(msg.err))
		}
		return m, nil

	case nav.GoMsg:
		return m, m.open(msg)

	case tea.KeyPressMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// handleKey processes global shortcuts. It reports false when the key
// belongs to the active screen.
func (m *AppModel) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	key := msg.String()
	if key == "ctrl+c" {
		m.router.CloseAll()
		return tea.Quit, true
	}

	if m.nav.MenuOpen {
		switch key {
		case "esc", "ctrl+n":
			m.nav = nav.CloseMenu(m.nav)
			return nil, true
		}
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return cmd, true
	}

	if c, ok := m.router.Active().(screen.InputCapturer); ok && c.CapturesInput() {
		return nil, false
	}

	switch key {
	case "esc":
		if m.router.Depth() > 1 {
			m.router.Pop()
			if m.router.Depth() == 1 {
				m.nav = nav.SetActive(m.nav, nav.Home)
			}
		}
		return nil, true
	case "ctrl+k":
		return m.open(nav.GoMsg{Section: nav.Search}), true
	case "ctrl+n":
		m.nav = nav.ToggleMenu(m.nav)
		return nil, true
	case "ctrl+t":
		return m.toggleTheme(), true
	}
	return nil, false
}

// toggleTheme flips the theme and persists the choice in the background.
func (m *AppModel) toggleTheme() tea.Cmd {
	m.mode = theme.Toggle(m.mode)
	m.applyTheme()
	if m.deps.Prefs == nil {
		return nil
	}
	prefs, mode := m.deps.Prefs, m.mode
	return func() tea.Msg {
		return themeSavedMsg{err: prefs.SetPreference(context.Background(), theme.PreferenceKey, string(mode))}
	}
}

// open activates a section. Home unwinds the stack; every other section
// sits directly above home.
func (m *AppModel) open(msg nav.GoMsg) tea.Cmd {
	m.nav = nav.SetActive(m.nav, msg.Section)
	m.router.PopToRoot()
	if msg.Section == nav.Home {
		return nil
	}
	s := m.sectionScreen(msg.Section, msg.Focus)
	if s == nil {
		return nil
	}
	return m.router.Push(s)
}

// Section returns the active section.
func (m AppModel) Section() nav.Section { return m.nav.Active }

// Mode returns the theme mode.
func (m AppModel) Mode() theme.Mode { return m.mode }

func (m AppModel) headerStats() layout.HeaderStats {
	if m.deps.Tracker == nil {
		return layout.HeaderStats{Level: 1}
	}
	p := gamification.Build(m.deps.Tracker.State(), catalog.Tracks(), time.Now())
	return layout.HeaderStats{Level: p.XP.Level, XP: p.XP.Total, Streak: p.Streak.Current}
}

func (m AppModel) footerHints() []layout.KeyHint {
	if m.nav.MenuOpen {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Open"},
			{Key: "Esc", Description: "Close menu"},
		}
	}
	var hints []layout.KeyHint
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		hints = []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+K", Description: "Search"},
		layout.KeyHint{Key: "Ctrl+N", Description: "Menu"},
		layout.KeyHint{Key: "Ctrl+T", Description: "Theme"},
	)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	if active.Title() == "" {
		// splash draws the whole screen
		v.SetContent(active.View(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(active.Title(), m.headerStats(), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	var content string
	if m.nav.MenuOpen {
		menu := components.Card(components.Heading("Sections")+"\n\n"+m.menu.View(), 36)
		content = lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, menu)
	} else {
		content = m.router.View(m.width, contentHeight)
	}

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and closes every screen on exit.
func Run(ctx context.Context, deps Deps) error {
	p := tea.NewProgram(New(ctx, deps), tea.WithContext(ctx))
	final, err := p.Run()
	if fm, ok := final.(AppModel); ok {
		fm.router.CloseAll()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
