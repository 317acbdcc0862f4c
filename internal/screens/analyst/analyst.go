// Package analyst is the Alpha Arena screen: feature tabs plus the
// backtest sandbox that drives a simulation run.
package analyst

import (
	"context"
	"sync"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/alphaquant/academy/internal/screen"
	"github.com/alphaquant/academy/internal/simulation"
	"github.com/alphaquant/academy/internal/ui/components"
	"github.com/alphaquant/academy/internal/ui/layout"
)

const (
	tabOverview = iota
	tabModels
	tabRisk
	tabBacktest
)

// simUpdateMsg carries a state published by the runner.
type simUpdateMsg simulation.State

// AnalystScreen owns one simulation runner for its lifetime.
type AnalystScreen struct {
	runner *simulation.Runner
	tabs   components.Tabs
	sim    simulation.State

	done      chan struct{}
	closeOnce sync.Once
}

var (
	_ screen.Screen          = (*AnalystScreen)(nil)
	_ screen.Closer          = (*AnalystScreen)(nil)
	_ screen.KeyHintProvider = (*AnalystScreen)(nil)
)

// New creates the analyst screen around runner. The screen closes the
// runner when it leaves the stack.
func New(runner *simulation.Runner) *AnalystScreen {
	return &AnalystScreen{
		runner: runner,
		tabs:   components.NewTabs("Overview", "Models", "Risk", "Backtest"),
		sim:    runner.State(),
		done:   make(chan struct{}),
	}
}

func (s *AnalystScreen) Init() tea.Cmd { return nil }
func (s *AnalystScreen) Title() string { return "AI Analyst" }

// Close stops any run in flight and releases the waiting command.
func (s *AnalystScreen) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.runner.Close()
	})
}

func (s *AnalystScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Switch tab"},
		{Key: "1-4", Description: "Jump"},
	}
	if !s.sim.IsSimulating() {
		hints = append(hints, layout.KeyHint{Key: "S", Description: "Start simulation"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *AnalystScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case simUpdateMsg:
		s.sim = simulation.State(msg)
		if s.sim.Phase == simulation.PhaseIdle {
			return s, nil
		}
		return s, s.waitForUpdate()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "s":
			s.tabs.Active = tabBacktest
			return s, s.start()
		case "enter":
			if s.tabs.Active == tabBacktest {
				return s, s.start()
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.tabs, cmd = s.tabs.Update(msg)
	return s, cmd
}

// start begins a run unless one is in flight.
func (s *AnalystScreen) start() tea.Cmd {
	if !s.runner.Start(context.Background()) {
		return nil
	}
	s.sim = s.runner.State()
	return s.waitForUpdate()
}

// waitForUpdate blocks for the next runner state, or returns nil once the
// screen is closed.
func (s *AnalystScreen) waitForUpdate() tea.Cmd {
	updates, done := s.runner.Updates(), s.done
	return func() tea.Msg {
		select {
		case st := <-updates:
			return simUpdateMsg(st)
		case <-done:
			return nil
		}
	}
}

func (s *AnalystScreen) View(width, height int) string {
	header := renderHeader()
	body := s.renderTab(width)
	term := renderTerminal(s.sim, width)

	var content string
	if width >= 110 {
		half := (width - 4) / 2
		left := lipgloss.NewStyle().Width(half).Render(s.tabs.View() + "\n\n" + body)
		right := lipgloss.NewStyle().Width(half).Render(term)
		content = lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	} else {
		content = s.tabs.View() + "\n\n" + body + "\n\n" + term
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, header+"\n\n"+content)
}

func (s *AnalystScreen) renderTab(width int) string {
	switch s.tabs.Active {
	case tabModels:
		return renderModels()
	case tabRisk:
		return renderRisk()
	case tabBacktest:
		return renderBacktest(s.sim)
	default:
		return renderOverview(width)
	}
}
