package analyst

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/alphaquant/academy/internal/simulation"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fastRunner() *simulation.Runner {
	return simulation.NewRunner(simulation.Config{Step: 25, Tick: time.Millisecond})
}

func key(s string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
}

// drain feeds runner updates back into the screen until the chain stops.
func drain(t *testing.T, s *AnalystScreen, cmd tea.Cmd) {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		require.Less(t, i, 100, "update chain did not terminate")
		msg := cmd()
		if msg == nil {
			return
		}
		_, cmd = s.Update(msg)
	}
}

func TestStartRunsToCompletion(t *testing.T) {
	s := New(fastRunner())
	defer s.Close()

	_, cmd := s.Update(key("s"))
	require.NotNil(t, cmd)
	assert.Equal(t, tabBacktest, s.tabs.Active)
	assert.True(t, s.sim.IsSimulating())

	drain(t, s, cmd)

	assert.Equal(t, simulation.PhaseIdle, s.sim.Phase)
	assert.Equal(t, 100, s.sim.Progress)
	require.NotNil(t, s.sim.Results)

	view := s.View(120, 50)
	assert.Contains(t, view, "SIMULATION COMPLETE")
	assert.Contains(t, view, "33,155.44")
	assert.Contains(t, view, "READY FOR PROPOSALS")
}

func TestStartWhileRunningIsIgnored(t *testing.T) {
	r := simulation.NewRunner(simulation.Config{Step: 1, Tick: time.Hour})
	s := New(r)
	defer s.Close()

	_, cmd := s.Update(key("s"))
	require.NotNil(t, cmd)
	_, again := s.Update(key("s"))
	assert.Nil(t, again)
	assert.Contains(t, s.View(80, 40), "Simulating... 0%")
}

func TestEnterOnlyStartsFromBacktestTab(t *testing.T) {
	s := New(fastRunner())
	defer s.Close()

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, s.sim.Started())

	s.Update(key("4"))
	require.Equal(t, tabBacktest, s.tabs.Active)
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	drain(t, s, cmd)
}

func TestCloseReleasesWaitingCommand(t *testing.T) {
	r := simulation.NewRunner(simulation.Config{Step: 1, Tick: time.Hour})
	s := New(r)

	_, cmd := s.Update(key("s"))
	require.NotNil(t, cmd)
	<-r.Updates() // consume the start state so the command blocks

	got := make(chan tea.Msg, 1)
	go func() { got <- cmd() }()
	s.Close()
	s.Close()

	select {
	case msg := <-got:
		if msg != nil {
			_, isUpdate := msg.(simUpdateMsg)
			assert.True(t, isUpdate)
		}
	case <-time.After(time.Second):
		t.Fatal("waiting command not released by Close")
	}
	assert.False(t, r.Start(t.Context()))
}

func TestViewBeforeStart(t *testing.T) {
	s := New(fastRunner())
	defer s.Close()

	view := s.View(80, 40)
	assert.Contains(t, view, "Autonomous Control Center")
	assert.Contains(t, view, "Waiting for input")

	s.Update(key("2"))
	assert.Contains(t, s.View(80, 40), "Model Consensus Hub")
	s.Update(key("3"))
	assert.Contains(t, s.View(80, 40), "Institutional Guardrails")
	s.Update(key("4"))
	view = s.View(80, 40)
	assert.Contains(t, view, "Simulation Sandbox")
	assert.Contains(t, view, "2.14")
}
