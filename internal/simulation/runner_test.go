package simulation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/alphaquant/academy/internal/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type memRecorder struct {
	mu   sync.Mutex
	runs []store.SimulationRunData
	err  error
}

func (m *memRecorder) AppendSimulationRun(_ context.Context, data store.SimulationRunData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, data)
	return m.err
}

func (m *memRecorder) all() []store.SimulationRunData {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]store.SimulationRunData, len(m.runs))
	copy(out, m.runs)
	return out
}

func fastConfig() Config {
	return Config{Step: DefaultStep, Tick: time.Millisecond, SettleDelay: 30 * time.Millisecond}
}

// drain collects updates until the runner publishes an idle state.
func drain(t *testing.T, r *Runner) []State {
	t.Helper()
	var seen []State
	deadline := time.After(5 * time.Second)
	for {
		select {
		case s := <-r.Updates():
			seen = append(seen, s)
			if s.Phase == PhaseIdle {
				return seen
			}
		case <-deadline:
			t.Fatalf("runner did not settle; last states: %+v", seen)
		}
	}
}

func TestRunner_RunsToCompletion(t *testing.T) {
	rec := &memRecorder{}
	r := NewRunner(fastConfig(), WithRecorder(rec))
	defer r.Close()

	require.True(t, r.Start(context.Background()))
	seen := drain(t, r)
	r.Wait()

	require.NotEmpty(t, seen)

	prev := 0
	for _, s := range seen {
		assert.GreaterOrEqual(t, s.Progress, prev, "progress must not decrease")
		prev = s.Progress
	}

	final := r.State()
	assert.Equal(t, PhaseIdle, final.Phase)
	assert.Equal(t, 100, final.Progress)
	require.NotNil(t, final.Results)
	assert.Equal(t, CannedResults(), *final.Results)

	runs := rec.all()
	require.Len(t, runs, 1)
	assert.True(t, runs[0].Completed)
	assert.Equal(t, 100, runs[0].FinalProgress)
	assert.Equal(t, Ticker, runs[0].Ticker)
	assert.NotEmpty(t, runs[0].RunID)
}

func TestRunner_StaysSimulatingThroughSettleDelay(t *testing.T) {
	cfg := fastConfig()
	cfg.SettleDelay = 80 * time.Millisecond
	r := NewRunner(cfg)
	defer r.Close()

	require.True(t, r.Start(context.Background()))

	var reached time.Time
	deadline := time.After(5 * time.Second)
	for {
		select {
		case s := <-r.Updates():
			if s.Progress == 100 && reached.IsZero() {
				reached = time.Now()
				assert.True(t, s.IsSimulating(), "should still be simulating at 100")
			}
			if s.Phase == PhaseIdle {
				require.False(t, reached.IsZero(), "went idle before reaching 100")
				assert.GreaterOrEqual(t, time.Since(reached), cfg.SettleDelay-5*time.Millisecond)
				return
			}
		case <-deadline:
			t.Fatal("runner did not settle")
		}
	}
}

func TestRunner_StartIgnoredWhileRunning(t *testing.T) {
	r := NewRunner(Config{Step: 1, Tick: 5 * time.Millisecond, SettleDelay: time.Millisecond})
	defer r.Close()

	require.True(t, r.Start(context.Background()))
	assert.False(t, r.Start(context.Background()), "second start should be ignored")
	assert.True(t, r.State().IsSimulating())
}

func TestRunner_CanRestartAfterSettle(t *testing.T) {
	r := NewRunner(fastConfig())
	defer r.Close()

	require.True(t, r.Start(context.Background()))
	drain(t, r)
	r.Wait()

	require.True(t, r.Start(context.Background()))
	seen := drain(t, r)
	r.Wait()
	require.NotEmpty(t, seen)
	assert.Equal(t, 100, r.State().Progress)
}

func TestRunner_CloseMidRunReleasesTimer(t *testing.T) {
	rec := &memRecorder{}
	r := NewRunner(Config{Step: 1, Tick: 10 * time.Millisecond, SettleDelay: time.Second}, WithRecorder(rec))

	require.True(t, r.Start(context.Background()))
	time.Sleep(25 * time.Millisecond)
	r.Close()

	final := r.State()
	assert.Equal(t, PhaseIdle, final.Phase)
	assert.Nil(t, final.Results)
	assert.Less(t, final.Progress, 100)

	runs := rec.all()
	require.Len(t, runs, 1)
	assert.False(t, runs[0].Completed)

	assert.False(t, r.Start(context.Background()), "closed runner must not start")
	// goleak in TestMain verifies no timer goroutine survived.
}

func TestRunner_ContextCancelAborts(t *testing.T) {
	r := NewRunner(Config{Step: 1, Tick: 10 * time.Millisecond, SettleDelay: time.Second})
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	require.True(t, r.Start(ctx))
	cancel()
	r.Wait()

	assert.False(t, r.State().IsSimulating())
	assert.Nil(t, r.State().Results)
}

func TestRunner_CloseDuringSettleKeepsResults(t *testing.T) {
	r := NewRunner(Config{Step: 50, Tick: time.Millisecond, SettleDelay: 10 * time.Second})

	require.True(t, r.Start(context.Background()))
	deadline := time.After(5 * time.Second)
	for r.State().Phase != PhaseComplete {
		select {
		case <-deadline:
			t.Fatal("never reached complete")
		case <-time.After(time.Millisecond):
		}
	}

	start := time.Now()
	r.Close()
	assert.Less(t, time.Since(start), time.Second, "close should cut the settle delay short")
	assert.Equal(t, PhaseIdle, r.State().Phase)
	assert.NotNil(t, r.State().Results)
}

func TestRunner_RecorderErrorIsNotFatal(t *testing.T) {
	rec := &memRecorder{err: errors.New("db locked")}
	r := NewRunner(fastConfig(), WithRecorder(rec))
	defer r.Close()

	require.True(t, r.Start(context.Background()))
	drain(t, r)
	r.Wait()
	assert.Len(t, rec.all(), 1)
	assert.Equal(t, 100, r.State().Progress)
}

func TestCloseWithoutStart(t *testing.T) {
	r := NewRunner(DefaultConfig())
	r.Close()
	r.Close()
}
