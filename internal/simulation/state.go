// Package simulation drives the canned AI analyst backtest: a progress bar
// that climbs to 100, attaches fixed results, and settles back to idle.
package simulation

import "time"

// Phase is the lifecycle position of a simulation.
type Phase int

const (
	PhaseIdle     Phase = iota // no run in progress; a new run may start
	PhaseRunning               // progress is advancing
	PhaseComplete              // progress reached 100; waiting to settle
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

const (
	DefaultStep        = 5
	DefaultTick        = 100 * time.Millisecond
	DefaultSettleDelay = 2 * time.Second

	// Ticker and Iterations describe the canned backtest.
	Ticker     = "AAPL"
	Iterations = 100

	// EstimatedSharpe is shown on the backtest panel before a run.
	EstimatedSharpe = 2.14

	modelsReadyAt = 20
	midpointAt    = 50
)

// Results are the figures reported when a run completes.
type Results struct {
	TotalPnL    float64
	Sharpe      float64
	WinRate     float64 // percent
	MaxDrawdown float64 // percent
}

// CannedResults returns the fixed figures every completed run reports.
func CannedResults() Results {
	return Results{
		TotalPnL:    33155.44,
		Sharpe:      7.922,
		WinRate:     62.4,
		MaxDrawdown: 4.2,
	}
}

// MidpointReport is the interim report shown past the halfway mark.
type MidpointReport struct {
	Profit  float64
	WinRate float64
}

// State is a snapshot of a simulation. The zero value is idle at 0%.
type State struct {
	Phase    Phase
	Progress int // 0..100
	Results  *Results
}

// IsSimulating reports whether a run is in flight, including the settle
// period after progress reaches 100.
func (s State) IsSimulating() bool {
	return s.Phase == PhaseRunning || s.Phase == PhaseComplete
}

// Started reports whether any run has begun since startup.
func (s State) Started() bool {
	return s.IsSimulating() || s.Progress > 0
}

// ModelsReady reports whether model initialisation is shown as complete.
func (s State) ModelsReady() bool {
	return s.Progress > modelsReadyAt
}

// Midpoint returns the interim report once progress passes the halfway mark.
func (s State) Midpoint() (MidpointReport, bool) {
	if s.Progress <= midpointAt {
		return MidpointReport{}, false
	}
	return MidpointReport{Profit: 1448.04, WinRate: 62.0}, true
}

// Start begins a new run at 0%. Starting while a run is in flight is
// ignored and reports false.
func Start(s State) (State, bool) {
	if s.IsSimulating() {
		return s, false
	}
	return State{Phase: PhaseRunning}, true
}

// Advance moves a running simulation forward by step, clamped to 100.
// Reaching 100 attaches the results and enters PhaseComplete. States that
// are not running are returned unchanged.
func Advance(s State, step int) State {
	if s.Phase != PhaseRunning {
		return s
	}
	s.Progress += step
	if s.Progress >= 100 {
		s.Progress = 100
		r := CannedResults()
		s.Results = &r
		s.Phase = PhaseComplete
	}
	return s
}

// Settle returns a completed simulation to idle. Progress and results are
// kept until the next Start.
func Settle(s State) State {
	if s.Phase != PhaseComplete {
		return s
	}
	s.Phase = PhaseIdle
	return s
}

// Abort stops a run early. Results are dropped; progress is kept so the
// caller can report how far the run got.
func Abort(s State) State {
	if s.Phase != PhaseRunning {
		return Settle(s)
	}
	return State{Phase: PhaseIdle, Progress: s.Progress}
}
