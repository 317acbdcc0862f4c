package simulation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alphaquant/academy/internal/store"
)

// Recorder persists finished runs.
type Recorder interface {
	AppendSimulationRun(ctx context.Context, data store.SimulationRunData) error
}

// Config holds the timing of a run.
type Config struct {
	Step        int
	Tick        time.Duration
	SettleDelay time.Duration
}

// DefaultConfig returns the standard step and timing.
func DefaultConfig() Config {
	return Config{
		Step:        DefaultStep,
		Tick:        DefaultTick,
		SettleDelay: DefaultSettleDelay,
	}
}

// Option configures a Runner.
type Option func(*Runner)

// WithRecorder records every finished run.
func WithRecorder(rec Recorder) Option {
	return func(r *Runner) { r.rec = rec }
}

// WithLogger sets the logger used for recording failures.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// Runner owns the timer behind a simulation. At most one timer goroutine is
// alive at a time; it exits on natural completion, on context cancellation,
// or when Close is called.
type Runner struct {
	cfg    Config
	rec    Recorder
	logger *zap.Logger

	mu      sync.Mutex
	state   State
	updates chan State
	cancel  context.CancelFunc
	closed  bool
	wg      sync.WaitGroup
}

// NewRunner creates an idle runner.
func NewRunner(cfg Config, opts ...Option) *Runner {
	if cfg.Step <= 0 {
		cfg.Step = DefaultStep
	}
	if cfg.Tick <= 0 {
		cfg.Tick = DefaultTick
	}
	if cfg.SettleDelay < 0 {
		cfg.SettleDelay = 0
	}
	r := &Runner{
		cfg:     cfg,
		logger:  zap.NewNop(),
		updates: make(chan State, 1),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns the latest state.
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Updates delivers published states. The channel holds only the most recent
// unread state, so a slow reader skips intermediate ticks but always sees
// the latest one.
func (r *Runner) Updates() <-chan State {
	return r.updates
}

// Start begins a run. It returns false, and starts nothing, when a run is
// already in flight or the runner is closed.
func (r *Runner) Start(ctx context.Context) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return false
	}
	next, ok := Start(r.state)
	if !ok {
		return false
	}

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.publishLocked(next)

	r.wg.Add(1)
	go r.run(runCtx, cancel, uuid.NewString(), time.Now())
	return true
}

// Close stops any in-flight run and waits for its goroutine to exit.
// Further calls to Start are ignored.
func (r *Runner) Close() {
	r.mu.Lock()
	r.closed = true
	if r.cancel != nil {
		r.cancel()
	}
	r.mu.Unlock()
	r.wg.Wait()
}

// Wait blocks until the current run, if any, has finished.
func (r *Runner) Wait() {
	r.wg.Wait()
}

func (r *Runner) run(ctx context.Context, cancel context.CancelFunc, runID string, started time.Time) {
	defer r.wg.Done()
	defer cancel()

	ticker := time.NewTicker(r.cfg.Tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			final := r.transition(Abort)
			r.record(ctx, runID, started, final)
			return
		case <-ticker.C:
			s := r.transition(func(s State) State { return Advance(s, r.cfg.Step) })
			if s.Phase == PhaseComplete {
				ticker.Stop()
				r.settle(ctx)
				r.record(ctx, runID, started, r.State())
				return
			}
		}
	}
}

// settle holds the completed state for the settle delay. Cancellation cuts
// the delay short; the run still counts as complete.
func (r *Runner) settle(ctx context.Context) {
	timer := time.NewTimer(r.cfg.SettleDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
	r.transition(Settle)
}

func (r *Runner) transition(fn func(State) State) State {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := fn(r.state)
	r.publishLocked(next)
	return next
}

// publishLocked stores s and replaces any unread update. r.mu must be held.
func (r *Runner) publishLocked(s State) {
	r.state = s
	select {
	case <-r.updates:
	default:
	}
	r.updates <- s
}

func (r *Runner) record(ctx context.Context, runID string, started time.Time, final State) {
	if r.rec == nil {
		return
	}
	data := store.SimulationRunData{
		RunID:         runID,
		Ticker:        Ticker,
		Iterations:    Iterations,
		StartedAt:     started,
		FinishedAt:    time.Now(),
		Completed:     final.Results != nil,
		FinalProgress: final.Progress,
	}
	if final.Results != nil {
		data.TotalPnL = final.Results.TotalPnL
		data.Sharpe = final.Results.Sharpe
		data.WinRate = final.Results.WinRate
		data.MaxDrawdown = final.Results.MaxDrawdown
	}

	recCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := r.rec.AppendSimulationRun(recCtx, data); err != nil {
		r.logger.Warn("record simulation run failed",
			zap.String("run_id", runID),
			zap.Error(err))
	}
}
