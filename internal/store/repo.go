package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To

	Purpose string // LLM events only
}

// ModuleCompletion is a completed module key and when it was completed.
type ModuleCompletion struct {
	Key         string
	CompletedAt time.Time
}

// ProgressRepo persists the set of completed curriculum modules.
type ProgressRepo interface {
	// CompletedModules returns every completed module, oldest first.
	CompletedModules(ctx context.Context) ([]ModuleCompletion, error)

	// MarkComplete stores key as completed at the given time. Marking an
	// already completed key keeps the original timestamp.
	MarkComplete(ctx context.Context, key string, at time.Time) error

	// MarkPending removes key. Removing an absent key is not an error.
	MarkPending(ctx context.Context, key string) error

	// ClearModules removes every completion record.
	ClearModules(ctx context.Context) error
}

// PreferenceRepo stores small named UI preferences such as the theme.
type PreferenceRepo interface {
	// Preference returns the stored value and whether it was present.
	Preference(ctx context.Context, name string) (string, bool, error)

	// SetPreference inserts or replaces a value.
	SetPreference(ctx context.Context, name, value string) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageStats aggregates LLM calls by purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM calls by model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns a single event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// SimulationRunData describes a finished or aborted analyst simulation.
type SimulationRunData struct {
	RunID         string
	Ticker        string
	Iterations    int
	StartedAt     time.Time
	FinishedAt    time.Time
	Completed     bool
	FinalProgress int
	TotalPnL      float64
	Sharpe        float64
	WinRate       float64
	MaxDrawdown   float64
}

// SimulationRunRecord is a stored simulation run.
type SimulationRunRecord struct {
	SimulationRunData
	ID       int
	Sequence int64
}

// SimulationRepo records analyst simulation runs.
type SimulationRepo interface {
	AppendSimulationRun(ctx context.Context, data SimulationRunData) error
	QuerySimulationRuns(ctx context.Context, opts QueryOpts) ([]SimulationRunRecord, error)
}
