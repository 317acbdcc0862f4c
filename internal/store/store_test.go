package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Driver() == nil {
		t.Fatal("expected non-nil driver")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProgressMarkAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	mods, err := repo.CompletedModules(ctx)
	require.NoError(t, err)
	assert.Empty(t, mods)

	base := time.Now().Truncate(time.Millisecond)
	require.NoError(t, repo.MarkComplete(ctx, "1-Python Basics", base))
	require.NoError(t, repo.MarkComplete(ctx, "2-Pandas Mastery", base.Add(time.Minute)))

	mods, err = repo.CompletedModules(ctx)
	require.NoError(t, err)
	require.Len(t, mods, 2)
	assert.Equal(t, "1-Python Basics", mods[0].Key)
	assert.True(t, mods[0].CompletedAt.Equal(base))
	assert.Equal(t, "2-Pandas Mastery", mods[1].Key)
}

func TestProgressMarkCompleteKeepsFirstTimestamp(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	first := time.Now().Truncate(time.Millisecond)
	require.NoError(t, repo.MarkComplete(ctx, "3-Financial Charts", first))
	require.NoError(t, repo.MarkComplete(ctx, "3-Financial Charts", first.Add(time.Hour)))

	mods, err := repo.CompletedModules(ctx)
	require.NoError(t, err)
	require.Len(t, mods, 1)
	assert.True(t, mods[0].CompletedAt.Equal(first))
}

func TestProgressMarkPendingAndClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	now := time.Now()
	for _, k := range []string{"1-Python Basics", "1-Data Structures", "5-Time Series"} {
		require.NoError(t, repo.MarkComplete(ctx, k, now))
	}

	require.NoError(t, repo.MarkPending(ctx, "1-Data Structures"))
	require.NoError(t, repo.MarkPending(ctx, "9-Not There"))

	mods, err := repo.CompletedModules(ctx)
	require.NoError(t, err)
	assert.Len(t, mods, 2)

	require.NoError(t, repo.ClearModules(ctx))
	mods, err = repo.CompletedModules(ctx)
	require.NoError(t, err)
	assert.Empty(t, mods)
}

func TestPreferences(t *testing.T) {
	s := openTestStore(t)
	repo := s.PreferenceRepo()
	ctx := context.Background()

	_, ok, err := repo.Preference(ctx, "theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.SetPreference(ctx, "theme", "dark"))
	require.NoError(t, repo.SetPreference(ctx, "theme", "light"))

	v, ok, err := repo.Preference(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)
}

func TestLLMEventsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "canned", Model: "canned", Purpose: "assistant",
		InputTokens: 10, OutputTokens: 20, LatencyMs: 30, Success: true,
		RequestBody: "[user]\nhi",
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gpt-4o-mini", Model: "gpt-4o-mini", Purpose: "assistant",
		InputTokens: 5, OutputTokens: 0, LatencyMs: 10, Success: false,
		ErrorMessage: "LLM provider unavailable",
	}))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)
	// Newest first.
	assert.Equal(t, "gpt-4o-mini", events[0].Model)
	assert.False(t, events[0].Success)
	assert.Equal(t, "LLM provider unavailable", events[0].ErrorMessage)
	assert.Greater(t, events[0].Sequence, events[1].Sequence)

	got, err := repo.GetLLMEvent(ctx, events[1].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "[user]\nhi", got.RequestBody)
	assert.Empty(t, got.ErrorMessage)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "ask", Success: true,
	}))
	asks, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "ask", Limit: 5})
	require.NoError(t, err)
	require.Len(t, asks, 1)
	assert.Equal(t, "gemini-2.0-flash", asks[0].Model)

	// The purpose filter applies before the limit.
	chats, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "assistant", Limit: 1})
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, "gpt-4o-mini", chats[0].Model)
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Model: "claude-haiku-4-5-20251001", Purpose: "assistant",
			InputTokens: 100, OutputTokens: 50, LatencyMs: int64(100 * (i + 1)), Success: true,
		}))
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 1)
	assert.Equal(t, 3, byPurpose[0].Calls)
	assert.Equal(t, 300, byPurpose[0].InputTokens)
	assert.Equal(t, int64(200), byPurpose[0].AvgLatencyMs)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 1)
	assert.Equal(t, 150, byModel[0].OutputTokens)
}

func TestSimulationRuns(t *testing.T) {
	s := openTestStore(t)
	repo := s.SimulationRepo()
	ctx := context.Background()

	start := time.Now().Truncate(time.Millisecond)
	require.NoError(t, repo.AppendSimulationRun(ctx, SimulationRunData{
		RunID: uuid.NewString(), Ticker: "AAPL", Iterations: 100,
		StartedAt: start, FinishedAt: start.Add(2 * time.Second),
		Completed: true, FinalProgress: 100,
		TotalPnL: 33155.44, Sharpe: 7.922, WinRate: 62.4, MaxDrawdown: 4.2,
	}))
	require.NoError(t, repo.AppendSimulationRun(ctx, SimulationRunData{
		RunID: uuid.NewString(), Ticker: "AAPL", Iterations: 100,
		StartedAt: start.Add(time.Minute), FinishedAt: start.Add(time.Minute),
		FinalProgress: 35,
	}))

	runs, err := repo.QuerySimulationRuns(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.False(t, runs[0].Completed)
	assert.Equal(t, 35, runs[0].FinalProgress)
	assert.True(t, runs[1].Completed)
	assert.InDelta(t, 33155.44, runs[1].TotalPnL, 0.001)
	assert.True(t, runs[1].StartedAt.Equal(start))

	recent, err := repo.QuerySimulationRuns(ctx, QueryOpts{From: start.Add(30 * time.Second)})
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestSequenceSharedAcrossTables(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{Model: "m", Purpose: "p"}))
	require.NoError(t, s.SimulationRepo().AppendSimulationRun(ctx, SimulationRunData{RunID: "r1", Ticker: "AAPL"}))

	events, err := s.EventRepo().QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	runs, err := s.SimulationRepo().QuerySimulationRuns(ctx, QueryOpts{})
	require.NoError(t, err)

	require.Len(t, events, 1)
	require.Len(t, runs, 1)
	assert.Less(t, events[0].Sequence, runs[0].Sequence)
}

func TestSequenceCounter_ConcurrentCallersGetDistinctValues(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	const callers = 16
	got := make(chan int64, callers)
	var g errgroup.Group
	for range callers {
		g.Go(func() error {
			n, err := s.seq.Next(ctx)
			got <- n
			return err
		})
	}
	require.NoError(t, g.Wait())
	close(got)

	seen := make(map[int64]bool)
	for n := range got {
		assert.False(t, seen[n], "sequence %d issued twice", n)
		seen[n] = true
	}
	assert.Len(t, seen, callers)
}

func TestSequenceCounter_SurvivesReopen(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	ctx := context.Background()

	first, err := Open(dsn)
	require.NoError(t, err)
	n, err := first.seq.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// A second handle on the same database must not re-seed the counter.
	second, err := Open(dsn)
	require.NoError(t, err)
	defer second.Close()
	m, err := second.seq.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), m)
	require.NoError(t, first.Close())
}
