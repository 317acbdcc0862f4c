package progress

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alphaquant/academy/internal/store"
)

// Tracker owns the current progress state and persists every change through
// a ProgressRepo. A change is written before the new state is published, so
// a failed write leaves the in-memory state untouched.
type Tracker struct {
	mu    sync.RWMutex
	state State
	repo  store.ProgressRepo
	now   func() time.Time
}

// NewTracker creates a tracker with an empty state. Call Load to populate it.
func NewTracker(repo store.ProgressRepo) *Tracker {
	return &Tracker{repo: repo, now: time.Now}
}

// Load replaces the in-memory state with the stored completions.
func (t *Tracker) Load(ctx context.Context) error {
	mods, err := t.repo.CompletedModules(ctx)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}
	completed := make(map[Key]time.Time, len(mods))
	for _, m := range mods {
		completed[Key(m.Key)] = m.CompletedAt
	}

	t.mu.Lock()
	t.state = NewState(completed)
	t.mu.Unlock()
	return nil
}

// State returns the current state value.
func (t *Tracker) State() State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// IsComplete reports whether a module is completed.
func (t *Tracker) IsComplete(trackID int, moduleName string) bool {
	return t.State().IsComplete(trackID, moduleName)
}

// Toggle flips a module's completion, persists it, and returns whether the
// module is now complete.
func (t *Tracker) Toggle(ctx context.Context, trackID int, moduleName string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := KeyFor(trackID, moduleName)
	next := t.state.ToggleAt(trackID, moduleName, t.now())
	nowComplete := next.IsComplete(trackID, moduleName)

	var err error
	if nowComplete {
		at, _ := next.CompletedAt(trackID, moduleName)
		err = t.repo.MarkComplete(ctx, string(key), at)
	} else {
		err = t.repo.MarkPending(ctx, string(key))
	}
	if err != nil {
		return t.state.IsComplete(trackID, moduleName), fmt.Errorf("toggle %s: %w", key, err)
	}

	t.state = next
	return nowComplete, nil
}

// Reset clears every completion.
func (t *Tracker) Reset(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.repo.ClearModules(ctx); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	t.state = Reset()
	return nil
}
