// Package progress tracks which curriculum modules the learner has
// completed. State is an immutable value; every operation returns a new
// State and leaves the receiver untouched. Tracker layers persistence on top.
package progress

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Key identifies a module completion as "trackId-moduleName".
type Key string

// KeyFor builds the completion key for a module within a track.
func KeyFor(trackID int, moduleName string) Key {
	return Key(strconv.Itoa(trackID) + "-" + moduleName)
}

// ParseKey splits a key into its track ID and module name. Module names may
// themselves contain dashes; only the first dash separates the parts.
func ParseKey(k Key) (int, string, error) {
	idStr, name, ok := strings.Cut(string(k), "-")
	if !ok || name == "" {
		return 0, "", fmt.Errorf("malformed progress key %q", k)
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, "", fmt.Errorf("malformed progress key %q: %w", k, err)
	}
	return id, name, nil
}

// State is the set of completed modules with their completion times.
// The zero value is an empty state.
type State struct {
	completed map[Key]time.Time
}

// NewState builds a state from stored completion times.
func NewState(completed map[Key]time.Time) State {
	m := make(map[Key]time.Time, len(completed))
	for k, t := range completed {
		m[k] = t
	}
	return State{completed: m}
}

// Toggle flips the completion of a module, stamping new completions with
// the current time.
func (s State) Toggle(trackID int, moduleName string) State {
	return s.ToggleAt(trackID, moduleName, time.Now())
}

// ToggleAt is Toggle with an explicit completion time.
func (s State) ToggleAt(trackID int, moduleName string, at time.Time) State {
	key := KeyFor(trackID, moduleName)
	next := s.clone()
	if _, ok := next[key]; ok {
		delete(next, key)
	} else {
		next[key] = at
	}
	return State{completed: next}
}

// IsComplete reports whether a module is completed. Unknown modules are not.
func (s State) IsComplete(trackID int, moduleName string) bool {
	_, ok := s.completed[KeyFor(trackID, moduleName)]
	return ok
}

// CompletedAt returns when a module was completed.
func (s State) CompletedAt(trackID int, moduleName string) (time.Time, bool) {
	t, ok := s.completed[KeyFor(trackID, moduleName)]
	return t, ok
}

// Len returns the number of completed keys, including keys that no longer
// exist in the catalog.
func (s State) Len() int {
	return len(s.completed)
}

// Keys returns the completed keys in sorted order.
func (s State) Keys() []Key {
	keys := make([]Key, 0, len(s.completed))
	for k := range s.completed {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Reset returns an empty state.
func Reset() State {
	return State{}
}

func (s State) clone() map[Key]time.Time {
	m := make(map[Key]time.Time, len(s.completed)+1)
	for k, t := range s.completed {
		m[k] = t
	}
	return m
}
