package progress

import "github.com/alphaquant/academy/internal/catalog"

// Summary counts completed modules against a total.
type Summary struct {
	Completed int
	Total     int
}

// Percent returns completion as a percentage in [0, 100]. Callers round
// for display.
func (s Summary) Percent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total) * 100
}

// Done reports whether every module is complete.
func (s Summary) Done() bool {
	return s.Total > 0 && s.Completed == s.Total
}

// Summarize counts completions across all tracks. Stored keys that do not
// match a catalog module are ignored.
func Summarize(s State, tracks []catalog.Track) Summary {
	var sum Summary
	for _, t := range tracks {
		ts := SummarizeTrack(s, t)
		sum.Completed += ts.Completed
		sum.Total += ts.Total
	}
	return sum
}

// SummarizeTrack counts completions within a single track.
func SummarizeTrack(s State, t catalog.Track) Summary {
	sum := Summary{Total: len(t.Modules)}
	for _, m := range t.Modules {
		if s.IsComplete(t.ID, m.Name) {
			sum.Completed++
		}
	}
	return sum
}

// Stale returns stored keys that no longer name a catalog module, sorted.
// Malformed keys are stale too.
func Stale(s State, tracks []catalog.Track) []Key {
	var stale []Key
	for _, k := range s.Keys() {
		id, name, err := ParseKey(k)
		if err != nil || !hasModule(tracks, id, name) {
			stale = append(stale, k)
		}
	}
	return stale
}

func hasModule(tracks []catalog.Track, id int, name string) bool {
	for _, t := range tracks {
		if t.ID != id {
			continue
		}
		for _, m := range t.Modules {
			if m.Name == name {
				return true
			}
		}
	}
	return false
}
