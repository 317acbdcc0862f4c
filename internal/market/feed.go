package market

import (
	"math/rand/v2"
	"time"
)

// Feed holds the current quotes and whether updates are live. Each pause or
// resume bumps the generation so that a scheduled update from before the
// change can be recognised and dropped.
type Feed struct {
	quotes     []Quote
	rng        *rand.Rand
	live       bool
	generation int
	updated    time.Time
}

// NewFeed creates a live feed at the seed quotes. A nil rng uses a
// time-seeded source.
func NewFeed(rng *rand.Rand) *Feed {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>32|1))
	}
	return &Feed{quotes: SeedQuotes(), rng: rng, live: true}
}

// Quotes returns a copy of the current quotes.
func (f *Feed) Quotes() []Quote {
	out := make([]Quote, len(f.quotes))
	copy(out, f.quotes)
	return out
}

// Live reports whether updates are applied.
func (f *Feed) Live() bool { return f.live }

// Generation identifies the current live period.
func (f *Feed) Generation() int { return f.generation }

// Updated returns when the quotes last changed; zero before the first update.
func (f *Feed) Updated() time.Time { return f.updated }

// Toggle pauses a live feed or resumes a paused one.
func (f *Feed) Toggle() {
	f.live = !f.live
	f.generation++
}

// Update applies a random-walk step if the feed is live and gen matches
// the current generation. It reports whether the quotes changed.
func (f *Feed) Update(gen int, now time.Time) bool {
	if !f.live || gen != f.generation {
		return false
	}
	f.quotes = Step(f.quotes, f.rng)
	f.updated = now
	return true
}
