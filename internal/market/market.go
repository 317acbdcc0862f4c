// Package market simulates the live ticker: a fixed basket of quotes that
// drift by a small random walk on every update.
package market

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"
)

// DefaultInterval is the time between ticker updates.
const DefaultInterval = 3 * time.Second

// Quote is one ticker entry.
type Quote struct {
	Symbol        string
	Name          string
	Price         float64
	Change        float64
	ChangePercent float64
}

// Up reports whether the quote is flat or rising.
func (q Quote) Up() bool {
	return q.Change >= 0
}

// SeedQuotes returns the opening quotes.
func SeedQuotes() []Quote {
	return []Quote{
		{"SPY", "S&P 500", 478.52, 1.24, 0.26},
		{"QQQ", "Nasdaq", 412.87, -2.15, -0.52},
		{"AAPL", "Apple", 193.42, 3.21, 1.69},
		{"GOOGL", "Alphabet", 141.15, 0.87, 0.62},
		{"MSFT", "Microsoft", 376.04, -1.23, -0.33},
		{"NVDA", "NVIDIA", 495.22, 12.45, 2.58},
		{"BTC", "Bitcoin", 43250.00, 850.00, 2.01},
		{"ETH", "Ethereum", 2285.50, -45.20, -1.94},
	}
}

// Step applies one random-walk update and returns new quotes; the input is
// not modified. Each quote moves by a uniform delta in [-1, 1). The percent
// change is recomputed against the implied previous close from the
// unrounded values, then everything is rounded to cents.
func Step(quotes []Quote, rng *rand.Rand) []Quote {
	out := make([]Quote, len(quotes))
	for i, q := range quotes {
		delta := (rng.Float64() - 0.5) * 2
		price := q.Price + delta
		change := q.Change + delta
		pct := change / (price - change) * 100

		q.Price = roundCents(price)
		q.Change = roundCents(change)
		q.ChangePercent = roundCents(pct)
		out[i] = q
	}
	return out
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatPrice renders a price with two decimals, grouping thousands for
// prices of 1000 and above.
func FormatPrice(p float64) string {
	s := fmt.Sprintf("%.2f", p)
	if p < 1000 {
		return s
	}
	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String() + "." + frac
}

// FormatPercent renders a signed percent change with one decimal.
func FormatPercent(q Quote) string {
	sign := ""
	if q.Up() {
		sign = "+"
	}
	return fmt.Sprintf("%s%.1f%%", sign, q.ChangePercent)
}
