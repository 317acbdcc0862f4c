package market

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestSeedQuotes(t *testing.T) {
	q := SeedQuotes()
	if len(q) != 8 {
		t.Fatalf("expected 8 quotes, got %d", len(q))
	}
	if q[0].Symbol != "SPY" || q[7].Symbol != "ETH" {
		t.Errorf("unexpected order: %s ... %s", q[0].Symbol, q[7].Symbol)
	}
}

func TestStep_BoundedAndRounded(t *testing.T) {
	rng := testRNG()
	prev := SeedQuotes()
	for i := 0; i < 50; i++ {
		next := Step(prev, rng)
		for j := range next {
			delta := next[j].Price - prev[j].Price
			if math.Abs(delta) > 1.01 {
				t.Fatalf("%s moved by %.4f", next[j].Symbol, delta)
			}
			for _, v := range []float64{next[j].Price, next[j].Change, next[j].ChangePercent} {
				if math.Abs(v*100-math.Round(v*100)) > 1e-6 {
					t.Fatalf("%s value %v not rounded to cents", next[j].Symbol, v)
				}
			}
			if next[j].Symbol != prev[j].Symbol || next[j].Name != prev[j].Name {
				t.Fatalf("identity changed at %d", j)
			}
		}
		prev = next
	}
}

func TestStep_PriceAndChangeMoveTogether(t *testing.T) {
	in := []Quote{{Symbol: "X", Price: 100, Change: 2}}
	out := Step(in, testRNG())
	dp := out[0].Price - in[0].Price
	dc := out[0].Change - in[0].Change
	if math.Abs(dp-dc) > 0.011 {
		t.Errorf("price moved %.4f but change moved %.4f", dp, dc)
	}
	// percent is change over the implied previous close
	want := math.Round(out[0].Change/(out[0].Price-out[0].Change)*100*100) / 100
	if math.Abs(out[0].ChangePercent-want) > 0.011 {
		t.Errorf("percent = %v, want ~%v", out[0].ChangePercent, want)
	}
}

func TestStep_DoesNotMutateInput(t *testing.T) {
	in := SeedQuotes()
	_ = Step(in, testRNG())
	if in[0].Price != 478.52 {
		t.Error("input slice was modified")
	}
}

func TestFeed_PauseDropsStaleTicks(t *testing.T) {
	f := NewFeed(testRNG())
	now := time.Now()

	gen := f.Generation()
	if !f.Update(gen, now) {
		t.Fatal("live feed should update")
	}
	if !f.Updated().Equal(now) {
		t.Error("Updated not recorded")
	}

	f.Toggle()
	if f.Live() {
		t.Fatal("feed should be paused")
	}
	before := f.Quotes()
	if f.Update(f.Generation(), now) {
		t.Error("paused feed should not update")
	}

	f.Toggle()
	if f.Update(gen, now) {
		t.Error("tick from an old generation should be dropped")
	}
	if after := f.Quotes(); after[0] != before[0] {
		t.Error("quotes changed despite dropped ticks")
	}
	if !f.Update(f.Generation(), now) {
		t.Error("current generation should update after resume")
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{193.42, "193.42"},
		{999.999, "1000.00"},
		{2285.5, "2,285.50"},
		{43250, "43,250.00"},
		{1234567.891, "1,234,567.89"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.in); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(Quote{Change: 1.24, ChangePercent: 0.26}); got != "+0.3%" {
		t.Errorf("got %q", got)
	}
	if got := FormatPercent(Quote{Change: -45.2, ChangePercent: -1.94}); got != "-1.9%" {
		t.Errorf("got %q", got)
	}
}
