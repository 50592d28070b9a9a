package combine

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/cwbudde/algo-ptm/internal/testutil"
	"github.com/cwbudde/algo-ptm/pmf"
	"github.com/cwbudde/algo-ptm/site"
)

func TestEnumerateMatchesExact(t *testing.T) {
	tests := []struct {
		name string
		r    site.ChargeRange
		n    int
		max  int
	}{
		{name: "three states", r: site.ChargeRange{Min: -1, Max: 1}, n: 4, max: 2},
		{name: "five states", r: fiveStates, n: 3, max: 2},
		{name: "shifted range", r: site.ChargeRange{Min: -4, Max: -1}, n: 5, max: 1},
		{name: "single state", r: site.ChargeRange{Min: 0, Max: 0}, n: 3, max: 3},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := randomTable(t, tt.r, tt.n, tt.max, int64(100*i))

			got, err := Enumerate(context.Background(), tbl)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Available() {
				t.Fatalf("status = %v (%v), want complete", got.Status, got.Reason)
			}
			if got.Reason != ReasonNone {
				t.Errorf("reason = %v, want none", got.Reason)
			}

			exact, err := Exact(tbl)
			if err != nil {
				t.Fatal(err)
			}
			fast, _, err := FFT(tbl)
			if err != nil {
				t.Fatal(err)
			}
			requirePMF(t, exact, got.PMF, 1e-6)
			requirePMF(t, fast, got.PMF, 1e-6)
			testutil.RequireSum(t, got.PMF.Values, 1, 1e-9)
		})
	}
}

func TestEnumerateTwoSites(t *testing.T) {
	tbl := mustTable(t, fiveStates,
		site.Site{ID: "A", Copies: 1, Probs: []float64{0, 0, 1, 0, 0}},
		site.Site{ID: "B", Copies: 1, Probs: []float64{0, 0.2, 0.6, 0.2, 0}},
	)

	got, err := Enumerate(context.Background(), tbl)
	if err != nil {
		t.Fatal(err)
	}
	if got.Combinations != 25 {
		t.Errorf("Combinations = %v, want 25", got.Combinations)
	}
	requirePMF(t, got.PMF, pmf.New([]float64{0, 0, 0, 0.2, 0.6, 0.2, 0, 0, 0}, -4), 1e-15)
}

func TestEnumerateNoSites(t *testing.T) {
	got, err := Enumerate(context.Background(), mustTable(t, fiveStates))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Available() {
		t.Fatalf("status = %v, want complete", got.Status)
	}
	requirePMF(t, got.PMF, pmf.Identity(), 0)
}

func TestEnumerateTooLarge(t *testing.T) {
	// 100 sites with 5 states: 5^100 combinations.
	sites := make([]site.Site, 100)
	for i := range sites {
		sites[i] = site.Site{ID: fmt.Sprintf("S%d", i), Copies: 1, Probs: testutil.Uniform(5)}
	}
	tbl := mustTable(t, fiveStates, sites...)

	start := time.Now()
	got, err := Enumerate(context.Background(), tbl)
	if err != nil {
		t.Fatal(err)
	}
	if got.Available() || got.Reason != ReasonTooLarge {
		t.Fatalf("got status %v reason %v, want unavailable/too large", got.Status, got.Reason)
	}
	if got.Visited != 0 {
		t.Errorf("Visited = %d, want 0", got.Visited)
	}
	if want := math.Pow(5, 100); math.Abs(got.Combinations-want) > want*1e-12 {
		t.Errorf("Combinations = %g, want %g", got.Combinations, want)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("guard took %v", elapsed)
	}
}

func TestEnumerateCombinationLimit(t *testing.T) {
	tbl := randomTable(t, fiveStates, 3, 1, 9) // 125 combinations

	got, err := Enumerate(context.Background(), tbl, WithCombinationLimit(100))
	if err != nil {
		t.Fatal(err)
	}
	if got.Reason != ReasonTooLarge {
		t.Errorf("reason = %v, want too large", got.Reason)
	}

	got, err = Enumerate(context.Background(), tbl, WithCombinationLimit(125))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Available() {
		t.Errorf("limit equal to the count: status = %v", got.Status)
	}
}

func TestEnumerateTimeout(t *testing.T) {
	// 5^12 combinations cannot finish within a nanosecond.
	tbl := mustTable(t, fiveStates, site.Site{ID: "U", Copies: 12, Probs: testutil.Uniform(5)})

	got, err := Enumerate(context.Background(), tbl,
		WithCombinationLimit(1e12),
		WithTimeout(time.Nanosecond),
	)
	if err != nil {
		t.Fatal(err)
	}
	if got.Available() || got.Reason != ReasonTimeout {
		t.Fatalf("got status %v reason %v, want unavailable/timeout", got.Status, got.Reason)
	}
	if got.Visited < checkInterval {
		t.Errorf("Visited = %d, want at least %d", got.Visited, checkInterval)
	}
}

func TestEnumerateSingleStateManyCopies(t *testing.T) {
	tbl := mustTable(t, site.ChargeRange{Min: -1, Max: -1}, site.Site{ID: "S", Copies: 30_000_000, Probs: []float64{1}})

	start := time.Now()
	got, err := Enumerate(context.Background(), tbl, WithTimeout(time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("took %v with a 1ms budget", elapsed)
	}
	if !got.Available() {
		t.Fatalf("status = %v (%v), want complete", got.Status, got.Reason)
	}
	requirePMF(t, got.PMF, pmf.PointMass(-30_000_000), 0)
}

func TestEnumerateTimeoutManyCopies(t *testing.T) {
	// Per-copy work must not precede the first budget check.
	tbl := mustTable(t, fiveStates, site.Site{ID: "U", Copies: 50_000_000, Probs: testutil.Uniform(5)})

	start := time.Now()
	got, err := Enumerate(context.Background(), tbl,
		WithCombinationLimit(math.Inf(1)),
		WithTimeout(time.Millisecond),
	)
	if err != nil {
		t.Fatal(err)
	}
	if got.Reason != ReasonTimeout {
		t.Fatalf("reason = %v, want timeout", got.Reason)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("took %v with a 1ms budget", elapsed)
	}
}

func TestEnumerateCanceled(t *testing.T) {
	tbl := mustTable(t, fiveStates, site.Site{ID: "U", Copies: 4, Probs: testutil.Uniform(5)})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := Enumerate(ctx, tbl)
	if err != nil {
		t.Fatal(err)
	}
	if got.Available() || got.Reason != ReasonCanceled {
		t.Errorf("got status %v reason %v, want unavailable/canceled", got.Status, got.Reason)
	}
}

func TestEnumerateSkipsZeroStates(t *testing.T) {
	// Only two of five states are possible: 2^6 leaves instead of 5^6.
	tbl := mustTable(t, fiveStates, site.Site{ID: "A", Copies: 6, Probs: []float64{0, 0.5, 0.5, 0, 0}})

	got, err := Enumerate(context.Background(), tbl)
	if err != nil {
		t.Fatal(err)
	}
	// One root, then 2 + 4 + ... + 64 expansions.
	if got.Visited != 127 {
		t.Errorf("Visited = %d, want 127", got.Visited)
	}
}

func TestEnumerateRejectsInvalidRows(t *testing.T) {
	tbl := mustTable(t, fiveStates, site.Site{ID: "bad", Copies: 1, Probs: []float64{0.5, 0, 0, 0, 0}})
	if _, err := Enumerate(context.Background(), tbl); err == nil {
		t.Fatal("expected row error")
	}
}

func TestCombinationCount(t *testing.T) {
	tests := []struct {
		name string
		tbl  site.Table
		want float64
	}{
		{"empty", site.Table{Range: fiveStates}, 1},
		{"one site", site.Table{Range: fiveStates, Sites: []site.Site{{Copies: 1, Probs: testutil.Uniform(5)}}}, 5},
		{"copies", site.Table{Range: fiveStates, Sites: []site.Site{{Copies: 3, Probs: testutil.Uniform(5)}}}, 125},
		{"excluded", site.Table{Range: fiveStates, Sites: []site.Site{{Copies: 0, Probs: testutil.Uniform(5)}}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CombinationCount(tt.tbl); got != tt.want {
				t.Errorf("CombinationCount() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnumStrings(t *testing.T) {
	if EnumComplete.String() != "complete" || EnumUnavailable.String() != "unavailable" {
		t.Errorf("status strings = %q, %q", EnumComplete, EnumUnavailable)
	}
	for r, want := range map[Reason]string{
		ReasonNone:     "none",
		ReasonTooLarge: "too many combinations",
		ReasonTimeout:  "timeout",
		ReasonCanceled: "canceled",
	} {
		if r.String() != want {
			t.Errorf("Reason(%d).String() = %q, want %q", int(r), r.String(), want)
		}
	}
}
