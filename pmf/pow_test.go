package pmf

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cwbudde/algo-ptm/internal/testutil"
)

func repeatConvolve(t *testing.T, p PMF, n int) PMF {
	t.Helper()
	acc := Identity()
	for range n {
		var err error
		acc, err = Convolve(acc, p)
		if err != nil {
			t.Fatalf("convolve: %v", err)
		}
	}
	return acc
}

func TestPowSmallCases(t *testing.T) {
	base := New([]float64{0.3, 0.7}, -1)

	zero, err := PowDirect(base, 0)
	if err != nil {
		t.Fatal(err)
	}
	if zero.Offset != 0 || len(zero.Values) != 1 || zero.Values[0] != 1 {
		t.Errorf("Pow(p, 0) = %v, want identity", zero)
	}

	one, err := PowDirect(base, 1)
	if err != nil {
		t.Fatal(err)
	}
	if one.Offset != -1 {
		t.Errorf("Pow(p, 1).Offset = %d, want -1", one.Offset)
	}
	testutil.RequireSliceNearlyEqual(t, one.Values, base.Values, 0)
	if &one.Values[0] == &base.Values[0] {
		t.Error("Pow(p, 1) must not alias its input")
	}
}

func TestPowThreeCopies(t *testing.T) {
	// Charge range -2..+2, one site with P(-1) = P(0) = 0.5.
	base := New([]float64{0, 0.5, 0.5, 0, 0}, -2)

	got, err := PowDirect(base, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := repeatConvolve(t, base, 3)

	if got.Offset != -6 || want.Offset != -6 {
		t.Fatalf("offsets = %d and %d, want -6", got.Offset, want.Offset)
	}
	testutil.RequireSliceNearlyEqual(t, got.Values, want.Values, 1e-15)
	if p := got.At(-3); p != 0.125 {
		t.Errorf("P(-3) = %v, want 0.125", p)
	}
}

func TestPowMatchesRepeatedConvolution(t *testing.T) {
	base := New(testutil.DeterministicWeights(7, 5), -2)
	for _, n := range []int{2, 5, 8, 13, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			got, err := PowDirect(base, n)
			if err != nil {
				t.Fatal(err)
			}
			want := repeatConvolve(t, base, n)
			if got.Offset != want.Offset {
				t.Fatalf("offset = %d, want %d", got.Offset, want.Offset)
			}
			testutil.RequireSliceNearlyEqual(t, got.Values, want.Values, 1e-12)
		})
	}
}

func TestPowLaw(t *testing.T) {
	p := New(testutil.DeterministicWeights(3, 4), -1)
	convolvers := map[string]Convolver{"direct": Direct{}, "fft": NewFFT()}

	for name, c := range convolvers {
		for _, ab := range [][2]int{{0, 0}, {0, 3}, {1, 1}, {2, 5}, {7, 4}} {
			t.Run(fmt.Sprintf("%s/%d+%d", name, ab[0], ab[1]), func(t *testing.T) {
				whole, err := Pow(p, ab[0]+ab[1], c)
				if err != nil {
					t.Fatal(err)
				}
				pa, err := Pow(p, ab[0], c)
				if err != nil {
					t.Fatal(err)
				}
				pb, err := Pow(p, ab[1], c)
				if err != nil {
					t.Fatal(err)
				}
				split, err := c.Convolve(pa, pb)
				if err != nil {
					t.Fatal(err)
				}
				if whole.Offset != split.Offset {
					t.Fatalf("offset = %d, want %d", whole.Offset, split.Offset)
				}
				testutil.RequireSliceNearlyEqual(t, whole.Values, split.Values, 1e-12)
			})
		}
	}
}

func TestPowErrors(t *testing.T) {
	if _, err := PowDirect(Identity(), -1); !errors.Is(err, ErrNegativePower) {
		t.Errorf("expected ErrNegativePower, got %v", err)
	}
	if _, err := PowDirect(PMF{}, 2); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
	if _, err := Pow(New([]float64{0.5, 0.5}, 0), 2, nil); err != nil {
		t.Errorf("nil convolver should fall back to Direct, got %v", err)
	}
}
