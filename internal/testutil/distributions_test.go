package testutil

import (
	"math"
	"testing"
)

func TestDeterministicWeights(t *testing.T) {
	a := DeterministicWeights(42, 64)
	b := DeterministicWeights(42, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}
		if a[i] < 0 {
			t.Fatalf("a[%d] = %v, want >= 0", i, a[i])
		}
	}
	RequireSum(t, a, 1, 1e-12)
}

func TestPointMass(t *testing.T) {
	p := PointMass(5, 2)
	want := []float64{0, 0, 1, 0, 0}
	RequireSliceNearlyEqual(t, p, want, 0)

	if out := PointMass(3, 7); out[0] != 0 || out[1] != 0 || out[2] != 0 {
		t.Fatalf("out-of-range position should give all zeros, got %v", out)
	}
}

func TestUniform(t *testing.T) {
	u := Uniform(4)
	for i, v := range u {
		if math.Abs(v-0.25) > 1e-15 {
			t.Fatalf("u[%d] = %v, want 0.25", i, v)
		}
	}
}
