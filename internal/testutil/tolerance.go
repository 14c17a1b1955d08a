package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t on a length mismatch or on the first
// sample whose absolute error exceeds eps.
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
	}

	for i, g := range got {
		if d := math.Abs(g - want[i]); d > eps {
			t.Fatalf("sample %d: got %v, want %v (|err| %g > %g)", i, g, want[i], d, eps)
		}
	}
}

// RequireFinite fails t on the first NaN or infinite sample, the usual
// symptom of an unstable recursion.
func RequireFinite(t testing.TB, samples []float64) {
	t.Helper()

	for i, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("sample %d is %v", i, v)
		}
	}
}

// MaxAbsDiff returns the largest absolute sample difference of a and b.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("testutil: %d samples vs %d", len(a), len(b))
	}

	var peak float64
	for i, v := range a {
		peak = math.Max(peak, math.Abs(v-b[i]))
	}

	return peak, nil
}
