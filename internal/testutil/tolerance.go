package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Tolerances used across the kernel tests. Scalar and vector kernels sum in
// different orders, so they agree only up to re-association error.
const (
	RelTol = 1e-5
	AbsTol = 1e-5
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if any
// element pair differs by more than the relative fraction rel or the absolute
// margin abs. NaNs compare equal to NaNs; infinities compare exactly.
func RequireSliceNearlyEqual(t testing.TB, got, want []float32, rel, abs float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	opts := cmp.Options{cmpopts.EquateApprox(rel, abs), cmpopts.EquateNaNs()}
	if diff := cmp.Diff(want, got, opts); diff != "" {
		t.Fatalf("slices differ (-want +got):\n%s", diff)
	}
}

// RequireSliceEqual fails t unless got and want are identical element by
// element (NaN matches NaN).
func RequireSliceEqual(t testing.TB, got, want []float32) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateNaNs()); diff != "" {
		t.Fatalf("slices differ (-want +got):\n%s", diff)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t testing.TB, data []float32) {
	t.Helper()
	for i, v := range data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
