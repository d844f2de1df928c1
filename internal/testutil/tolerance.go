package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireMatrixNearlyEqual fails t if got and want differ in shape or if
// any element pair exceeds eps (absolute tolerance).
func RequireMatrixNearlyEqual(t *testing.T, got, want [][]float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("row count mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if len(got[i]) != len(want[i]) {
			t.Fatalf("row %d length mismatch: got %d, want %d", i, len(got[i]), len(want[i]))
		}
		for j := range got[i] {
			diff := math.Abs(got[i][j] - want[i][j])
			if diff > eps {
				t.Fatalf("[%d][%d]: got %v, want %v (diff %v > eps %v)", i, j, got[i][j], want[i][j], diff, eps)
			}
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, m [][]float64) {
	t.Helper()
	for i, row := range m {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("[%d][%d]: non-finite value %v", i, j, v)
			}
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two matrices.
// Returns an error if their shapes differ.
func MaxAbsDiff(a, b [][]float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("row count mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return 0, fmt.Errorf("row %d length mismatch: %d vs %d", i, len(a[i]), len(b[i]))
		}
		for j := range a[i] {
			if d := math.Abs(a[i][j] - b[i][j]); d > maxDiff {
				maxDiff = d
			}
		}
	}
	return maxDiff, nil
}
