package dct

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by basis generation and transforms. Returned errors wrap
// one of these sentinels; use errors.Is to tell them apart.
var (
	ErrShape     = errors.New("dct: input must be a non-empty square matrix")
	ErrDomain    = errors.New("dct: basis size out of range")
	ErrNonFinite = errors.New("dct: sample is not finite")
)

// MaxSize is the largest supported N. Larger sizes would overflow the
// N×N element count on 32-bit platforms.
const MaxSize = 1 << 15

func validateSize(n int) error {
	if n <= 0 || n > MaxSize {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrDomain, n, MaxSize)
	}
	return nil
}

// validateRows checks that rows form a non-empty square matrix and returns N.
func validateRows[T any](rows [][]T) (int, error) {
	n := len(rows)
	if n == 0 {
		return 0, fmt.Errorf("%w: no rows", ErrShape)
	}
	if n > MaxSize {
		return 0, fmt.Errorf("%w: %d rows exceeds %d", ErrShape, n, MaxSize)
	}
	for i, row := range rows {
		if len(row) != n {
			return 0, fmt.Errorf("%w: row %d has length %d, want %d", ErrShape, i, len(row), n)
		}
	}
	return n, nil
}

func validateFinite(m *Matrix) error {
	for k, v := range m.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: [%d][%d] = %v", ErrNonFinite, k/m.N, k%m.N, v)
		}
	}
	return nil
}
