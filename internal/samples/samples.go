// Package samples generates sample matrices for tests, benchmarks and the
// dctbench command.
package samples

import (
	"math/rand"
)

// Random returns an n×n matrix of samples drawn uniformly from [0, scale)
// with a fixed seed for reproducibility.
func Random(seed int64, n int, scale float64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, n)
	for x := range out {
		out[x] = make([]float64, n)
		for y := range out[x] {
			out[x][y] = rng.Float64() * scale
		}
	}
	return out
}

// Constant returns an n×n matrix with every sample equal to value.
func Constant(value float64, n int) [][]float64 {
	out := make([][]float64, n)
	for x := range out {
		out[x] = make([]float64, n)
		for y := range out[x] {
			out[x][y] = value
		}
	}
	return out
}

// Impulse returns an n×n zero matrix with a single 1 at (row, col).
// Out-of-range positions yield an all-zero matrix.
func Impulse(n, row, col int) [][]float64 {
	out := Constant(0, n)
	if row >= 0 && row < n && col >= 0 && col < n {
		out[row][col] = 1
	}
	return out
}
